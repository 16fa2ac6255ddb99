package resources

import (
	"fmt"

	"github.com/f2fin/directory-dashboard/internal/forms"
	"github.com/f2fin/directory-dashboard/internal/models"
	"github.com/f2fin/directory-dashboard/internal/repositories"
	"github.com/f2fin/directory-dashboard/internal/views"
)

// DefaultBankerPaths lists through /bankers/get-bankers. Older deployments
// answer on /directories/get-directories or /directory/get-directories; the
// list path is configurable for them.
var DefaultBankerPaths = repositories.Paths{
	List:   "/bankers/get-bankers",
	Create: "/bankers/create-banker",
}

var experienceColumns = []forms.Field{
	{Key: "currentInstitutionName", Label: "Institution Name"},
	{Key: "role", Label: "Role"},
	{Key: "startDate", Label: "Start Date"},
	{Key: "endDate", Label: "End Date"},
	{Key: "description", Label: "Description"},
}

// Bankers describes the bankers (team member) collection.
func Bankers(paths repositories.Paths) Descriptor[models.DirectoryEntry] {
	return Descriptor[models.DirectoryEntry]{
		Key:   KeyBankers,
		Title: "Bankers",
		Paths: paths,
		Filters: []views.Filter[models.DirectoryEntry]{
			{
				Name:  "name",
				Label: "Full Name",
				Match: views.Field(func(d models.DirectoryEntry) string { return d.FullName }),
			},
			{
				Name:  "location",
				Label: "Location",
				Match: views.Field(func(d models.DirectoryEntry) string { return d.Location }),
			},
		},
		Exclusive: true,
		Schema: forms.Schema{
			Title: "Create Directory Entry",
			Fields: []forms.Field{
				{Key: "fullName", Label: "Full Name", Required: true},
				{Key: "email", Label: "Email"},
				{Key: "contact", Label: "Contact"},
				{Key: "location", Label: "Location"},
				{Key: "designation", Label: "Designation"},
				{Key: "currentInstitutionName", Label: "Current Institution"},
				{Key: "profileImage", Label: "Profile Image URL"},
				{Key: "totalExperience", Label: "Total Experience"},
				{Key: "dateOfJoining", Label: "Date of Joining"},
			},
			Lists: []forms.ListField{
				{Key: "previousExperience", Label: "Previous Experience", Columns: experienceColumns},
			},
			SuccessNotice: "Directory entry created successfully!",
		},
		Build:     buildDirectoryEntry,
		Normalize: models.DirectoryEntry.Normalize,
		Validate:  models.DirectoryEntry.Validate,
		ID:        func(d models.DirectoryEntry) string { return d.ID },
		Card:      directoryEntryCard,
	}
}

func buildDirectoryEntry(d *forms.Draft) models.DirectoryEntry {
	entry := models.DirectoryEntry{
		FullName:               d.Get("fullName"),
		Email:                  d.Get("email"),
		Contact:                d.Get("contact"),
		Location:               d.Get("location"),
		Designation:            d.Get("designation"),
		CurrentInstitutionName: d.Get("currentInstitutionName"),
		ProfileImage:           d.Get("profileImage"),
		TotalExperience:        d.Get("totalExperience"),
		DateOfJoining:          d.Get("dateOfJoining"),
	}
	for _, row := range d.List("previousExperience").Rows() {
		entry.PreviousExperience = append(entry.PreviousExperience, models.Experience{
			CurrentInstitutionName: row.Value("currentInstitutionName"),
			Role:                   row.Value("role"),
			StartDate:              row.Value("startDate"),
			EndDate:                row.Value("endDate"),
			Description:            row.Value("description"),
		})
	}
	return entry
}

func directoryEntryCard(d models.DirectoryEntry) Card {
	subtitle := d.Designation
	if d.CurrentInstitutionName != "" {
		if subtitle != "" {
			subtitle += " at "
		}
		subtitle += d.CurrentInstitutionName
	}

	history := make([]string, 0, len(d.PreviousExperience))
	for _, e := range d.PreviousExperience {
		line := e.CurrentInstitutionName
		if e.Role != "" {
			line += ", " + e.Role
		}
		if e.StartDate != "" || e.EndDate != "" {
			line += fmt.Sprintf(" (%s – %s)", e.StartDate, e.EndDate)
		}
		if e.Description != "" {
			line += ": " + e.Description
		}
		history = append(history, line)
	}

	return Card{
		Title:    d.FullName,
		Subtitle: subtitle,
		Details: nonEmpty(
			Detail{Label: "Date of Joining", Value: d.DateOfJoining},
			Detail{Label: "Total Experience", Value: d.TotalExperience},
			Detail{Label: "Contact", Value: d.Contact},
			Detail{Label: "Email", Value: d.Email},
			Detail{Label: "Location", Value: d.Location},
		),
		Sections: []Section{{Label: "Previous Experience", Items: history}},
	}
}

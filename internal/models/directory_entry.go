package models

import "strings"

// Experience is one row of a banker's employment history
type Experience struct {
	CurrentInstitutionName string `json:"currentInstitutionName"`
	Role                   string `json:"role,omitempty"`
	StartDate              string `json:"startDate,omitempty"`
	EndDate                string `json:"endDate,omitempty"`
	Description            string `json:"description,omitempty"`
}

func (e Experience) blank() bool {
	return e.CurrentInstitutionName == "" && e.Role == "" && e.StartDate == "" &&
		e.EndDate == "" && e.Description == ""
}

// DirectoryEntry represents a banker / team member profile held by the bankers collection
type DirectoryEntry struct {
	ID                     string       `json:"_id,omitempty"`
	FullName               string       `json:"fullName"`
	Designation            string       `json:"designation,omitempty"`
	CurrentInstitutionName string       `json:"currentInstitutionName,omitempty"`
	ProfileImage           string       `json:"profileImage,omitempty"`
	Contact                string       `json:"contact,omitempty"`
	Email                  string       `json:"email,omitempty"`
	Location               string       `json:"location,omitempty"`
	TotalExperience        string       `json:"totalExperience,omitempty"`
	DateOfJoining          string       `json:"dateOfJoining,omitempty"`
	PreviousExperience     []Experience `json:"previousExperience"`
}

// Normalize trims every scalar and drops experience rows the user left blank.
func (d DirectoryEntry) Normalize() DirectoryEntry {
	d.FullName = strings.TrimSpace(d.FullName)
	d.Designation = strings.TrimSpace(d.Designation)
	d.CurrentInstitutionName = strings.TrimSpace(d.CurrentInstitutionName)
	d.ProfileImage = strings.TrimSpace(d.ProfileImage)
	d.Contact = strings.TrimSpace(d.Contact)
	d.Email = strings.TrimSpace(d.Email)
	d.Location = strings.TrimSpace(d.Location)
	d.TotalExperience = strings.TrimSpace(d.TotalExperience)
	d.DateOfJoining = strings.TrimSpace(d.DateOfJoining)

	history := make([]Experience, 0, len(d.PreviousExperience))
	for _, e := range d.PreviousExperience {
		e.CurrentInstitutionName = strings.TrimSpace(e.CurrentInstitutionName)
		e.Role = strings.TrimSpace(e.Role)
		e.StartDate = strings.TrimSpace(e.StartDate)
		e.EndDate = strings.TrimSpace(e.EndDate)
		e.Description = strings.TrimSpace(e.Description)
		if !e.blank() {
			history = append(history, e)
		}
	}
	d.PreviousExperience = history
	return d
}

func (d DirectoryEntry) Validate() error {
	return required("fullName", "Full Name", d.FullName)
}

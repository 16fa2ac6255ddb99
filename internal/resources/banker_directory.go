package resources

import (
	"github.com/f2fin/directory-dashboard/internal/forms"
	"github.com/f2fin/directory-dashboard/internal/models"
	"github.com/f2fin/directory-dashboard/internal/repositories"
	"github.com/f2fin/directory-dashboard/internal/views"
)

var DefaultBankerDirectoryPaths = repositories.Paths{
	List:   "/banker-directory/get-directories",
	Create: "/banker-directory/create-directories",
}

// BankerDirectories describes the banker-directory collection. Its location
// and name searches are mutually exclusive.
func BankerDirectories(paths repositories.Paths) Descriptor[models.BankerDirectory] {
	return Descriptor[models.BankerDirectory]{
		Key:   KeyBankerDirectory,
		Title: "Banker Directory",
		Paths: paths,
		Filters: []views.Filter[models.BankerDirectory]{
			{
				Name:  "location",
				Label: "Location",
				Match: views.AnyOf(func(b models.BankerDirectory) []string { return b.LocationCategories }),
			},
			{
				Name:  "name",
				Label: "Banker Name",
				Match: views.Field(func(b models.BankerDirectory) string { return b.BankerName }),
			},
		},
		Exclusive: true,
		Schema: forms.Schema{
			Title: "Create Banker Directory Entry",
			Fields: []forms.Field{
				{Key: "bankerName", Label: "Banker Name", Required: true},
				{Key: "associatedWith", Label: "Associated With"},
				{Key: "emailOfficial", Label: "Official Email"},
				{Key: "emailPersonal", Label: "Personal Email"},
				{Key: "contact", Label: "Contact"},
				{Key: "lastCurrentDesignation", Label: "Last/Current Designation"},
			},
			Lists: []forms.ListField{
				{Key: "locationCategories", Label: "Location", MinRows: 1},
				{Key: "product", Label: "Product", MinRows: 1},
			},
			SuccessNotice: "Banker Directory created successfully!",
		},
		Build: func(d *forms.Draft) models.BankerDirectory {
			return models.BankerDirectory{
				BankerName:             d.Get("bankerName"),
				AssociatedWith:         d.Get("associatedWith"),
				LocationCategories:     d.List("locationCategories").Strings(),
				EmailOfficial:          d.Get("emailOfficial"),
				EmailPersonal:          d.Get("emailPersonal"),
				Contact:                d.Get("contact"),
				LastCurrentDesignation: d.Get("lastCurrentDesignation"),
				Product:                d.List("product").Strings(),
			}
		},
		Normalize: models.BankerDirectory.Normalize,
		Validate:  models.BankerDirectory.Validate,
		ID:        func(b models.BankerDirectory) string { return b.ID },
		Card: func(b models.BankerDirectory) Card {
			return Card{
				Title:    b.BankerName,
				Subtitle: b.AssociatedWith,
				Details: nonEmpty(
					Detail{Label: "Official Email", Value: b.EmailOfficial},
					Detail{Label: "Personal Email", Value: b.EmailPersonal},
					Detail{Label: "Contact", Value: b.Contact},
					Detail{Label: "Designation", Value: b.LastCurrentDesignation},
				),
				Sections: []Section{
					{Label: "Location Categories", Items: b.LocationCategories},
					{Label: "Products", Items: b.Product},
				},
			}
		},
	}
}

package resources

import (
	"github.com/f2fin/directory-dashboard/internal/forms"
	"github.com/f2fin/directory-dashboard/internal/models"
	"github.com/f2fin/directory-dashboard/internal/repositories"
	"github.com/f2fin/directory-dashboard/internal/views"
)

var DefaultLenderPaths = repositories.Paths{
	List:   "/lenders/get-lenders",
	Create: "/lenders/create-lender",
}

// Lenders describes the lenders collection.
func Lenders(paths repositories.Paths) Descriptor[models.Lender] {
	return Descriptor[models.Lender]{
		Key:   KeyLenders,
		Title: "Lenders",
		Paths: paths,
		Filters: []views.Filter[models.Lender]{
			{
				Name:  "location",
				Label: "Location",
				Match: func(l models.Lender, q string) bool {
					return views.AnyContainsFold([]string{l.Location, l.State, l.City}, q)
				},
			},
		},
		Schema: forms.Schema{
			Title: "Add New Lender",
			Fields: []forms.Field{
				{Key: "lenderName", Label: "Lender Name", Required: true},
				{Key: "location", Label: "Location"},
				{Key: "state", Label: "State"},
				{Key: "city", Label: "City"},
				{Key: "managerName", Label: "RM / SM Name"},
				{Key: "rmContact", Label: "RM Contact"},
			},
			SuccessNotice: "Lender added successfully!",
		},
		Build: func(d *forms.Draft) models.Lender {
			return models.Lender{
				LenderName:  d.Get("lenderName"),
				Location:    d.Get("location"),
				State:       d.Get("state"),
				City:        d.Get("city"),
				ManagerName: d.Get("managerName"),
				RMContact:   d.Get("rmContact"),
			}
		},
		Normalize: models.Lender.Normalize,
		Validate:  models.Lender.Validate,
		ID:        func(l models.Lender) string { return l.ID },
		Card: func(l models.Lender) Card {
			subtitle := ""
			if place := l.Place(); place != "" {
				subtitle = "Location: " + place
			}
			return Card{
				Title:    l.LenderName,
				Subtitle: subtitle,
				Details: nonEmpty(
					Detail{Label: "RM/SM", Value: l.ManagerName},
					Detail{Label: "RM Contact", Value: l.RMContact},
				),
			}
		},
	}
}

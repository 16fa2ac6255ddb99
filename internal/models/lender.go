package models

import "strings"

// Lender represents a lending institution and its relationship manager
type Lender struct {
	ID          string `json:"_id,omitempty"`
	LenderName  string `json:"lenderName"`
	Location    string `json:"location,omitempty"`
	State       string `json:"state,omitempty"`
	City        string `json:"city,omitempty"`
	ManagerName string `json:"managerName,omitempty"`
	RMContact   string `json:"rmContact,omitempty"`
}

func (l Lender) Normalize() Lender {
	l.LenderName = strings.TrimSpace(l.LenderName)
	l.Location = strings.TrimSpace(l.Location)
	l.State = strings.TrimSpace(l.State)
	l.City = strings.TrimSpace(l.City)
	l.ManagerName = strings.TrimSpace(l.ManagerName)
	l.RMContact = strings.TrimSpace(l.RMContact)
	return l
}

func (l Lender) Validate() error {
	return required("lenderName", "Lender Name", l.LenderName)
}

// Place joins whichever of location, city and state are set.
func (l Lender) Place() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{l.Location, l.City, l.State} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

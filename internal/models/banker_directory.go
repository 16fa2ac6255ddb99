package models

import "strings"

// BankerDirectory is a banker contact card held by the banker-directory collection.
// It is a separate backend resource from DirectoryEntry.
type BankerDirectory struct {
	ID                     string   `json:"_id,omitempty"`
	BankerName             string   `json:"bankerName"`
	AssociatedWith         string   `json:"associatedWith,omitempty"`
	LocationCategories     []string `json:"locationCategories"`
	EmailOfficial          string   `json:"emailOfficial,omitempty"`
	EmailPersonal          string   `json:"emailPersonal,omitempty"`
	Contact                string   `json:"contact,omitempty"`
	LastCurrentDesignation string   `json:"lastCurrentDesignation,omitempty"`
	Product                []string `json:"product"`
}

func (b BankerDirectory) Normalize() BankerDirectory {
	b.BankerName = strings.TrimSpace(b.BankerName)
	b.AssociatedWith = strings.TrimSpace(b.AssociatedWith)
	b.EmailOfficial = strings.TrimSpace(b.EmailOfficial)
	b.EmailPersonal = strings.TrimSpace(b.EmailPersonal)
	b.Contact = strings.TrimSpace(b.Contact)
	b.LastCurrentDesignation = strings.TrimSpace(b.LastCurrentDesignation)
	b.LocationCategories = trimList(b.LocationCategories)
	b.Product = trimList(b.Product)
	return b
}

func (b BankerDirectory) Validate() error {
	return required("bankerName", "Banker Name", b.BankerName)
}

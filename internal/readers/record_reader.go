package reader

import (
	"io"
)

// Record is one data row keyed by canonical column name
type Record struct {
	Index  int
	Fields map[string]string
}

// Get returns the trimmed value of column, or "" when the file lacks it.
func (r Record) Get(column string) string {
	return r.Fields[column]
}

// Column maps a canonical field name to its header text
type Column struct {
	Field    string
	Header   string
	Required bool
}

// RecordReader defines the interface for reading import rows
type RecordReader interface {
	ReadRecords(reader io.Reader) ([]Record, error)
}

var LenderColumns = []Column{
	{Field: "lenderName", Header: "LENDER NAME", Required: true},
	{Field: "location", Header: "LOCATION"},
	{Field: "state", Header: "STATE"},
	{Field: "city", Header: "CITY"},
	{Field: "managerName", Header: "MANAGER NAME"},
	{Field: "rmContact", Header: "RM CONTACT"},
}

// BankerDirectoryColumns uses ';' inside LOCATIONS and PRODUCTS to separate entries.
var BankerDirectoryColumns = []Column{
	{Field: "bankerName", Header: "BANKER NAME", Required: true},
	{Field: "associatedWith", Header: "ASSOCIATED WITH"},
	{Field: "locationCategories", Header: "LOCATIONS"},
	{Field: "emailOfficial", Header: "OFFICIAL EMAIL"},
	{Field: "emailPersonal", Header: "PERSONAL EMAIL"},
	{Field: "contact", Header: "CONTACT"},
	{Field: "lastCurrentDesignation", Header: "DESIGNATION"},
	{Field: "product", Header: "PRODUCTS"},
}

package parser

import (
	"strings"

	"go.uber.org/zap"

	"github.com/f2fin/directory-dashboard/internal/models"
	readers "github.com/f2fin/directory-dashboard/internal/readers"
)

// ListSeparator splits multi-value import cells
const ListSeparator = ";"

// RecordParser turns import rows into records. Rows that fail validation
// are logged and skipped.
type RecordParser[T any] interface {
	Parse(records []readers.Record) []T
}

type LenderParser struct {
	Logger *zap.Logger
}

func (p LenderParser) Parse(records []readers.Record) []models.Lender {
	return parseAll(records, p.Logger, func(r readers.Record) (models.Lender, error) {
		l := models.Lender{
			LenderName:  r.Get("lenderName"),
			Location:    r.Get("location"),
			State:       r.Get("state"),
			City:        r.Get("city"),
			ManagerName: r.Get("managerName"),
			RMContact:   r.Get("rmContact"),
		}.Normalize()
		return l, l.Validate()
	})
}

type BankerDirectoryParser struct {
	Logger *zap.Logger
}

func (p BankerDirectoryParser) Parse(records []readers.Record) []models.BankerDirectory {
	return parseAll(records, p.Logger, func(r readers.Record) (models.BankerDirectory, error) {
		b := models.BankerDirectory{
			BankerName:             r.Get("bankerName"),
			AssociatedWith:         r.Get("associatedWith"),
			LocationCategories:     splitList(r.Get("locationCategories")),
			EmailOfficial:          r.Get("emailOfficial"),
			EmailPersonal:          r.Get("emailPersonal"),
			Contact:                r.Get("contact"),
			LastCurrentDesignation: r.Get("lastCurrentDesignation"),
			Product:                splitList(r.Get("product")),
		}.Normalize()
		return b, b.Validate()
	})
}

func parseAll[T any](records []readers.Record, logger *zap.Logger, parse func(readers.Record) (T, error)) []T {
	if logger == nil {
		logger = zap.NewNop()
	}
	out := make([]T, 0, len(records))
	for _, record := range records {
		v, err := parse(record)
		if err != nil {
			logger.Warn("skipping invalid record", zap.Int("index", record.Index), zap.Error(err))
			continue
		}
		out = append(out, v)
	}
	return out
}

func splitList(cell string) []string {
	if cell == "" {
		return []string{}
	}
	return strings.Split(cell, ListSeparator)
}

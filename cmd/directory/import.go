package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	parser "github.com/f2fin/directory-dashboard/internal/parsers"
	readers "github.com/f2fin/directory-dashboard/internal/readers"
	"github.com/f2fin/directory-dashboard/internal/readers/csv"
	"github.com/f2fin/directory-dashboard/internal/resources"
	service "github.com/f2fin/directory-dashboard/internal/services"
)

var importCmd = &cobra.Command{
	Use:   "import <lenders|banker-directory> <file.csv>",
	Short: "Create records in bulk from a CSV file",
	Long: `Reads a CSV file and creates one record per valid row through the backend.

Lender columns: LENDER NAME (required), LOCATION, STATE, CITY, MANAGER NAME,
RM CONTACT. Banker directory columns: BANKER NAME (required), ASSOCIATED WITH,
LOCATIONS, OFFICIAL EMAIL, PERSONAL EMAIL, CONTACT, DESIGNATION, PRODUCTS.
LOCATIONS and PRODUCTS separate entries with ';'.`,
	Args: cobra.ExactArgs(2),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	kind, path := args[0], args[1]

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	store := openSession(cfg, logger)
	b := newBackend(cfg, store, logger)

	var result service.ImportResult
	switch kind {
	case resources.KeyLenders:
		records, err := readRecords(csv.NewLenderReader(), file)
		if err != nil {
			return err
		}
		lenders := parser.LenderParser{Logger: logger}.Parse(records)
		svc := service.NewResourceService(b.lendersDesc, b.lenders, logger)
		result, err = service.NewImporter(svc, logger).Import(cmd.Context(), lenders)
		if err != nil {
			return err
		}
		result.Failed += len(records) - len(lenders)
	case resources.KeyBankerDirectory:
		records, err := readRecords(csv.NewBankerDirectoryReader(), file)
		if err != nil {
			return err
		}
		entries := parser.BankerDirectoryParser{Logger: logger}.Parse(records)
		svc := service.NewResourceService(b.directoryDesc, b.directory, logger)
		result, err = service.NewImporter(svc, logger).Import(cmd.Context(), entries)
		if err != nil {
			return err
		}
		result.Failed += len(records) - len(entries)
	default:
		return fmt.Errorf("unknown collection %q: use %s or %s", kind, resources.KeyLenders, resources.KeyBankerDirectory)
	}

	logger.Info("import complete", zap.String("file", path), zap.Int("created", result.Created), zap.Int("failed", result.Failed))
	fmt.Fprintf(cmd.OutOrStdout(), "Created %d of %d records from %s in %v (%d failed).\n",
		result.Created, result.Created+result.Failed, path, result.Duration, result.Failed)
	return nil
}

func readRecords(r readers.RecordReader, file *os.File) ([]readers.Record, error) {
	records, err := r.ReadRecords(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file.Name(), err)
	}
	return records, nil
}

package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	repository "github.com/f2fin/directory-dashboard/internal/repositories"
)

// ImportResult counts the outcome of one import run
type ImportResult struct {
	Total    int
	Created  int
	Failed   int
	Duration time.Duration
}

// Importer creates parsed records one at a time through a ResourceService.
// A failed record is logged and counted; the run continues.
type Importer[T any] struct {
	svc    ResourceService[T]
	logger *zap.Logger
}

func NewImporter[T any](svc ResourceService[T], logger *zap.Logger) *Importer[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Importer[T]{svc: svc, logger: logger}
}

// Import stops early only when ctx is done.
func (i *Importer[T]) Import(ctx context.Context, records []T) (ImportResult, error) {
	start := time.Now()
	result := ImportResult{Total: len(records)}

	for n, record := range records {
		if err := ctx.Err(); err != nil {
			result.Duration = time.Since(start)
			return result, err
		}
		if _, err := i.svc.Create(ctx, record); err != nil {
			result.Failed++
			i.logger.Warn("import record failed",
				zap.String("resource", i.svc.Key()),
				zap.Int("record", n+1),
				zap.String("message", repository.ErrorMessage(err)),
				zap.Error(err),
			)
			continue
		}
		result.Created++
	}

	result.Duration = time.Since(start)
	i.logger.Info("import finished",
		zap.String("resource", i.svc.Key()),
		zap.Int("created", result.Created),
		zap.Int("failed", result.Failed),
		zap.Duration("duration", result.Duration),
	)
	return result, nil
}

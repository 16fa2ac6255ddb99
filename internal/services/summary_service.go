package service

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/f2fin/directory-dashboard/internal/models"
	repository "github.com/f2fin/directory-dashboard/internal/repositories"
)

// Summary is the headline count panel
type Summary struct {
	Bankers     int `json:"bankers"`
	Lenders     int `json:"lenders"`
	Total       int `json:"total"`
	LenderShare int `json:"lenderShare"`
}

type SummaryService interface {
	Summarize(ctx context.Context) (Summary, error)
}

type summaryService struct {
	bankers repository.Repository[models.DirectoryEntry]
	lenders repository.Repository[models.Lender]
	logger  *zap.Logger
}

func NewSummaryService(
	bankers repository.Repository[models.DirectoryEntry],
	lenders repository.Repository[models.Lender],
	logger *zap.Logger,
) SummaryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &summaryService{bankers: bankers, lenders: lenders, logger: logger}
}

// Summarize fetches both collections concurrently. Either failure fails the summary.
func (s *summaryService) Summarize(ctx context.Context) (Summary, error) {
	var bankers, lenders int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		all, err := s.bankers.List(gctx)
		if err != nil {
			return fmt.Errorf("bankers: %w", err)
		}
		bankers = len(all)
		return nil
	})
	g.Go(func() error {
		all, err := s.lenders.List(gctx)
		if err != nil {
			return fmt.Errorf("lenders: %w", err)
		}
		lenders = len(all)
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.Warn("summary failed", zap.Error(err))
		return Summary{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	total := bankers + lenders
	return Summary{
		Bankers:     bankers,
		Lenders:     lenders,
		Total:       total,
		LenderShare: LenderShare(lenders, total),
	}, nil
}

// LenderShare is round(lenders / total * 100), and 0 for an empty total.
func LenderShare(lenders, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(lenders) * 100 / float64(total)))
}

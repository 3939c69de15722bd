package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"laundrypos/internal/domain"
	apperrors "laundrypos/internal/errors"
)

const dateLayout = "2006-01-02"

type ReportRepository interface {
	StatusSnapshots(ctx context.Context) ([]domain.StatusSnapshot, error)
	CustomersWithOrdersBetween(ctx context.Context, start, end time.Time) ([]domain.Customer, error)
	Income(ctx context.Context, start, end time.Time) (domain.IncomeSummary, error)
	Entries(ctx context.Context) ([]domain.ReportEntry, error)
}

// LaundryStatusQuery holds the raw report parameters. Dates use the
// YYYY-MM-DD form; blank values leave the range open.
type LaundryStatusQuery struct {
	Status string
	From   string
	To     string
}

type ReportUseCase struct {
	repo   ReportRepository
	loc    *time.Location
	logger *zap.Logger
	now    func() time.Time
}

func NewReportUseCase(repo ReportRepository, loc *time.Location, logger *zap.Logger) *ReportUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &ReportUseCase{
		repo:   repo,
		loc:    loc,
		logger: logger,
		now:    time.Now,
	}
}

func (uc *ReportUseCase) Dashboard(ctx context.Context) (domain.DashboardCounts, error) {
	snapshots, err := uc.repo.StatusSnapshots(ctx)
	if err != nil {
		return domain.DashboardCounts{}, err
	}
	return domain.CountDashboard(snapshots, uc.now(), uc.loc), nil
}

// TodayCustomers lists the customers with an order created during the
// current calendar day.
func (uc *ReportUseCase) TodayCustomers(ctx context.Context) ([]domain.Customer, error) {
	start, end := domain.DayWindow(uc.now(), uc.loc)
	return uc.repo.CustomersWithOrdersBetween(ctx, start, end)
}

func (uc *ReportUseCase) Income(ctx context.Context) (domain.IncomeSummary, error) {
	start, end := domain.DayWindow(uc.now(), uc.loc)
	return uc.repo.Income(ctx, start, end)
}

func (uc *ReportUseCase) LaundryStatus(ctx context.Context, q LaundryStatusQuery) ([]domain.ReportEntry, error) {
	filter, ok := domain.ParseStatusFilter(q.Status)
	if !ok {
		return nil, apperrors.NewValidationError("Please select a valid status filter.", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status must be one of: All, Pending, Finished, Paid, Unpaid, Claimed, Unclaimed",
		})
	}
	from, err := uc.parseDay("from", q.From)
	if err != nil {
		return nil, err
	}
	to, err := uc.parseDay("to", q.To)
	if err != nil {
		return nil, err
	}

	entries, err := uc.repo.Entries(ctx)
	if err != nil {
		return nil, err
	}

	filtered := domain.FilterReport(entries, filter, from, to, uc.loc)
	uc.logger.Debug("laundry status report built",
		zap.String("status", string(filter)),
		zap.Int("total", len(entries)),
		zap.Int("matched", len(filtered)),
	)
	return filtered, nil
}

func (uc *ReportUseCase) parseDay(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	day, err := time.ParseInLocation(dateLayout, value, uc.loc)
	if err != nil {
		msg := field + " must be a date in the form YYYY-MM-DD"
		return nil, apperrors.NewValidationError(msg, apperrors.ValidationDetail{Field: field, Message: msg})
	}
	return &day, nil
}

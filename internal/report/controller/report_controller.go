package controller

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"laundrypos/internal/commons"
	"laundrypos/internal/domain"
	"laundrypos/internal/dto"
	"laundrypos/internal/report/usecase"
)

type ReportUseCase interface {
	Dashboard(ctx context.Context) (domain.DashboardCounts, error)
	TodayCustomers(ctx context.Context) ([]domain.Customer, error)
	Income(ctx context.Context) (domain.IncomeSummary, error)
	LaundryStatus(ctx context.Context, q usecase.LaundryStatusQuery) ([]domain.ReportEntry, error)
}

type ReportController struct {
	useCase ReportUseCase
	logger  *zap.Logger
}

func NewReportController(useCase ReportUseCase, logger *zap.Logger) *ReportController {
	return &ReportController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *ReportController) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Get("/dashboard", c.Dashboard)
		r.Get("/today-customers", c.TodayCustomers)
		r.Get("/income", c.Income)
		r.Get("/laundry-status", c.LaundryStatus)
	})
}

func (c *ReportController) Dashboard(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	counts, err := c.useCase.Dashboard(r.Context())
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewDashboardResponse(counts), logger)
}

func (c *ReportController) TodayCustomers(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	customers, err := c.useCase.TodayCustomers(r.Context())
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewCustomerResponses(customers), logger)
}

func (c *ReportController) Income(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	summary, err := c.useCase.Income(r.Context())
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewIncomeResponse(summary, commons.FormatAmount), logger)
}

func (c *ReportController) LaundryStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	q := r.URL.Query()
	entries, err := c.useCase.LaundryStatus(r.Context(), usecase.LaundryStatusQuery{
		Status: q.Get("status"),
		From:   q.Get("from"),
		To:     q.Get("to"),
	})
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewReportEntryResponses(entries, commons.FormatAmount), logger)
}

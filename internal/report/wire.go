package report

import (
	"database/sql"
	"time"

	"go.uber.org/zap"

	"laundrypos/internal/report/controller"
	"laundrypos/internal/report/repository"
	"laundrypos/internal/report/usecase"
)

type Module struct {
	Controller *controller.ReportController
	UseCase    *usecase.ReportUseCase
}

// NewModule wires the reports. Calendar days are computed in loc.
func NewModule(db *sql.DB, loc *time.Location, logger *zap.Logger) *Module {
	uc := usecase.NewReportUseCase(repository.NewSQLReportRepository(db), loc, logger)
	return &Module{
		Controller: controller.NewReportController(uc, logger),
		UseCase:    uc,
	}
}

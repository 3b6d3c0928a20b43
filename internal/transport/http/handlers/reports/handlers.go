package reportshandler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrconsole/internal/domain/core"
	"hrconsole/internal/domain/leave"
	"hrconsole/internal/domain/reports"
	"hrconsole/internal/transport/http/api"
	"hrconsole/internal/transport/http/middleware"
)

type Handler struct {
	Core  *core.Service
	Leave *leave.Service
	// Now is injectable so the projections stay deterministic under test.
	Now func() time.Time
}

func NewHandler(coreSvc *core.Service, leaveSvc *leave.Service) *Handler {
	return &Handler{Core: coreSvc, Leave: leaveSvc, Now: time.Now}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard", h.handleDashboard)
	r.Route("/reports", func(r chi.Router) {
		r.Get("/", h.handleReport)
		r.Get("/export", h.handleExport)
	})
}

func (h *Handler) snapshots(r *http.Request) ([]core.Employee, []core.Department, []leave.LeaveRequest, error) {
	employees, err := h.Core.ListEmployees(r.Context())
	if err != nil {
		return nil, nil, nil, err
	}
	departments, err := h.Core.ListDepartments(r.Context())
	if err != nil {
		return nil, nil, nil, err
	}
	requests, err := h.Leave.List(r.Context())
	if err != nil {
		return nil, nil, nil, err
	}
	return employees, departments, requests, nil
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	employees, departments, requests, err := h.snapshots(r)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "dashboard_failed", "failed to load dashboard data", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, reports.BuildDashboard(employees, departments, requests, h.Now()), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	employees, departments, requests, err := h.snapshots(r)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to load report data", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, reports.BuildReport(employees, departments, requests, h.Now()), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	employees, departments, requests, err := h.snapshots(r)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to load report data", middleware.GetRequestID(r.Context()))
		return
	}

	now := h.Now()
	pdfBytes, err := reports.RenderPDF(reports.BuildReport(employees, departments, requests, now))
	if err != nil {
		slog.Warn("report pdf render failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "report_export_failed", "failed to render report", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=hr-report-%s.pdf", now.Format("2006-01-02")))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}

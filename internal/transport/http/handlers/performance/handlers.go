package performancehandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hrconsole/internal/domain/performance"
	"hrconsole/internal/platform/memstore"
	"hrconsole/internal/transport/http/api"
	"hrconsole/internal/transport/http/middleware"
	"hrconsole/internal/transport/http/shared"
)

type Handler struct {
	Service *performance.Service
}

func NewHandler(service *performance.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/performance-reviews", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Route("/{reviewID}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Put("/", h.handleUpdate)
			r.Delete("/", h.handleDelete)
		})
	})
}

func reviewID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "reviewID"))
	return id, err == nil && id > 0
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	// ?employeeId= narrows the listing the way the employee detail page uses it.
	if raw := r.URL.Query().Get("employeeId"); raw != "" {
		employeeID, err := strconv.Atoi(raw)
		if err != nil || employeeID <= 0 {
			api.Fail(w, http.StatusBadRequest, "invalid_id", "employeeId must be a positive integer", middleware.GetRequestID(r.Context()))
			return
		}
		reviews, err := h.Service.ListByEmployee(r.Context(), employeeID)
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "review_list_failed", "failed to list performance reviews", middleware.GetRequestID(r.Context()))
			return
		}
		api.Success(w, reviews, middleware.GetRequestID(r.Context()))
		return
	}

	reviews, err := h.Service.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "review_list_failed", "failed to list performance reviews", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, reviews, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := reviewID(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "review id must be a positive integer", middleware.GetRequestID(r.Context()))
		return
	}

	review, found, err := h.Service.Get(r.Context(), id)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "review_get_failed", "failed to get performance review", middleware.GetRequestID(r.Context()))
		return
	}
	if !found {
		api.Fail(w, http.StatusNotFound, "not_found", "performance review not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, review, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		EmployeeID       int    `json:"employeeId"`
		ReviewPeriod     string `json:"reviewPeriod"`
		OverallRating    int    `json:"overallRating"`
		TechnicalSkills  int    `json:"technicalSkills"`
		Communication    int    `json:"communication"`
		Leadership       int    `json:"leadership"`
		Teamwork         int    `json:"teamwork"`
		ProblemSolving   int    `json:"problemSolving"`
		Goals            string `json:"goals"`
		Achievements     string `json:"achievements"`
		ImprovementAreas string `json:"improvementAreas"`
		Feedback         string `json:"feedback"`
		ReviewerName     string `json:"reviewerName"`
		ReviewDate       string `json:"reviewDate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", middleware.GetRequestID(r.Context()))
		return
	}

	reviewDate, err := shared.ParseDate(payload.ReviewDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_date", "reviewDate must be RFC3339 or YYYY-MM-DD", middleware.GetRequestID(r.Context()))
		return
	}

	review, err := h.Service.Create(r.Context(), performance.Review{
		EmployeeID:       payload.EmployeeID,
		ReviewPeriod:     payload.ReviewPeriod,
		OverallRating:    payload.OverallRating,
		TechnicalSkills:  payload.TechnicalSkills,
		Communication:    payload.Communication,
		Leadership:       payload.Leadership,
		Teamwork:         payload.Teamwork,
		ProblemSolving:   payload.ProblemSolving,
		Goals:            payload.Goals,
		Achievements:     payload.Achievements,
		ImprovementAreas: payload.ImprovementAreas,
		Feedback:         payload.Feedback,
		ReviewerName:     payload.ReviewerName,
		ReviewDate:       reviewDate,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "review_create_failed", "failed to create performance review", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, review, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := reviewID(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "review id must be a positive integer", middleware.GetRequestID(r.Context()))
		return
	}

	var payload struct {
		EmployeeID       *int    `json:"employeeId"`
		ReviewPeriod     *string `json:"reviewPeriod"`
		OverallRating    *int    `json:"overallRating"`
		TechnicalSkills  *int    `json:"technicalSkills"`
		Communication    *int    `json:"communication"`
		Leadership       *int    `json:"leadership"`
		Teamwork         *int    `json:"teamwork"`
		ProblemSolving   *int    `json:"problemSolving"`
		Goals            *string `json:"goals"`
		Achievements     *string `json:"achievements"`
		ImprovementAreas *string `json:"improvementAreas"`
		Feedback         *string `json:"feedback"`
		ReviewerName     *string `json:"reviewerName"`
		ReviewDate       *string `json:"reviewDate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", middleware.GetRequestID(r.Context()))
		return
	}

	patch := performance.ReviewPatch{
		EmployeeID:       payload.EmployeeID,
		ReviewPeriod:     payload.ReviewPeriod,
		OverallRating:    payload.OverallRating,
		TechnicalSkills:  payload.TechnicalSkills,
		Communication:    payload.Communication,
		Leadership:       payload.Leadership,
		Teamwork:         payload.Teamwork,
		ProblemSolving:   payload.ProblemSolving,
		Goals:            payload.Goals,
		Achievements:     payload.Achievements,
		ImprovementAreas: payload.ImprovementAreas,
		Feedback:         payload.Feedback,
		ReviewerName:     payload.ReviewerName,
	}
	if payload.ReviewDate != nil {
		reviewDate, err := shared.ParseDate(*payload.ReviewDate)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_date", "reviewDate must be RFC3339 or YYYY-MM-DD", middleware.GetRequestID(r.Context()))
			return
		}
		patch.ReviewDate = &reviewDate
	}

	review, err := h.Service.Update(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, memstore.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", err.Error(), middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "review_update_failed", "failed to update performance review", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, review, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := reviewID(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "review id must be a positive integer", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, memstore.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", err.Error(), middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "review_delete_failed", "failed to delete performance review", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, middleware.GetRequestID(r.Context()))
}

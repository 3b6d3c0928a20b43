package leavehandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hrconsole/internal/domain/leave"
	"hrconsole/internal/platform/memstore"
	"hrconsole/internal/transport/http/api"
	"hrconsole/internal/transport/http/middleware"
	"hrconsole/internal/transport/http/shared"
)

type Handler struct {
	Service *leave.Service
}

func NewHandler(service *leave.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leave-requests", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Route("/{requestID}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Put("/", h.handleUpdate)
			r.Put("/status", h.handleSetStatus)
			r.Delete("/", h.handleDelete)
		})
	})
}

func requestID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "requestID"))
	return id, err == nil && id > 0
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Service.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_list_failed", "failed to list leave requests", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, requests, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := requestID(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "leave request id must be a positive integer", middleware.GetRequestID(r.Context()))
		return
	}

	req, found, err := h.Service.Get(r.Context(), id)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_get_failed", "failed to get leave request", middleware.GetRequestID(r.Context()))
		return
	}
	if !found {
		api.Fail(w, http.StatusNotFound, "not_found", "leave request not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, req, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		EmployeeID int    `json:"employeeId"`
		Type       string `json:"type"`
		StartDate  string `json:"startDate"`
		EndDate    string `json:"endDate"`
		Reason     string `json:"reason"`
		// Status is accepted but ignored; creation always yields Pending.
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", middleware.GetRequestID(r.Context()))
		return
	}

	startDate, err := shared.ParseDate(payload.StartDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_date", "startDate must be RFC3339 or YYYY-MM-DD", middleware.GetRequestID(r.Context()))
		return
	}
	endDate, err := shared.ParseDate(payload.EndDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_date", "endDate must be RFC3339 or YYYY-MM-DD", middleware.GetRequestID(r.Context()))
		return
	}
	if endDate.Before(startDate) {
		api.Fail(w, http.StatusBadRequest, "invalid_range", "endDate must not be before startDate", middleware.GetRequestID(r.Context()))
		return
	}

	req, err := h.Service.Create(r.Context(), leave.LeaveRequest{
		EmployeeID: payload.EmployeeID,
		Type:       payload.Type,
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     payload.Reason,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_create_failed", "failed to create leave request", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, req, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := requestID(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "leave request id must be a positive integer", middleware.GetRequestID(r.Context()))
		return
	}

	var payload struct {
		EmployeeID *int    `json:"employeeId"`
		Type       *string `json:"type"`
		StartDate  *string `json:"startDate"`
		EndDate    *string `json:"endDate"`
		Reason     *string `json:"reason"`
		Status     *string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", middleware.GetRequestID(r.Context()))
		return
	}

	patch := leave.LeaveRequestPatch{
		EmployeeID: payload.EmployeeID,
		Type:       payload.Type,
		Reason:     payload.Reason,
		Status:     payload.Status,
	}
	if payload.StartDate != nil {
		startDate, err := shared.ParseDate(*payload.StartDate)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_date", "startDate must be RFC3339 or YYYY-MM-DD", middleware.GetRequestID(r.Context()))
			return
		}
		patch.StartDate = &startDate
	}
	if payload.EndDate != nil {
		endDate, err := shared.ParseDate(*payload.EndDate)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_date", "endDate must be RFC3339 or YYYY-MM-DD", middleware.GetRequestID(r.Context()))
			return
		}
		patch.EndDate = &endDate
	}

	req, err := h.Service.Update(r.Context(), id, patch)
	if err != nil {
		failMutation(w, r, err, "leave_update_failed", "failed to update leave request")
		return
	}
	api.Success(w, req, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := requestID(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "leave request id must be a positive integer", middleware.GetRequestID(r.Context()))
		return
	}

	var payload struct {
		Status   string `json:"status"`
		Approver string `json:"approver"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", middleware.GetRequestID(r.Context()))
		return
	}

	switch payload.Status {
	case leave.StatusApproved, leave.StatusRejected, leave.StatusPending:
	default:
		api.Fail(w, http.StatusBadRequest, "invalid_status", "status must be Pending, Approved or Rejected", middleware.GetRequestID(r.Context()))
		return
	}

	req, err := h.Service.SetStatus(r.Context(), id, payload.Status, payload.Approver)
	if err != nil {
		failMutation(w, r, err, "leave_status_failed", "failed to update leave request status")
		return
	}
	api.Success(w, req, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := requestID(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "leave request id must be a positive integer", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		failMutation(w, r, err, "leave_delete_failed", "failed to delete leave request")
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, middleware.GetRequestID(r.Context()))
}

func failMutation(w http.ResponseWriter, r *http.Request, err error, code, message string) {
	if errors.Is(err, memstore.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	api.Fail(w, http.StatusInternalServerError, code, message, middleware.GetRequestID(r.Context()))
}

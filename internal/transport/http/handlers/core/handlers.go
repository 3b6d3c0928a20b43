package corehandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hrconsole/internal/domain/core"
	"hrconsole/internal/platform/memstore"
	"hrconsole/internal/transport/http/api"
	"hrconsole/internal/transport/http/middleware"
	"hrconsole/internal/transport/http/shared"
)

type Handler struct {
	Service *core.Service
}

func NewHandler(service *core.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleListEmployees)
		r.Post("/", h.handleCreateEmployee)
		r.Route("/{employeeID}", func(r chi.Router) {
			r.Get("/", h.handleGetEmployee)
			r.Put("/", h.handleUpdateEmployee)
			r.Delete("/", h.handleDeleteEmployee)
		})
	})
	r.Route("/departments", func(r chi.Router) {
		r.Get("/", h.handleListDepartments)
		r.Post("/", h.handleCreateDepartment)
		r.Route("/{departmentID}", func(r chi.Router) {
			r.Get("/", h.handleGetDepartment)
			r.Put("/", h.handleUpdateDepartment)
			r.Delete("/", h.handleDeleteDepartment)
		})
	})
}

func pathID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	return id, err == nil && id > 0
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.ListEmployees(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_list_failed", "failed to list employees", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, employees, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "employeeID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "employee id must be a positive integer", middleware.GetRequestID(r.Context()))
		return
	}

	emp, found, err := h.Service.GetEmployee(r.Context(), id)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_get_failed", "failed to get employee", middleware.GetRequestID(r.Context()))
		return
	}
	if !found {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FirstName  string `json:"firstName"`
		LastName   string `json:"lastName"`
		Email      string `json:"email"`
		Phone      string `json:"phone"`
		Role       string `json:"role"`
		Department string `json:"department"`
		ManagerID  int    `json:"managerId"`
		StartDate  string `json:"startDate"`
		Status     string `json:"status"`
		Photo      string `json:"photo"`
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

	emp, err := h.Service.CreateEmployee(r.Context(), core.Employee{
		FirstName:  payload.FirstName,
		LastName:   payload.LastName,
		Email:      payload.Email,
		Phone:      payload.Phone,
		Role:       payload.Role,
		Department: payload.Department,
		ManagerID:  payload.ManagerID,
		StartDate:  startDate,
		Status:     payload.Status,
		Photo:      payload.Photo,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_create_failed", "failed to create employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "employeeID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "employee id must be a positive integer", middleware.GetRequestID(r.Context()))
		return
	}

	var payload struct {
		FirstName  *string `json:"firstName"`
		LastName   *string `json:"lastName"`
		Email      *string `json:"email"`
		Phone      *string `json:"phone"`
		Role       *string `json:"role"`
		Department *string `json:"department"`
		ManagerID  *int    `json:"managerId"`
		StartDate  *string `json:"startDate"`
		Status     *string `json:"status"`
		Photo      *string `json:"photo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", middleware.GetRequestID(r.Context()))
		return
	}

	patch := core.EmployeePatch{
		FirstName:  payload.FirstName,
		LastName:   payload.LastName,
		Email:      payload.Email,
		Phone:      payload.Phone,
		Role:       payload.Role,
		Department: payload.Department,
		ManagerID:  payload.ManagerID,
		Status:     payload.Status,
		Photo:      payload.Photo,
	}
	if payload.StartDate != nil {
		startDate, err := shared.ParseDate(*payload.StartDate)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_date", "startDate must be RFC3339 or YYYY-MM-DD", middleware.GetRequestID(r.Context()))
			return
		}
		patch.StartDate = &startDate
	}

	emp, err := h.Service.UpdateEmployee(r.Context(), id, patch)
	if err != nil {
		failMutation(w, r, err, "employee_update_failed", "failed to update employee")
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "employeeID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "employee id must be a positive integer", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Service.DeleteEmployee(r.Context(), id); err != nil {
		failMutation(w, r, err, "employee_delete_failed", "failed to delete employee")
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.Service.ListDepartments(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "department_list_failed", "failed to list departments", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, departments, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "departmentID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "department id must be a positive integer", middleware.GetRequestID(r.Context()))
		return
	}

	dept, found, err := h.Service.GetDepartment(r.Context(), id)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "department_get_failed", "failed to get department", middleware.GetRequestID(r.Context()))
		return
	}
	if !found {
		api.Fail(w, http.StatusNotFound, "not_found", "department not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, dept, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateDepartment(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name      string `json:"name"`
		ManagerID int    `json:"managerId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", middleware.GetRequestID(r.Context()))
		return
	}

	dept, err := h.Service.CreateDepartment(r.Context(), core.Department{
		Name:      payload.Name,
		ManagerID: payload.ManagerID,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "department_create_failed", "failed to create department", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, dept, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "departmentID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "department id must be a positive integer", middleware.GetRequestID(r.Context()))
		return
	}

	var patch core.DepartmentPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", middleware.GetRequestID(r.Context()))
		return
	}

	dept, err := h.Service.UpdateDepartment(r.Context(), id, patch)
	if err != nil {
		failMutation(w, r, err, "department_update_failed", "failed to update department")
		return
	}
	api.Success(w, dept, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "departmentID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "department id must be a positive integer", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Service.DeleteDepartment(r.Context(), id); err != nil {
		failMutation(w, r, err, "department_delete_failed", "failed to delete department")
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

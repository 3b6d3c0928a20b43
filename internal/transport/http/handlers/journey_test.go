package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"hrconsole/internal/app/server"
	"hrconsole/internal/platform/config"
)

type envelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	Error     *apiError       `json:"error"`
	RequestID string          `json:"requestId"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	app, err := server.New(config.Config{
		Addr:               ":0",
		Environment:        "test",
		FrontendDir:        t.TempDir(),
		SimulateLatency:    false,
		NotificationSeed:   42,
		MaxBodyBytes:       1 << 20,
		RateLimitPerMinute: 10000,
		MetricsEnabled:     true,
	})
	if err != nil {
		t.Fatalf("build app: %v", err)
	}
	ts := httptest.NewServer(app.Router)
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url string, body any) (int, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return resp.StatusCode, env
}

func TestEmployeeLifecycle(t *testing.T) {
	ts := newTestServer(t)
	base := ts.URL + "/api/v1/employees"

	status, env := doJSON(t, http.MethodGet, base, nil)
	if status != http.StatusOK || !env.Success {
		t.Fatalf("list: status=%d env=%+v", status, env)
	}
	var before []json.RawMessage
	if err := json.Unmarshal(env.Data, &before); err != nil {
		t.Fatalf("decode list: %v", err)
	}

	status, env = doJSON(t, http.MethodPost, base, map[string]any{
		"firstName":  "Greta",
		"lastName":   "Holm",
		"email":      "greta.holm@example.com",
		"role":       "Data Engineer",
		"department": "Engineering",
		"startDate":  "2026-08-31",
		"status":     "Active",
	})
	if status != http.StatusCreated {
		t.Fatalf("create: status=%d error=%+v", status, env.Error)
	}
	var created struct {
		ID        int    `json:"id"`
		FirstName string `json:"firstName"`
		Status    string `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created.ID <= 0 {
		t.Fatalf("created id: %d", created.ID)
	}
	if env.RequestID == "" {
		t.Fatal("missing request id in envelope")
	}

	status, env = doJSON(t, http.MethodGet, fmt.Sprintf("%s/%d", base, created.ID), nil)
	if status != http.StatusOK {
		t.Fatalf("get: status=%d", status)
	}

	status, env = doJSON(t, http.MethodPut, fmt.Sprintf("%s/%d", base, created.ID), map[string]any{
		"role": "Senior Data Engineer",
	})
	if status != http.StatusOK {
		t.Fatalf("update: status=%d error=%+v", status, env.Error)
	}
	var updated struct {
		FirstName string `json:"firstName"`
		Role      string `json:"role"`
	}
	if err := json.Unmarshal(env.Data, &updated); err != nil {
		t.Fatalf("decode updated: %v", err)
	}
	if updated.Role != "Senior Data Engineer" {
		t.Fatalf("role not updated: %q", updated.Role)
	}
	if updated.FirstName != "Greta" {
		t.Fatalf("partial update clobbered firstName: %q", updated.FirstName)
	}

	status, env = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/%d", base, created.ID), nil)
	if status != http.StatusOK {
		t.Fatalf("delete: status=%d", status)
	}

	status, env = doJSON(t, http.MethodGet, base, nil)
	if status != http.StatusOK {
		t.Fatalf("list after delete: status=%d", status)
	}
	var after []json.RawMessage
	if err := json.Unmarshal(env.Data, &after); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(after) != len(before) {
		t.Fatalf("expected %d employees after delete, got %d", len(before), len(after))
	}
}

func TestEmployeeNotFoundResponses(t *testing.T) {
	ts := newTestServer(t)
	base := ts.URL + "/api/v1/employees"

	status, env := doJSON(t, http.MethodGet, base+"/9999", nil)
	if status != http.StatusNotFound {
		t.Fatalf("get missing: status=%d", status)
	}
	if env.Error == nil || env.Error.Code != "not_found" {
		t.Fatalf("error payload: %+v", env.Error)
	}

	status, env = doJSON(t, http.MethodPut, base+"/9999", map[string]any{"role": "Ghost"})
	if status != http.StatusNotFound {
		t.Fatalf("update missing: status=%d", status)
	}

	status, env = doJSON(t, http.MethodDelete, base+"/9999", nil)
	if status != http.StatusNotFound {
		t.Fatalf("delete missing: status=%d", status)
	}

	status, env = doJSON(t, http.MethodGet, base+"/abc", nil)
	if status != http.StatusBadRequest {
		t.Fatalf("invalid id: status=%d", status)
	}
	if env.Error == nil || env.Error.Code != "invalid_id" {
		t.Fatalf("error payload: %+v", env.Error)
	}
}

func TestLeaveRequestFlow(t *testing.T) {
	ts := newTestServer(t)
	base := ts.URL + "/api/v1/leave-requests"

	status, env := doJSON(t, http.MethodPost, base, map[string]any{
		"employeeId": 1,
		"type":       "Vacation",
		"startDate":  "2026-09-10",
		"endDate":    "2026-09-14",
		"reason":     "autumn break",
		"status":     "Approved",
	})
	if status != http.StatusCreated {
		t.Fatalf("create: status=%d error=%+v", status, env.Error)
	}
	var created struct {
		ID         int    `json:"id"`
		Status     string `json:"status"`
		ApprovedBy string `json:"approvedBy"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created.Status != "Pending" {
		t.Fatalf("new requests must be pending, got %q", created.Status)
	}

	status, env = doJSON(t, http.MethodPut, fmt.Sprintf("%s/%d/status", base, created.ID), map[string]any{
		"status":   "Approved",
		"approver": "Dana Whitfield",
	})
	if status != http.StatusOK {
		t.Fatalf("set status: status=%d error=%+v", status, env.Error)
	}
	var decided struct {
		Status     string `json:"status"`
		ApprovedBy string `json:"approvedBy"`
	}
	if err := json.Unmarshal(env.Data, &decided); err != nil {
		t.Fatalf("decode decided: %v", err)
	}
	if decided.Status != "Approved" || decided.ApprovedBy != "Dana Whitfield" {
		t.Fatalf("decision not recorded: %+v", decided)
	}

	status, env = doJSON(t, http.MethodPut, fmt.Sprintf("%s/%d/status", base, created.ID), map[string]any{
		"status": "Maybe",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("bad status: status=%d", status)
	}
	if env.Error == nil || env.Error.Code != "invalid_status" {
		t.Fatalf("error payload: %+v", env.Error)
	}

	status, env = doJSON(t, http.MethodPost, base, map[string]any{
		"employeeId": 1,
		"type":       "Vacation",
		"startDate":  "2026-09-14",
		"endDate":    "2026-09-10",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("inverted range: status=%d", status)
	}
	if env.Error == nil || env.Error.Code != "invalid_range" {
		t.Fatalf("error payload: %+v", env.Error)
	}
}

func TestDashboardAndReports(t *testing.T) {
	ts := newTestServer(t)

	status, env := doJSON(t, http.MethodGet, ts.URL+"/api/v1/dashboard", nil)
	if status != http.StatusOK {
		t.Fatalf("dashboard: status=%d error=%+v", status, env.Error)
	}
	var dash struct {
		TotalEmployees int               `json:"totalEmployees"`
		Departments    []json.RawMessage `json:"departments"`
	}
	if err := json.Unmarshal(env.Data, &dash); err != nil {
		t.Fatalf("decode dashboard: %v", err)
	}
	if dash.TotalEmployees == 0 {
		t.Fatal("dashboard shows no employees")
	}
	if len(dash.Departments) == 0 {
		t.Fatal("dashboard shows no departments")
	}

	status, env = doJSON(t, http.MethodGet, ts.URL+"/api/v1/reports", nil)
	if status != http.StatusOK {
		t.Fatalf("reports: status=%d error=%+v", status, env.Error)
	}
	var report struct {
		LeaveTotals struct {
			Total int `json:"total"`
		} `json:"leaveTotals"`
		LeaveTrend []json.RawMessage `json:"leaveTrend"`
	}
	if err := json.Unmarshal(env.Data, &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.LeaveTotals.Total == 0 {
		t.Fatal("report shows no leave requests")
	}
	if len(report.LeaveTrend) != 6 {
		t.Fatalf("expected 6 trend buckets, got %d", len(report.LeaveTrend))
	}
}

func TestReportExportReturnsPDF(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/v1/reports/export")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("export: status=%d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type: %q", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); cd == "" {
		t.Fatal("missing content disposition")
	}
	header := make([]byte, 5)
	if _, err := io.ReadFull(resp.Body, header); err != nil {
		t.Fatalf("read body: %v", err)
	}
	if string(header) != "%PDF-" {
		t.Fatalf("not a PDF: %q", header)
	}
}

func TestNotificationEndpoints(t *testing.T) {
	ts := newTestServer(t)
	base := ts.URL + "/api/v1/notifications"

	status, env := doJSON(t, http.MethodGet, base, nil)
	if status != http.StatusOK {
		t.Fatalf("list: status=%d", status)
	}
	var feed []struct {
		ID   int  `json:"id"`
		Read bool `json:"read"`
	}
	if err := json.Unmarshal(env.Data, &feed); err != nil {
		t.Fatalf("decode feed: %v", err)
	}
	if len(feed) == 0 {
		t.Fatal("empty feed")
	}
	if len(feed) > 20 {
		t.Fatalf("feed exceeds cap: %d", len(feed))
	}

	status, env = doJSON(t, http.MethodPost, fmt.Sprintf("%s/%d/read", base, feed[0].ID), nil)
	if status != http.StatusOK {
		t.Fatalf("mark read: status=%d error=%+v", status, env.Error)
	}

	status, env = doJSON(t, http.MethodPost, base+"/read-all", nil)
	if status != http.StatusOK {
		t.Fatalf("read all: status=%d", status)
	}

	status, env = doJSON(t, http.MethodGet, base+"/unread-count", nil)
	if status != http.StatusOK {
		t.Fatalf("unread count: status=%d", status)
	}
	var count struct {
		Unread int `json:"unread"`
	}
	if err := json.Unmarshal(env.Data, &count); err != nil {
		t.Fatalf("decode count: %v", err)
	}
	if count.Unread != 0 {
		t.Fatalf("expected 0 unread after read-all, got %d", count.Unread)
	}
}

func TestPerformanceReviewFilter(t *testing.T) {
	ts := newTestServer(t)
	base := ts.URL + "/api/v1/performance-reviews"

	status, env := doJSON(t, http.MethodGet, base, nil)
	if status != http.StatusOK {
		t.Fatalf("list: status=%d", status)
	}
	var all []struct {
		EmployeeID int `json:"employeeId"`
	}
	if err := json.Unmarshal(env.Data, &all); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(all) == 0 {
		t.Fatal("no reviews seeded")
	}
	target := all[0].EmployeeID

	status, env = doJSON(t, http.MethodGet, fmt.Sprintf("%s?employeeId=%d", base, target), nil)
	if status != http.StatusOK {
		t.Fatalf("filtered list: status=%d", status)
	}
	var filtered []struct {
		EmployeeID int `json:"employeeId"`
	}
	if err := json.Unmarshal(env.Data, &filtered); err != nil {
		t.Fatalf("decode filtered: %v", err)
	}
	if len(filtered) == 0 {
		t.Fatal("filter returned nothing")
	}
	for _, review := range filtered {
		if review.EmployeeID != target {
			t.Fatalf("stray review for employee %d", review.EmployeeID)
		}
	}
}

func TestHealthAndMetrics(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("healthz: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("healthz: status=%d", resp.StatusCode)
	}

	status, env := doJSON(t, http.MethodGet, ts.URL+"/api/v1/metrics", nil)
	if status != http.StatusOK {
		t.Fatalf("metrics: status=%d", status)
	}
	var snapshot map[string]float64
	if err := json.Unmarshal(env.Data, &snapshot); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if snapshot["requestsTotal"] == 0 {
		t.Fatal("collector recorded nothing")
	}
}

package http

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/sse"
	"github.com/cmlabs-hris/attendance-tracker/internal/repository/sqlite"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T) (*chi.Mux, *sse.Hub) {
	t.Helper()
	db, err := database.NewSQLiteDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	hub := sse.NewHub()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewAPI(logger, []string{"*"}, sqlite.NewStaffRepository(db), sqlite.NewAttendanceRepository(db), hub)
	return router, hub
}

func doJSON(t *testing.T, h http.Handler, method, target string, payload interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	var resp map[string]interface{}
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.NewDecoder(bytes.NewReader(w.Body.Bytes())).Decode(&resp))
	}
	return w, resp
}

func errorCode(resp map[string]interface{}) string {
	detail, _ := resp["error"].(map[string]interface{})
	code, _ := detail["code"].(string)
	return code
}

// ===== STAFF =====

func TestStaffHandler_Lifecycle(t *testing.T) {
	api, _ := newTestAPI(t)

	// Create
	w, resp := doJSON(t, api, http.MethodPost, "/api/v1/attendance/staffs", map[string]string{"name": "Alice"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, resp["success"].(bool))

	w, _ = doJSON(t, api, http.MethodPost, "/api/v1/attendance/staffs", map[string]string{"name": "Ann Lee/Ops"})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Duplicate
	w, resp = doJSON(t, api, http.MethodPost, "/api/v1/attendance/staffs", map[string]string{"name": "Alice"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CONFLICT", errorCode(resp))

	// Rename a name that needs escaping
	w, _ = doJSON(t, api, http.MethodPut, "/api/v1/attendance/staffs/Ann%20Lee%2FOps", map[string]string{"newName": "Ann"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Collision
	w, _ = doJSON(t, api, http.MethodPut, "/api/v1/attendance/staffs/Ann", map[string]string{"newName": "Alice"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// List
	w, resp = doJSON(t, api, http.MethodGet, "/api/v1/attendance/staffs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].([]interface{})
	require.Len(t, data, 2)
	assert.Equal(t, "Alice", data[0].(map[string]interface{})["name"])
	assert.Equal(t, "Ann", data[1].(map[string]interface{})["name"])

	// Delete
	w, _ = doJSON(t, api, http.MethodDelete, "/api/v1/attendance/staffs/Ann", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, resp = doJSON(t, api, http.MethodDelete, "/api/v1/attendance/staffs/Ann", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(resp))
}

func TestStaffHandler_Create_InvalidJSON(t *testing.T) {
	api, _ := newTestAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/staffs", strings.NewReader("invalid json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	api.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStaffHandler_Create_EmptyName(t *testing.T) {
	api, _ := newTestAPI(t)

	w, resp := doJSON(t, api, http.MethodPost, "/api/v1/attendance/staffs", map[string]string{"name": " "})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(resp))
}

// ===== ATTENDANCE =====

func TestAttendanceHandler_SaveAndList(t *testing.T) {
	api, _ := newTestAPI(t)
	doJSON(t, api, http.MethodPost, "/api/v1/attendance/staffs", map[string]string{"name": "Alice"})

	w, _ := doJSON(t, api, http.MethodPost, "/api/v1/attendance/save", map[string]string{
		"date": "2024-05-01", "employee": "Alice", "status": "Absent", "reason": "sick",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, api, http.MethodPost, "/api/v1/attendance/save", map[string]string{
		"date": "2024-05-01", "employee": "Alice", "status": "Training", "reason": "course",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, resp := doJSON(t, api, http.MethodGet, "/api/v1/attendance", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, map[string]interface{}{
		"date": "2024-05-01", "employee": "Alice", "status": "Training", "reason": "course",
	}, data[0])
}

func TestAttendanceHandler_Save_Errors(t *testing.T) {
	api, _ := newTestAPI(t)
	doJSON(t, api, http.MethodPost, "/api/v1/attendance/staffs", map[string]string{"name": "Alice"})

	future := time.Now().AddDate(0, 0, 2).Format("2006-01-02")

	tests := []struct {
		name string
		body map[string]string
		code int
	}{
		{"future date", map[string]string{"date": future, "employee": "Alice", "status": "Present"}, http.StatusUnprocessableEntity},
		{"bad status", map[string]string{"date": "2024-05-01", "employee": "Alice", "status": "Late"}, http.StatusUnprocessableEntity},
		{"unknown employee", map[string]string{"date": "2024-05-01", "employee": "Bob", "status": "Present"}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := doJSON(t, api, http.MethodPost, "/api/v1/attendance/save", tt.body)
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

// ===== REPORTS =====

func seedReport(t *testing.T, api http.Handler) {
	t.Helper()
	for _, name := range []string{"Alice", "Bob"} {
		doJSON(t, api, http.MethodPost, "/api/v1/attendance/staffs", map[string]string{"name": name})
	}
	for _, body := range []map[string]string{
		{"date": "2024-05-01", "employee": "Alice", "status": "Present"},
		{"date": "2024-05-01", "employee": "Bob", "status": "Absent", "reason": "sick"},
		{"date": "2024-05-02", "employee": "Alice", "status": "Half Day", "reason": "dentist"},
	} {
		w, _ := doJSON(t, api, http.MethodPost, "/api/v1/attendance/save", body)
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestReportHandler_Summary(t *testing.T) {
	api, _ := newTestAPI(t)
	seedReport(t, api)

	w, resp := doJSON(t, api, http.MethodGet, "/api/v1/attendance/summary?date=2024-05-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["present"])
	assert.Equal(t, float64(1), data["absent"])

	w, _ = doJSON(t, api, http.MethodGet, "/api/v1/attendance/summary?date=bad", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestReportHandler_Generate(t *testing.T) {
	api, _ := newTestAPI(t)
	seedReport(t, api)

	w, resp := doJSON(t, api, http.MethodGet, "/api/v1/attendance/reports?mode=monthly&date=2024-05-15", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "monthly", data["mode"])
	assert.Len(t, data["days"].([]interface{}), 2)

	w, _ = doJSON(t, api, http.MethodGet, "/api/v1/attendance/reports?mode=daily&date=2024-05-03", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(t, api, http.MethodGet, "/api/v1/attendance/reports?mode=weekly&date=2024-05-03", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestReportHandler_Export(t *testing.T) {
	api, _ := newTestAPI(t)
	seedReport(t, api)

	w, _ := doJSON(t, api, http.MethodGet, "/api/v1/attendance/reports/export?mode=monthly&date=2024-05-01&format=csv", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="Attendance_2024-05.csv"`, w.Header().Get("Content-Disposition"))
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	assert.Equal(t, "Date,Employee,Status,Reason", lines[0])
	assert.Len(t, lines, 6)

	w, _ = doJSON(t, api, http.MethodGet, "/api/v1/attendance/reports/export?mode=yearly&date=2024-05-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Attendance_2024.xlsx")
}

func TestReportHandler_Print(t *testing.T) {
	api, _ := newTestAPI(t)
	seedReport(t, api)

	w, _ := doJSON(t, api, http.MethodGet, "/api/v1/attendance/reports/print?date=2024-05-02", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "inline")
	assert.Contains(t, w.Body.String(), "Half Day: 1")

	w, _ = doJSON(t, api, http.MethodGet, "/api/v1/attendance/reports/print?date=2024-05-02&format=pdf", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
}

// ===== EVENTS =====

func TestEventHandler_Stream(t *testing.T) {
	api, hub := newTestAPI(t)
	srv := httptest.NewServer(api)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/attendance/events", nil)
	require.NoError(t, err)
	res, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, "text/event-stream", res.Header.Get("Content-Type"))

	reader := bufio.NewReader(res.Body)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "event: connected\n", line)

	require.Eventually(t, func() bool { return hub.SubscriberCount() == 1 }, time.Second, 10*time.Millisecond)

	raw, _ := json.Marshal(map[string]string{"name": "Alice"})
	postReq, _ := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/attendance/staffs", bytes.NewReader(raw))
	postReq.Header.Set("Content-Type", "application/json")
	postRes, err := srv.Client().Do(postReq)
	require.NoError(t, err)
	postRes.Body.Close()

	for {
		line, err = reader.ReadString('\n')
		require.NoError(t, err)
		if strings.HasPrefix(line, "event: "+sse.EventStaffAdded) {
			break
		}
	}
	data, err := reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "data: {\"name\":\"Alice\"}\n", data)
}

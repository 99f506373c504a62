// Package client talks to the attendance HTTP API. *Client satisfies
// session.RecordStore and adds the read-only report endpoints.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-tracker/internal/config"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/report"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/staff"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/validator"
)

const (
	basePath = "/api/v1/attendance"

	// DefaultTimeout applies when the configured timeout is not positive.
	DefaultTimeout = 10 * time.Second
)

type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the API at cfg.BaseURL
func NewClient(cfg config.ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// APIError is a non-2xx answer from the API. Err holds the matching domain
// error when one is known.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("attendance API error [%d] %s: %s", e.StatusCode, e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

// ListStaff returns roster names in insertion order
func (c *Client) ListStaff(ctx context.Context) ([]string, error) {
	var members []staff.StaffResponse
	if err := c.getJSON(ctx, "/staffs", nil, &members, nil); err != nil {
		return nil, err
	}

	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Name
	}
	return names, nil
}

func (c *Client) AddStaff(ctx context.Context, name string) error {
	return c.sendJSON(ctx, http.MethodPost, "/staffs", staff.CreateStaffRequest{Name: name}, nil,
		map[int]error{http.StatusConflict: staff.ErrDuplicateName})
}

func (c *Client) RenameStaff(ctx context.Context, oldName, newName string) error {
	return c.sendJSON(ctx, http.MethodPut, "/staffs/"+url.PathEscape(oldName), staff.RenameStaffRequest{NewName: newName}, nil,
		map[int]error{
			http.StatusNotFound: staff.ErrStaffNotFound,
			http.StatusConflict: staff.ErrNameConflict,
		})
}

func (c *Client) RemoveStaff(ctx context.Context, name string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/staffs/"+url.PathEscape(name), nil, nil,
		map[int]error{http.StatusNotFound: staff.ErrStaffNotFound})
}

// ListAttendance returns every stored entry
func (c *Client) ListAttendance(ctx context.Context) ([]attendance.Entry, error) {
	var records []attendance.AttendanceResponse
	if err := c.getJSON(ctx, "", nil, &records, nil); err != nil {
		return nil, err
	}

	entries := make([]attendance.Entry, len(records))
	for i, r := range records {
		entries[i] = r.ToEntry()
	}
	return entries, nil
}

func (c *Client) SaveAttendance(ctx context.Context, entry attendance.Entry) error {
	req := attendance.SaveAttendanceRequest{
		Date:     entry.Date,
		Employee: entry.Employee,
		Status:   string(entry.Status),
		Reason:   entry.Reason,
	}
	return c.sendJSON(ctx, http.MethodPost, "/save", req, nil,
		map[int]error{http.StatusNotFound: staff.ErrStaffNotFound})
}

// Summary fetches the per-status totals stored for date
func (c *Client) Summary(ctx context.Context, date string) (report.DaySummary, error) {
	var sum report.DaySummary
	err := c.getJSON(ctx, "/summary", url.Values{"date": {date}}, &sum, nil)
	return sum, err
}

// Report fetches a generated report
func (c *Client) Report(ctx context.Context, mode report.Mode, date string) (report.Report, error) {
	var rep report.Report
	err := c.getJSON(ctx, "/reports", url.Values{"mode": {string(mode)}, "date": {date}}, &rep,
		map[int]error{http.StatusNotFound: report.ErrNoData})
	return rep, err
}

// Export downloads a monthly or yearly spreadsheet
func (c *Client) Export(ctx context.Context, mode report.Mode, date string, format report.Format) (report.Artifact, error) {
	query := url.Values{"mode": {string(mode)}, "date": {date}, "format": {string(format)}}
	return c.download(ctx, "/reports/export", query)
}

// Print downloads the single-day print view
func (c *Client) Print(ctx context.Context, date string, format report.Format) (report.Artifact, error) {
	query := url.Values{"date": {date}, "format": {string(format)}}
	return c.download(ctx, "/reports/print", query)
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}, known map[int]error) error {
	res, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	return decode(res, out, known)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, body, out interface{}, known map[int]error) error {
	res, err := c.do(ctx, method, path, nil, body)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	return decode(res, out, known)
}

func (c *Client) download(ctx context.Context, path string, query url.Values) (report.Artifact, error) {
	res, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return report.Artifact{}, err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return report.Artifact{}, decode(res, nil, map[int]error{http.StatusNotFound: report.ErrNoData})
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return report.Artifact{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	art := report.Artifact{
		ContentType: res.Header.Get("Content-Type"),
		Body:        body,
	}
	if _, params, err := mime.ParseMediaType(res.Header.Get("Content-Disposition")); err == nil {
		art.FileName = params["filename"]
	}
	return art, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) (*http.Response, error) {
	target := c.baseURL + basePath + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return res, nil
}

// decode reads the response envelope into out, or turns an error envelope
// into *APIError.
func decode(res *http.Response, out interface{}, known map[int]error) error {
	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		if res.StatusCode >= http.StatusBadRequest {
			return &APIError{StatusCode: res.StatusCode, Code: http.StatusText(res.StatusCode), Message: err.Error()}
		}
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if res.StatusCode >= http.StatusBadRequest || !env.Success {
		apiErr := &APIError{StatusCode: res.StatusCode, Err: known[res.StatusCode]}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
			if apiErr.Err == nil && res.StatusCode == http.StatusUnprocessableEntity {
				apiErr.Err = validationErrors(env.Error.Details)
			}
		}
		return apiErr
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

func validationErrors(details map[string]string) validator.ValidationErrors {
	errs := make(validator.ValidationErrors, 0, len(details))
	for field, msg := range details {
		errs = append(errs, validator.ValidationError{Field: field, Message: msg})
	}
	return errs
}

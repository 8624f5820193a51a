package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/anumohan208/Confidence/internal/event"
)

// ListAdminEvents fetches the full event collection, all approval
// states included.
func (c *Client) ListAdminEvents(ctx context.Context) ([]event.Event, error) {
	return c.listEvents(ctx, "/api/admin/events")
}

// ListPublicEvents fetches the consumer-facing listing. The approval
// status is taken from the server as-is.
func (c *Client) ListPublicEvents(ctx context.Context) ([]event.Event, error) {
	return c.listEvents(ctx, "/api/events")
}

// ListSubmissions fetches the events a given user has submitted.
func (c *Client) ListSubmissions(ctx context.Context, userID int) ([]event.Event, error) {
	return c.listEvents(ctx, fmt.Sprintf("/api/users/%d/submissions", userID))
}

func (c *Client) listEvents(ctx context.Context, path string) ([]event.Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path), nil)
	if err != nil {
		return nil, fmt.Errorf("listEvents: http.NewRequestWithContext: %w", err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listEvents: %w", err)
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return nil, fmt.Errorf("listEvents: %w", statusError(resp, http.MethodGet, path))
	}

	var events []event.Event
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("listEvents: json.Decode: %w", err)
	}
	return events, nil
}

// UpdateEvent replaces an event with ev via the admin endpoint. Any 2xx
// response counts as success.
func (c *Client) UpdateEvent(ctx context.Context, ev event.Event) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("updateEvent: json.Marshal: %w", err)
	}

	path := fmt.Sprintf("/api/admin/events/%d", ev.ID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.url(path), bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("updateEvent: http.NewRequestWithContext: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("updateEvent: %w", err)
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return fmt.Errorf("updateEvent: %w", statusError(resp, http.MethodPut, path))
	}
	return nil
}

// DeleteEvent removes an event. The caller is expected to have
// confirmed the action with the operator first.
func (c *Client) DeleteEvent(ctx context.Context, id int) error {
	path := fmt.Sprintf("/api/admin/events/%d", id)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.url(path), nil)
	if err != nil {
		return fmt.Errorf("deleteEvent: http.NewRequestWithContext: %w", err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("deleteEvent: %w", err)
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return fmt.Errorf("deleteEvent: %w", statusError(resp, http.MethodDelete, path))
	}
	return nil
}

// ApproveEvent flips one event to Approved on the public endpoint.
func (c *Client) ApproveEvent(ctx context.Context, id int) error {
	path := fmt.Sprintf("/api/events/%d/approve", id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.url(path), nil)
	if err != nil {
		return fmt.Errorf("approveEvent: http.NewRequestWithContext: %w", err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("approveEvent: %w", err)
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return fmt.Errorf("approveEvent: %w", statusError(resp, http.MethodPut, path))
	}
	return nil
}

// FetchImage returns the event's image bytes, cached by event id so a
// repeat selection does not re-fetch.
func (c *Client) FetchImage(ctx context.Context, id int) ([]byte, error) {
	c.mu.Lock()
	if img, ok := c.images[id]; ok {
		c.mu.Unlock()
		return img, nil
	}
	c.mu.Unlock()

	path := fmt.Sprintf("/api/admin/events/%d/image", id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path), nil)
	if err != nil {
		return nil, fmt.Errorf("fetchImage: http.NewRequestWithContext: %w", err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetchImage: %w", err)
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return nil, fmt.Errorf("fetchImage: %w", statusError(resp, http.MethodGet, path))
	}

	img, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetchImage: read body: %w", err)
	}

	c.mu.Lock()
	c.images[id] = img
	c.mu.Unlock()
	return img, nil
}

// CreateEvent creates a new event from the submission form as a
// multipart payload and returns the server-assigned id. The approval
// status is always sent as Pending, whatever the caller filled in.
func (c *Client) CreateEvent(ctx context.Context, s event.Submission) (int, error) {
	img, err := os.ReadFile(s.ImagePath)
	if err != nil {
		return 0, fmt.Errorf("createEvent: read image: %w", err)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := map[string]string{
		"approvalStatus": event.StatusPending,
		"eventName":      s.Name,
		"description":    s.Description,
		"eventCategory":  s.Category,
		"eventDate":      s.Date,
		"eventTime":      s.Time,
		"eventLocation":  s.Venue,
		"eventCityzip":   s.CityZip,
		"eventPrice":     s.Price,
	}
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return 0, fmt.Errorf("createEvent: write field %s: %w", name, err)
		}
	}

	fw, err := mw.CreateFormFile("eventImage", filepath.Base(s.ImagePath))
	if err != nil {
		return 0, fmt.Errorf("createEvent: create form file: %w", err)
	}
	if _, err := fw.Write(img); err != nil {
		return 0, fmt.Errorf("createEvent: write image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return 0, fmt.Errorf("createEvent: close multipart: %w", err)
	}

	path := "/api/admin/events"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path), &buf)
	if err != nil {
		return 0, fmt.Errorf("createEvent: http.NewRequestWithContext: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, fmt.Errorf("createEvent: %w", err)
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return 0, fmt.Errorf("createEvent: %w", statusError(resp, http.MethodPost, path))
	}

	var reply struct {
		ID int `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return 0, fmt.Errorf("createEvent: json.Decode: %w", err)
	}
	return reply.ID, nil
}

// ErrSubmissionLink marks a failure in the second leg of the two-step
// submit: the event exists server-side but was not linked to the user.
var ErrSubmissionLink = fmt.Errorf("event created but not linked to your submissions")

// AddSubmission links a created event to the submitting user. There is
// no rollback of the event creation when this fails; callers get
// ErrSubmissionLink wrapped so they can tell the operator.
func (c *Client) AddSubmission(ctx context.Context, userID, eventID int) error {
	path := fmt.Sprintf("/api/users/%d/submissions/%d", userID, eventID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path), nil)
	if err != nil {
		return fmt.Errorf("addSubmission: http.NewRequestWithContext: %w", err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSubmissionLink, err)
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return fmt.Errorf("%w: %v", ErrSubmissionLink, statusError(resp, http.MethodPost, path))
	}
	return nil
}

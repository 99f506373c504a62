package client

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"strings"
)

// Event is one message from the change feed.
type Event struct {
	Name string
	Data string
}

// Watch streams the change feed and calls fn for every event until ctx is
// done or the server closes the stream. Keepalive pings are skipped.
func (c *Client) Watch(ctx context.Context, fn func(Event)) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+basePath+"/events", nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")

	// The stream outlives any request timeout.
	stream := &http.Client{Transport: c.http.Transport}
	res, err := stream.Do(req)
	if err != nil {
		return fmt.Errorf("GET /events: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return &APIError{StatusCode: res.StatusCode, Code: http.StatusText(res.StatusCode)}
	}

	var current Event
	scanner := bufio.NewScanner(res.Body)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			if current.Name != "" && current.Name != "ping" {
				fn(current)
			}
			current = Event{}
		case strings.HasPrefix(line, "event: "):
			current.Name = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			current.Data = strings.TrimPrefix(line, "data: ")
		}
	}

	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to read event stream: %w", err)
	}
	return nil
}

package tracker

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client sends completed workouts to the Socialite server over HTTP.
type Client struct {
	serverURL  string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new HTTP client for the Socialite server.
func NewClient(serverURL, apiKey string) *Client {
	return &Client{
		serverURL: serverURL,
		apiKey:    apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type completePayload struct {
	Exercises   []string  `json:"exercises,omitempty"`
	CompletedAt time.Time `json:"completed_at"`
	Source      string    `json:"source"`
}

// SendCompletion POSTs a completed workout to the server.
// Retries up to 3 times with exponential backoff on failure.
func (c *Client) SendCompletion(w LoggedWorkout) error {
	data, err := json.Marshal(completePayload{
		Exercises:   w.Exercises,
		CompletedAt: w.CompletedAt,
		Source:      "tracker",
	})
	if err != nil {
		return fmt.Errorf("marshaling completion: %w", err)
	}

	endpoint := fmt.Sprintf("%s/api/v1/avatars/%s/workout/complete",
		c.serverURL, url.PathEscape(w.UserID))

	var lastErr error
	for attempt := range 3 {
		if attempt > 0 {
			time.Sleep(time.Duration(1<<uint(attempt-1)) * time.Second)
		}

		req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-API-Key", c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusOK {
			return nil
		}
		lastErr = fmt.Errorf("completion failed (status %d): %s", resp.StatusCode, body)
	}

	return fmt.Errorf("after 3 attempts: %w", lastErr)
}

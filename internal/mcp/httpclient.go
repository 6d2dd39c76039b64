package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/meltforce/socialite/internal/models"
	"github.com/meltforce/socialite/internal/storage"
)

// HTTPClient implements DataSource by calling the Socialite REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// data lives on the remote server (accessed over Tailscale).
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	return body, nil
}

func (c *HTTPClient) GetAvatar(ctx context.Context, userID string) (*models.Avatar, error) {
	body, err := c.get(ctx, "/api/v1/avatars/"+url.PathEscape(userID), nil)
	if err != nil {
		return nil, err
	}

	var avatar models.Avatar
	if err := json.Unmarshal(body, &avatar); err != nil {
		return nil, fmt.Errorf("httpclient: decode avatar: %w", err)
	}
	return &avatar, nil
}

func (c *HTTPClient) GetProgram(ctx context.Context, userID string) (*models.ProgramRow, error) {
	body, err := c.get(ctx, "/api/v1/programs/"+url.PathEscape(userID), nil)
	if err != nil {
		return nil, err
	}

	var row models.ProgramRow
	if err := json.Unmarshal(body, &row); err != nil {
		return nil, fmt.Errorf("httpclient: decode program: %w", err)
	}
	return &row, nil
}

func (c *HTTPClient) Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))

	body, err := c.get(ctx, "/api/v1/leaderboard", params)
	if err != nil {
		return nil, err
	}

	var entries []models.LeaderboardEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("httpclient: decode leaderboard: %w", err)
	}
	return entries, nil
}

func (c *HTTPClient) GetUserStats(ctx context.Context, userID string) (*storage.UserStats, error) {
	body, err := c.get(ctx, "/api/v1/avatars/"+url.PathEscape(userID)+"/stats", nil)
	if err != nil {
		return nil, err
	}

	var stats storage.UserStats
	if err := json.Unmarshal(body, &stats); err != nil {
		return nil, fmt.Errorf("httpclient: decode stats: %w", err)
	}
	return &stats, nil
}

func (c *HTTPClient) QueryWorkoutLog(ctx context.Context, userID string, start, end time.Time) ([]models.WorkoutLogRow, error) {
	params := url.Values{}
	params.Set("start", start.Format(time.RFC3339))
	params.Set("end", end.Format(time.RFC3339))

	body, err := c.get(ctx, "/api/v1/avatars/"+url.PathEscape(userID)+"/history", params)
	if err != nil {
		return nil, err
	}

	var rows []models.WorkoutLogRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("httpclient: decode workout log: %w", err)
	}
	return rows, nil
}

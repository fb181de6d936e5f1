package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os/exec"
)

const (
	BaseURL = "https://site.api.espn.com/apis/site/v2/sports/football/nfl/scoreboard"

	// Regular season. Preseason (1) and postseason (3) weeks never feed the
	// pool.
	seasonType = 2
)

// Client handles ESPN API requests
// Note: Uses curl internally because ESPN blocks Go's HTTP client fingerprint
type Client struct {
	baseURL    string
	seasonYear int
}

// New creates a new ESPN API client with a custom base URL
func New(baseURL string, seasonYear int) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	return &Client{
		baseURL:    baseURL,
		seasonYear: seasonYear,
	}
}

// NewClient creates a new ESPN API client with default settings
func NewClient(seasonYear int) *Client {
	return New(BaseURL, seasonYear)
}

// FetchWeek fetches the scoreboard for one regular season week
func (c *Client) FetchWeek(ctx context.Context, week int) (map[string]interface{}, error) {
	url := fmt.Sprintf("%s?limit=1000&dates=%d&seasontype=%d&week=%d",
		c.baseURL, c.seasonYear, seasonType, week)
	return c.fetch(ctx, url)
}

// fetch makes an HTTP GET request using curl
// ESPN blocks Go's HTTP client but curl works reliably
func (c *Client) fetch(ctx context.Context, url string) (map[string]interface{}, error) {
	cmd := exec.CommandContext(ctx, "curl", "-s", "-L", "-m", "15", url)

	output, err := cmd.Output()
	if err != nil {
		log.Printf("[espn-client] curl failed: %v", err)
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("curl failed: %s (stderr: %s)", err, string(exitErr.Stderr))
		}
		return nil, fmt.Errorf("curl execution failed: %w", err)
	}

	// Check if we got HTML error page (403, 404, etc.)
	if len(output) > 0 && output[0] == '<' {
		return nil, fmt.Errorf("ESPN returned HTML error page: %s", string(output[:min(len(output), 200)]))
	}

	var result map[string]interface{}
	if err := json.Unmarshal(output, &result); err != nil {
		return nil, fmt.Errorf("decoding response: %w (body: %s)", err, string(output[:min(len(output), 200)]))
	}

	return result, nil
}

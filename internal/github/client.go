package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNoToken is returned when no API credential is configured. Fetches must
// fail loudly in that case rather than skipping validation downstream.
var ErrNoToken = errors.New("github token not configured")

// Fetcher retrieves a single file's decoded content from a repository.
type Fetcher interface {
	FetchFile(ctx context.Context, repoFullName, filePath string) (string, error)
}

// contentsResponse is the subset of the contents API response we care about.
type contentsResponse struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

type client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(baseURL, token string, httpClient *http.Client) Fetcher {
	return &client{
		baseURL: baseURL,
		token:   token,
		http:    httpClient,
	}
}

// FetchFile reads repoFullName/filePath through the contents API and returns
// the decoded text. The API serves file bodies base64-encoded; anything else
// is rejected.
func (c *client) FetchFile(ctx context.Context, repoFullName, filePath string) (string, error) {
	if c.token == "" {
		return "", ErrNoToken
	}

	url := fmt.Sprintf("%s/repos/%s/contents/%s", c.baseURL, repoFullName, filePath)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "AI-Safety-Tribune")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("github api error: %s", resp.Status)
	}

	var out contentsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode contents response: %w", err)
	}

	if out.Encoding != "base64" {
		return "", fmt.Errorf("unexpected file encoding %q from github api", out.Encoding)
	}

	// the API wraps base64 bodies with newlines
	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(out.Content, "\n", ""))
	if err != nil {
		return "", fmt.Errorf("decode file content: %w", err)
	}
	return string(decoded), nil
}

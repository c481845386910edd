package naver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/mail"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"StockNewsCollector/internal/config"
	"StockNewsCollector/internal/source"
)

// Client implements the Naver open-API news search.
type Client struct {
	endpoint string
	clientID string
	secret   string
	client   *http.Client
	limiter  *rate.Limiter
}

var _ source.Searcher = (*Client)(nil)

// NewClient wires credentials and an HTTP client; the courtesy interval
// spaces successive API calls across all goroutines sharing the client.
func NewClient(cfg config.NaverConfig, client *http.Client, courtesy time.Duration) *Client {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	limit := rate.Inf
	if courtesy > 0 {
		limit = rate.Every(courtesy)
	}
	return &Client{
		endpoint: cfg.Endpoint,
		clientID: cfg.ClientID,
		secret:   cfg.ClientSecret,
		client:   client,
		limiter:  rate.NewLimiter(limit, 1),
	}
}

// Name identifies the provider inside the registry.
func (c *Client) Name() string {
	return "naver"
}

type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	OriginalLink string `json:"originallink"`
	Link         string `json:"link"`
	PubDate      string `json:"pubDate"`
}

// Search queries the news endpoint sorted by date and returns sanitized
// candidates. Any transport, status, or body failure is returned as an
// error; the caller decides whether to continue without the results.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]source.Candidate, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	reqURL, err := c.buildURL(query, limit)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-Naver-Client-Id", c.clientID)
	req.Header.Set("X-Naver-Client-Secret", c.secret)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("naver returned %s for %q", resp.Status, query)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response for %q: %w", query, err)
	}

	candidates := make([]source.Candidate, 0, len(body.Items))
	for _, item := range body.Items {
		link := item.OriginalLink
		if link == "" {
			link = item.Link
		}
		candidates = append(candidates, source.Candidate{
			Title:       sanitize(item.Title),
			Description: sanitize(item.Description),
			URL:         link,
			PublishedAt: normalizeDate(item.PubDate),
		})
	}

	return candidates, nil
}

func (c *Client) buildURL(query string, limit int) (string, error) {
	parsed, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %s: %w", c.endpoint, err)
	}

	params := parsed.Query()
	params.Set("query", query)
	params.Set("display", strconv.Itoa(limit))
	params.Set("sort", "date")
	parsed.RawQuery = params.Encode()
	return parsed.String(), nil
}

// sanitize strips the <b> markup and HTML entities Naver embeds in
// titles and descriptions.
func sanitize(text string) string {
	if text == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(doc.Text())
}

// normalizeDate converts the API's RFC 5322 pubDate to RFC 3339.
// Strings already carrying an ISO time pass through; anything else is
// kept raw and left to the retention policy's fail-open parsing.
func normalizeDate(value string) string {
	if value == "" {
		return ""
	}
	if t, err := mail.ParseDate(value); err == nil {
		return t.Format(time.RFC3339)
	}
	return value
}

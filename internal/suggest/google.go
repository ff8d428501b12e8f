package suggest

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
)

// A realistic UA reduces the chance of 429s / odd responses from the
// public suggest endpoint.
const browserUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/120 Safari/537.36"

const maxSuggestBody = 256 * 1024

// GoogleSource queries the public, keyless Google suggest endpoint.
// The response is a heterogeneous JSON array: ["query", ["s1", "s2", ...], ...]
type GoogleSource struct {
	BaseURL string
	client  *http.Client
}

func NewGoogleSource(baseURL string, timeout time.Duration, connectTimeout time.Duration) *GoogleSource {
	return &GoogleSource{
		BaseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: connectTimeout,
				}).DialContext,
			},
		},
	}
}

// Fetch returns up to limit suggestion strings for query, in source order.
func (s *GoogleSource) Fetch(ctx context.Context, query string, limit int) ([]string, error) {
	endpoint := fmt.Sprintf("%s?client=chrome&q=%s", s.BaseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create suggest request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "application/json,text/plain,*/*")

	res, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("suggest request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("suggest endpoint returned status %d", res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxSuggestBody))
	if err != nil {
		return nil, fmt.Errorf("failed to read suggest response: %w", err)
	}

	parsed := gjson.ParseBytes(body)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("suggest payload is not a JSON array")
	}

	elements := parsed.Array()
	if len(elements) < 2 || !elements[1].IsArray() {
		return nil, fmt.Errorf("suggest payload has no candidate list")
	}

	suggestions := make([]string, 0, limit)
	for _, item := range elements[1].Array() {
		if item.Type != gjson.String {
			continue
		}
		suggestions = append(suggestions, item.String())
		if len(suggestions) == limit {
			break
		}
	}

	return suggestions, nil
}

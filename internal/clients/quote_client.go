package clients

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"readtrack/internal/models"
	"readtrack/internal/structures"
	"strings"

	json "github.com/goccy/go-json"
)

// QuoteClient asks the quote service for one random quote. It makes a single
// attempt; the caller decides what to show on failure.
type QuoteClient struct {
	baseURL    string
	tags       string
	httpClient *http.Client
}

func NewQuoteClient(conf *structures.Config) *QuoteClient {
	timeout := conf.Quotes.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &QuoteClient{
		baseURL:    strings.TrimRight(conf.Quotes.BaseURL, "/"),
		tags:       conf.Quotes.Tags,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *QuoteClient) quoteURL() string {
	u := c.baseURL + "/random"
	if c.tags != "" {
		u += "?tags=" + url.QueryEscape(c.tags)
	}
	return u
}

func (c *QuoteClient) FetchQuote(ctx context.Context) (models.Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.quoteURL(), nil)
	if err != nil {
		return models.Quote{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.Quote{}, fmt.Errorf("failed to fetch quote: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Quote{}, fmt.Errorf("quote API returned status %d", resp.StatusCode)
	}

	var quote models.Quote
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&quote); err != nil {
		return models.Quote{}, fmt.Errorf("failed to decode quote: %w", err)
	}
	if strings.TrimSpace(quote.Content) == "" {
		return models.Quote{}, errors.New("quote API returned an empty quote")
	}
	return quote, nil
}

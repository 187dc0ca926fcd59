package clients

import (
	"net/http"
	"net/http/httptest"
	"readtrack/internal/models"
	"readtrack/internal/structures"
	"readtrack/internal/tracker"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quotesConfig(baseURL string) *structures.Config {
	return &structures.Config{
		Quotes: structures.QuotesConfig{BaseURL: baseURL, Tags: "inspirational", Timeout: time.Second},
	}
}

func TestQuoteClient_FetchQuote(t *testing.T) {
	var gotPath, gotTags string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotTags = r.URL.Query().Get("tags")
		_, _ = w.Write([]byte(`{"_id":"x","content":"Faith is taking the first step","author":"Martin Luther King Jr.","tags":["inspirational"]}`))
	}))
	defer srv.Close()

	q, err := NewQuoteClient(quotesConfig(srv.URL)).FetchQuote(t.Context())
	require.NoError(t, err)

	assert.Equal(t, "/random", gotPath)
	assert.Equal(t, "inspirational", gotTags)
	assert.Equal(t, models.Quote{Content: "Faith is taking the first step", Author: "Martin Luther King Jr."}, q)
}

func TestQuoteClient_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{}`},
		{"not json", http.StatusOK, `nope`},
		{"empty content", http.StatusOK, `{"content":"","author":"x"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewQuoteClient(quotesConfig(srv.URL)).FetchQuote(t.Context())
			assert.Error(t, err)
		})
	}
}

func TestQuoteClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"content":"late"}`))
	}))
	defer srv.Close()

	conf := quotesConfig(srv.URL)
	conf.Quotes.Timeout = 20 * time.Millisecond
	_, err := NewQuoteClient(conf).FetchQuote(t.Context())
	assert.Error(t, err)
}

func TestQuoteClient_NoTags(t *testing.T) {
	c := NewQuoteClient(&structures.Config{Quotes: structures.QuotesConfig{BaseURL: "https://quotes.example/"}})
	assert.Equal(t, "https://quotes.example/random", c.quoteURL())
	assert.Equal(t, defaultTimeout, c.httpClient.Timeout)
}

var _ tracker.QuoteFetcher = (*QuoteClient)(nil)

package clients

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"readtrack/internal/models"
	"readtrack/internal/providers"
	"readtrack/internal/structures"
	"readtrack/internal/tracker"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

const defaultTimeout = 10 * time.Second

// maxBodySize bounds what is read from a remote service.
const maxBodySize = 4 << 20

type bibleVerse struct {
	Verse int    `json:"verse"`
	Text  string `json:"text"`
}

type bibleResponse struct {
	Reference string       `json:"reference"`
	Verses    []bibleVerse `json:"verses"`
}

// BibleClient fetches chapter text from the chapter service and keeps
// successful payloads in the chapter cache.
type BibleClient struct {
	baseURL     string
	translation string
	httpClient  *http.Client
	cache       providers.CacheProviderInterface
	logger      providers.Logger
}

func NewBibleClient(conf *structures.Config, cache providers.CacheProviderInterface, logger providers.Logger) *BibleClient {
	timeout := conf.Bible.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &BibleClient{
		baseURL:     strings.TrimRight(conf.Bible.BaseURL, "/"),
		translation: conf.Bible.Translation,
		httpClient:  &http.Client{Timeout: timeout},
		cache:       cache,
		logger:      logger,
	}
}

func (c *BibleClient) chapterURL(book string, chapter int) string {
	u := c.baseURL + "/" + url.PathEscape(book+" "+strconv.Itoa(chapter))
	if c.translation != "" {
		u += "?translation=" + url.QueryEscape(c.translation)
	}
	return u
}

// FetchChapter returns tracker.ErrChapterNotFound for any non-2xx answer or
// a payload without a reference or verses, and tracker.ErrChapterUnavailable
// when the service cannot be reached.
func (c *BibleClient) FetchChapter(ctx context.Context, book string, chapter int) (*models.Chapter, error) {
	key := providers.ChapterCacheKey(c.translation, book, chapter)
	if data, ok := c.cache.Get(key); ok {
		var cached models.Chapter
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
		c.logger.Warnf(providers.TypeGet, "Dropping unreadable cache entry %s", key)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.chapterURL(book, chapter), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", tracker.ErrChapterUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil, fmt.Errorf("%w: %s %d returned status %d", tracker.ErrChapterNotFound, book, chapter, resp.StatusCode)
	}

	var payload bibleResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: malformed payload: %v", tracker.ErrChapterNotFound, err)
	}
	if strings.TrimSpace(payload.Reference) == "" || len(payload.Verses) == 0 {
		return nil, fmt.Errorf("%w: %s %d has no verses", tracker.ErrChapterNotFound, book, chapter)
	}

	result := &models.Chapter{
		Book:      book,
		Number:    chapter,
		Reference: strings.TrimSpace(payload.Reference),
		Verses:    make([]models.Verse, 0, len(payload.Verses)),
	}
	for _, v := range payload.Verses {
		result.Verses = append(result.Verses, models.Verse{Number: v.Verse, Text: strings.TrimSpace(v.Text)})
	}

	if data, err := json.Marshal(result); err == nil {
		c.cache.Set(key, data)
	}
	c.logger.Debugf(providers.TypeGet, "Fetched %s (%d verses)", result.Reference, len(result.Verses))
	return result, nil
}

// Package wiki looks up article summaries on the Japanese Wikipedia
// REST API. Lookups are cache-only so the hover path never waits on
// the network: a miss starts a background prefetch and the summary
// shows up on a later hover. Failed responses are cached like answers,
// keyed by NFKC-normalized query, with a disk layer under the memory
// cache.
package wiki

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/text/unicode/norm"
)

const (
	apiBase         = "https://ja.wikipedia.org/api/rest_v1/page/summary/"
	userAgent       = "MoZuku-LSP/1.0 (Japanese NLP Language Server)"
	requestTimeout  = 5 * time.Second
	maxExtractRunes = 500
)

// Entry is one cached summary. Status is the HTTP status it was
// produced from; anything but 200 means Content carries a Japanese
// error message instead of an extract.
type Entry struct {
	Query     string
	Content   string
	Status    int
	FetchedAt time.Time
}

// Client fetches and caches summaries.
type Client struct {
	http  *http.Client
	base  string
	cache *Cache
	disk  *DiskCache
	group singleflight.Group
}

// NewClient builds a client over the given cache layers. disk may be
// nil to run memory-only.
func NewClient(cache *Cache, disk *DiskCache) *Client {
	return &Client{
		http:  &http.Client{Timeout: requestTimeout},
		base:  apiBase,
		cache: cache,
		disk:  disk,
	}
}

// Normalize produces the cache key for a query.
func Normalize(query string) string {
	return norm.NFKC.String(query)
}

// Lookup returns the cached entry for query without touching the
// network. A disk hit is promoted into the memory cache.
func (c *Client) Lookup(query string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	key := Normalize(query)
	if key == "" {
		return Entry{}, false
	}
	if e, ok := c.cache.Get(key); ok {
		return e, true
	}
	if e, ok := c.disk.Get(key); ok {
		c.cache.Set(key, e)
		return e, true
	}
	return Entry{}, false
}

// Prefetch fetches query in the background unless it is already
// cached. Best effort: the result lands in the caches, errors become
// error entries.
func (c *Client) Prefetch(query string) {
	if c == nil {
		return
	}
	if _, ok := c.Lookup(query); ok {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		c.Fetch(ctx, query)
	}()
}

// Fetch returns the summary for query, hitting the network on a cache
// miss. Concurrent fetches for the same key collapse into one request.
// Fetch never fails: transport and server errors come back as entries
// with a non-200 status.
func (c *Client) Fetch(ctx context.Context, query string) Entry {
	key := Normalize(query)
	if key == "" {
		return Entry{Status: http.StatusNotFound, Content: errorMessage(http.StatusNotFound)}
	}
	if e, ok := c.Lookup(key); ok {
		return e
	}

	v, _, _ := c.group.Do(key, func() (any, error) {
		e := c.fetch(ctx, key)
		c.cache.Set(key, e)
		// Диск не обязателен: ошибку записи глотаем.
		_ = c.disk.Put(e)
		return e, nil
	})
	return v.(Entry)
}

func (c *Client) fetch(ctx context.Context, key string) Entry {
	entry := Entry{Query: key, FetchedAt: time.Now()}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+url.PathEscape(key), nil)
	if err != nil {
		entry.Status = http.StatusInternalServerError
		entry.Content = fmt.Sprintf("エラーが発生しました: %v", err)
		return entry
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			entry.Status = http.StatusRequestTimeout
			entry.Content = "リクエストがタイムアウトしました"
			return entry
		}
		entry.Status = http.StatusInternalServerError
		entry.Content = fmt.Sprintf("エラーが発生しました: %v", err)
		return entry
	}
	defer resp.Body.Close()

	entry.Status = resp.StatusCode
	if resp.StatusCode != http.StatusOK {
		entry.Content = errorMessage(resp.StatusCode)
		return entry
	}

	var payload struct {
		Extract string `json:"extract"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		entry.Status = http.StatusInternalServerError
		entry.Content = fmt.Sprintf("エラーが発生しました: %v", err)
		return entry
	}
	entry.Content = truncateExtract(payload.Extract)
	return entry
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var uerr *url.Error
	return errors.As(err, &uerr) && uerr.Timeout()
}

func truncateExtract(s string) string {
	runes := []rune(s)
	if len(runes) <= maxExtractRunes {
		return s
	}
	return string(runes[:maxExtractRunes]) + "..."
}

func errorMessage(status int) string {
	switch status {
	case http.StatusNotFound:
		return "該当する記事が見つかりませんでした"
	case http.StatusInternalServerError:
		return "サーバーエラーが発生しました"
	case http.StatusServiceUnavailable:
		return "サービスが一時的に利用できません"
	case http.StatusTooManyRequests:
		return "リクエスト制限に達しました。しばらくお待ちください"
	}
	return fmt.Sprintf("エラーが発生しました (HTTP %d)", status)
}

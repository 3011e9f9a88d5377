package wiki

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Поднимать при изменении формата diskPayload.
const diskSchemaVersion uint16 = 1

// DiskCache persists summaries across server restarts. Thread-safe; a
// nil DiskCache is a no-op so the client can run memory-only.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
	ttl time.Duration
}

type diskPayload struct {
	Schema    uint16
	Query     string
	Content   string
	Status    int
	FetchedAt int64 // unix seconds
}

// OpenDiskCache initializes the disk cache at the standard location:
// XDG_CACHE_HOME/<app>, falling back to ~/.cache/<app>.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir, ttl: entryTTL}, nil
}

func (c *DiskCache) pathFor(key string) string {
	sum := sha256.Sum256([]byte(key))
	hexKey := hex.EncodeToString(sum[:])
	// Подкаталог "wiki" для удобства очистки.
	return filepath.Join(c.dir, "wiki", hexKey+".mp")
}

// Put writes an entry to disk atomically.
func (c *DiskCache) Put(e Entry) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(e.Query)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if tmp != "" {
			os.Remove(tmp)
		}
	}()

	payload := diskPayload{
		Schema:    diskSchemaVersion,
		Query:     e.Query,
		Content:   e.Content,
		Status:    e.Status,
		FetchedAt: e.FetchedAt.Unix(),
	}
	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	if err := os.Rename(tmp, p); err != nil {
		return err
	}
	tmp = ""
	return nil
}

// Get reads the entry cached under key. Expired and schema-mismatched
// payloads read as misses.
func (c *DiskCache) Get(key string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	// Любая ошибка чтения равносильна промаху.
	f, err := os.Open(c.pathFor(key))
	if err != nil {
		return Entry{}, false
	}
	defer f.Close()

	var payload diskPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return Entry{}, false
	}
	if payload.Schema != diskSchemaVersion {
		return Entry{}, false
	}
	fetchedAt := time.Unix(payload.FetchedAt, 0)
	if time.Since(fetchedAt) > c.ttl {
		return Entry{}, false
	}
	return Entry{
		Query:     payload.Query,
		Content:   payload.Content,
		Status:    payload.Status,
		FetchedAt: fetchedAt,
	}, true
}

// DropAll removes every cached summary, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "wiki"))
}

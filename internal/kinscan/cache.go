package kinscan

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when cachePayload format changes
const cacheSchemaVersion uint16 = 1

// Digest keys a cache entry by header content.
type Digest = [sha256.Size]byte

// Cache хранит результаты сканирования заголовков на диске, чтобы не
// перечитывать неизменённые файлы между запусками.
// Thread-safe for concurrent access.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

type cachePayload struct {
	Schema           uint16
	SubstrateIndices []int
	BiomassIndices   []int
	HasSizeGuard     bool
}

// OpenCache initializes the scan cache at the standard location.
func OpenCache(app string) (*Cache, error) {
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
	return &Cache{dir: dir}, nil
}

func (c *Cache) pathFor(key Digest) string {
	// Подкаталог "scans" - для удобства читаемости и очистки.
	return filepath.Join(c.dir, "scans", hex.EncodeToString(key[:])+".mp")
}

// Put serializes a scan result under the content digest. Write failures are
// returned but callers treat the cache as best-effort.
func (c *Cache) Put(key Digest, res Result) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(f.Name()) }()

	payload := cachePayload{
		Schema:           cacheSchemaVersion,
		SubstrateIndices: res.SubstrateIndices,
		BiomassIndices:   res.BiomassIndices,
		HasSizeGuard:     res.HasSizeGuard,
	}
	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get looks up a scan result by content digest. A schema mismatch or decode
// error is treated as a miss.
func (c *Cache) Get(key Digest) (Result, bool) {
	if c == nil {
		return Result{}, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		return Result{}, false
	}
	defer func() { _ = f.Close() }()

	var payload cachePayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return Result{}, false
	}
	if payload.Schema != cacheSchemaVersion {
		return Result{}, false
	}
	return Result{
		SubstrateIndices: payload.SubstrateIndices,
		BiomassIndices:   payload.BiomassIndices,
		HasSizeGuard:     payload.HasSizeGuard,
	}, true
}

// DropAll invalidates the cache, useful after format changes.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	scans := filepath.Join(c.dir, "scans")
	if err := os.RemoveAll(scans); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// CachedScanner wraps an IndexScanner with the disk cache. The digest of the
// source text decides hits; a nil cache degrades to plain scanning.
type CachedScanner struct {
	Inner IndexScanner
	Cache *Cache
}

func (s CachedScanner) Scan(src string) Result {
	key := sha256.Sum256([]byte(src))
	if res, ok := s.Cache.Get(key); ok {
		return res
	}
	res := s.Inner.Scan(src)
	_ = s.Cache.Put(key, res) // best-effort
	return res
}

package middleware

import (
	"bytes"
	"crypto/md5"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// CacheConfig holds response cache and ETag configuration.
type CacheConfig struct {
	TTL               time.Duration // How long a cached body stays valid
	MaxAge            int           // Cache-Control max-age in seconds
	ETagEnabled       bool          // Compute a weak ETag and honor If-None-Match
	ExcludePathSuffix []string      // Path suffixes never cached
	Store             CacheStore    // Backing store, in-memory when nil
}

// DefaultCacheConfig returns cache settings suited to aggregated patient
// data: short TTL, private Cache-Control, ETag enabled.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		TTL:         30 * time.Second,
		MaxAge:      30,
		ETagEnabled: true,
	}
}

// CacheStore is the interface for a response cache backend.
type CacheStore interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
	Delete(key string)
	Clear()
}

type cacheEntry struct {
	data      []byte
	expiresAt time.Time
}

// InMemoryCacheStore is a thread-safe in-memory CacheStore with lazy expiration.
type InMemoryCacheStore struct {
	entries map[string]*cacheEntry
	mu      sync.RWMutex
}

// NewInMemoryCacheStore creates a new InMemoryCacheStore.
func NewInMemoryCacheStore() *InMemoryCacheStore {
	return &InMemoryCacheStore{entries: make(map[string]*cacheEntry)}
}

// Get retrieves a value and performs lazy expiration.
func (s *InMemoryCacheStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return nil, false
	}
	return entry.data, true
}

// Set stores a value with the given TTL.
func (s *InMemoryCacheStore) Set(key string, value []byte, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = &cacheEntry{data: value, expiresAt: time.Now().Add(ttl)}
}

// Delete removes a single entry.
func (s *InMemoryCacheStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// Clear removes all entries.
func (s *InMemoryCacheStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]*cacheEntry)
}

// bufferedResponseWriter captures the response body so the middleware can
// inspect it before flushing to the real writer.
type bufferedResponseWriter struct {
	writer     http.ResponseWriter
	buf        *bytes.Buffer
	statusCode int
}

func newBufferedResponseWriter(w http.ResponseWriter) *bufferedResponseWriter {
	return &bufferedResponseWriter{writer: w, buf: &bytes.Buffer{}, statusCode: http.StatusOK}
}

func (w *bufferedResponseWriter) Header() http.Header { return w.writer.Header() }

func (w *bufferedResponseWriter) Write(b []byte) (int, error) { return w.buf.Write(b) }

func (w *bufferedResponseWriter) WriteHeader(code int) { w.statusCode = code }

func (w *bufferedResponseWriter) Flush() {}

func (w *bufferedResponseWriter) flushTo() error {
	w.writer.WriteHeader(w.statusCode)
	if w.buf.Len() > 0 {
		_, err := w.writer.Write(w.buf.Bytes())
		return err
	}
	return nil
}

// ResponseCache returns middleware that caches successful GET responses.
// Every upstream fetch cycle fans out to the FHIR server, so even a short
// TTL absorbs repeated reads of the same patient record.
//
// Cached bodies hold patient data, so the key includes the authenticated
// subject and Cache-Control is always private. When ETags are enabled a
// matching If-None-Match short-circuits to 304 Not Modified.
func ResponseCache(cfg CacheConfig) echo.MiddlewareFunc {
	store := cfg.Store
	if store == nil {
		store = NewInMemoryCacheStore()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Method != http.MethodGet {
				return next(c)
			}
			for _, suffix := range cfg.ExcludePathSuffix {
				if strings.HasSuffix(req.URL.Path, suffix) {
					return next(c)
				}
			}

			subject, _ := c.Get("auth_subject").(string)
			key := subject + ":" + req.URL.Path + "?" + req.URL.RawQuery

			res := c.Response()
			if data, ok := store.Get(key); ok {
				res.Header().Set("X-Cache", "HIT")
				setCacheHeaders(res.Header(), cfg)
				if cfg.ETagEnabled {
					etag := computeETag(data)
					res.Header().Set("ETag", etag)
					if etagMatch(req.Header.Get("If-None-Match"), etag) {
						res.Writer.WriteHeader(http.StatusNotModified)
						return nil
					}
				}
				res.Writer.WriteHeader(http.StatusOK)
				_, err := res.Writer.Write(data)
				return err
			}

			origWriter := res.Writer
			buf := newBufferedResponseWriter(origWriter)
			res.Writer = buf

			if err := next(c); err != nil {
				res.Writer = origWriter
				return err
			}
			res.Writer = origWriter

			if buf.statusCode >= 400 {
				return buf.flushTo()
			}

			body := buf.buf.Bytes()
			store.Set(key, append([]byte(nil), body...), cfg.TTL)

			res.Header().Set("X-Cache", "MISS")
			setCacheHeaders(res.Header(), cfg)
			if cfg.ETagEnabled {
				etag := computeETag(body)
				res.Header().Set("ETag", etag)
				if etagMatch(req.Header.Get("If-None-Match"), etag) {
					origWriter.WriteHeader(http.StatusNotModified)
					return nil
				}
			}
			return buf.flushTo()
		}
	}
}

func setCacheHeaders(h http.Header, cfg CacheConfig) {
	h.Set("Cache-Control", fmt.Sprintf("private, max-age=%d", cfg.MaxAge))
	h.Set("Vary", "Authorization")
}

// computeETag returns a weak ETag based on the MD5 hash of the body.
func computeETag(body []byte) string {
	hash := md5.Sum(body)
	return fmt.Sprintf(`W/"%x"`, hash)
}

// etagMatch checks whether an If-None-Match header value matches the given
// ETag. Supports comma-separated lists and the wildcard "*", with weak
// comparison semantics.
func etagMatch(headerVal, etag string) bool {
	headerVal = strings.TrimSpace(headerVal)
	if headerVal == "" {
		return false
	}
	if headerVal == "*" {
		return true
	}
	for _, candidate := range strings.Split(headerVal, ",") {
		if stripWeakPrefix(strings.TrimSpace(candidate)) == stripWeakPrefix(etag) {
			return true
		}
	}
	return false
}

func stripWeakPrefix(etag string) string {
	return strings.TrimPrefix(etag, "W/")
}

// Package httpcache provides an HTTP client caching successful responses on
// disk for the day, and a helper to GET JSON documents.
package httpcache

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"

	"github.com/etnz/tracker/internal/common"
)

// Transport implements a simple disk cache for HTTP responses.
// Entries expire every day.
type Transport struct {
	Base   http.RoundTripper
	Dir    string
	Prefix string // file name prefix of the cache entries
	Logger *common.Logger
	Now    func() time.Time
}

// NewClient returns an http.Client caching its responses in dir. An empty dir
// disables the cache.
func NewClient(dir, prefix string, timeout time.Duration, logger *common.Logger) *http.Client {
	client := &http.Client{Timeout: timeout}
	if dir != "" {
		client.Transport = &Transport{Base: http.DefaultTransport, Dir: dir, Prefix: prefix, Logger: logger, Now: time.Now}
	}
	return client
}

// RoundTrip implements the http.RoundTripper interface. It checks for a cached
// response on disk first. If not found, it proceeds with the actual HTTP
// request and caches the new response if it's successful.
func (c *Transport) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	// the day is part of the key, so entries expire every day.
	key := fmt.Sprintf("%s %s %s", c.Now().Format(time.DateOnly), req.Method, req.URL.String())
	key = fmt.Sprintf("%s%x", c.Prefix, sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.Base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug().Str("method", req.Method).Str("host", req.URL.Host).Str("path", req.URL.Path).Int("status", resp.StatusCode).Msg("http")
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	if err := c.put(key, resp); err != nil {
		c.Logger.Warn().Err(err).Msg("cache write failed (ignored)")
	}
	return resp, nil
}

// get retrieves a cached response from disk
func (c *Transport) get(key string, req *http.Request) (resp *http.Response, err error) {
	content, err := os.ReadFile(filepath.Join(c.Dir, key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache
func (c *Transport) put(key string, resp *http.Response) (err error) {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.Dir, key), content, 0o644)
}

// StatusError is returned by GetJSON for non 200 responses.
type StatusError struct {
	StatusCode int
	Status     string
	Host, Path string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("cannot http GET %v%v: %v", e.Host, e.Path, e.Status)
}

// GetJSON performs an HTTP GET request and unmarshals the JSON response into data.
func GetJSON(ctx context.Context, client *http.Client, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &StatusError{StatusCode: resp.StatusCode, Status: resp.Status, Host: req.URL.Host, Path: req.URL.Path}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, data)
}

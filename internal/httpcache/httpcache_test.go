package httpcache

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etnz/tracker/internal/common"
)

func TestTransport(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"close": 172.5}`))
	}))
	defer srv.Close()

	dir := t.TempDir()
	day := time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)
	client := NewClient(dir, "test-", time.Second, common.NewSilentLogger())
	transport := client.Transport.(*Transport)
	transport.Now = func() time.Time { return day }
	ctx := context.Background()

	var v struct{ Close float64 }
	require.NoError(t, GetJSON(ctx, client, srv.URL+"/quote", &v))
	assert.Equal(t, 172.5, v.Close)
	require.NoError(t, GetJSON(ctx, client, srv.URL+"/quote", &v))
	assert.Equal(t, 1, calls, "second request must be served from the cache")

	// errors are not cached.
	for range 2 {
		err := GetJSON(ctx, client, srv.URL+"/missing", &v)
		var status *StatusError
		require.True(t, errors.As(err, &status), "err = %v", err)
		assert.Equal(t, http.StatusNotFound, status.StatusCode)
	}
	assert.Equal(t, 3, calls)

	// a new day is a new entry.
	day = day.AddDate(0, 0, 1)
	require.NoError(t, GetJSON(ctx, client, srv.URL+"/quote", &v))
	assert.Equal(t, 4, calls)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	for _, e := range entries {
		assert.Contains(t, e.Name(), "test-")
	}
}

func TestNewClient_NoCache(t *testing.T) {
	client := NewClient("", "", time.Second, common.NewSilentLogger())
	assert.Nil(t, client.Transport)
	assert.Equal(t, time.Second, client.Timeout)
}

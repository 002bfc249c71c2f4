package forum

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/pleasure1234/linux-do-mcp/internal/config"
)

type recorded struct {
	path   string
	query  url.Values
	apiKey string
}

type recorder struct {
	mu   sync.Mutex
	reqs []recorded
}

func (r *recorder) all() []recorded {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recorded(nil), r.reqs...)
}

// newFakeForum serves body for every request and records what it received.
func newFakeForum(t *testing.T, status int, body string) (*Client, *recorder) {
	t.Helper()
	seen := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen.mu.Lock()
		seen.reqs = append(seen.reqs, recorded{path: r.URL.Path, query: r.URL.Query(), apiKey: r.Header.Get(apiKeyHeader)})
		seen.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	cfg := Config{BaseURL: srv.URL, APIKey: "secret", Username: "alice", RequestTimeout: 5 * time.Second}
	return NewClient(cfg), seen
}

func TestClientTopicsDefaults(t *testing.T) {
	c, seen := newFakeForum(t, http.StatusOK, `{"users":[],"topic_list":{"topics":[{"id":1,"title":"a"}]}}`)

	resp, err := c.Topics(context.Background(), "latest", "", Page{}, false)
	require.NoError(t, err)
	require.Len(t, resp.TopicList.Topics, 1)

	require.Len(t, seen.all(), 1)
	got := seen.all()[0]
	assert.Equal(t, "/latest.json", got.path)
	assert.Equal(t, "1", got.query.Get("page"))
	assert.Equal(t, "10", got.query.Get("per_page"))
	assert.Empty(t, got.apiKey, "public listings are sent without credentials")
}

func TestClientTopicsPeriodAndAuth(t *testing.T) {
	c, seen := newFakeForum(t, http.StatusOK, `{}`)

	_, err := c.Topics(context.Background(), "top", "weekly", Page{Page: 3, PerPage: 25}, true)
	require.NoError(t, err)

	got := seen.all()[0]
	assert.Equal(t, "/top/weekly.json", got.path)
	assert.Equal(t, "3", got.query.Get("page"))
	assert.Equal(t, "25", got.query.Get("per_page"))
	assert.Equal(t, "secret", got.apiKey)
}

func TestClientCategoriesAndLatestDefaults(t *testing.T) {
	c, seen := newFakeForum(t, http.StatusOK, `{}`)

	_, err := c.CategoriesAndLatest(context.Background(), Page{})
	require.NoError(t, err)

	got := seen.all()[0]
	assert.Equal(t, "/categories_and_latest", got.path)
	assert.Equal(t, "50", got.query.Get("per_page"))
	assert.Empty(t, got.apiKey)
}

func TestClientSearch(t *testing.T) {
	c, seen := newFakeForum(t, http.StatusOK, `{"posts":[],"topics":[]}`)

	_, err := c.Search(context.Background(), "golang 并发")
	require.NoError(t, err)

	got := seen.all()[0]
	assert.Equal(t, "/search/query.json", got.path)
	assert.Equal(t, "golang 并发", got.query.Get("term"))
}

func TestClientNotifications(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		buckets    []string
		wantFilter string
		wantSilent bool
	}{
		{name: "no filter", limit: 0},
		{name: "like bucket", limit: 5, buckets: []string{"like"}, wantFilter: "liked,liked_consolidated,reaction", wantSilent: true},
		{name: "unknown bucket only", buckets: []string{"nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, seen := newFakeForum(t, http.StatusOK, `{"notifications":[]}`)

			_, err := c.Notifications(context.Background(), tt.limit, tt.buckets)
			require.NoError(t, err)

			got := seen.all()[0]
			assert.Equal(t, "/notifications.json", got.path)
			assert.Equal(t, "secret", got.apiKey)
			assert.Equal(t, "true", got.query.Get("recent"))
			assert.Equal(t, "true", got.query.Get("bump_last_seen_reviewable"))
			wantLimit := "10"
			if tt.limit > 0 {
				wantLimit = "5"
			}
			assert.Equal(t, wantLimit, got.query.Get("limit"))
			assert.Equal(t, tt.wantFilter, got.query.Get("filter_by_types"))
			if tt.wantSilent {
				assert.Equal(t, "true", got.query.Get("silent"))
			} else {
				assert.False(t, got.query.Has("silent"))
			}
		})
	}
}

func TestClientPersonalEndpoints(t *testing.T) {
	c, seen := newFakeForum(t, http.StatusOK, `{}`)

	_, err := c.Bookmarks(context.Background())
	require.NoError(t, err)
	_, err = c.PrivateMessages(context.Background())
	require.NoError(t, err)

	reqs := seen.all()
	require.Len(t, reqs, 2)
	assert.Equal(t, "/u/alice/user-menu-bookmarks.json", reqs[0].path)
	assert.Equal(t, "/topics/private-messages/alice.json", reqs[1].path)
	for _, r := range reqs {
		assert.Equal(t, "secret", r.apiKey)
	}
}

func TestClientStatusError(t *testing.T) {
	c, _ := newFakeForum(t, http.StatusForbidden, `{"errors":["nope"]}`)

	_, err := c.Topics(context.Background(), "unread", "", Page{}, true)
	require.Error(t, err)

	var serr *StatusError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "unread.json", serr.Endpoint)
	assert.Equal(t, http.StatusForbidden, serr.StatusCode)
	assert.Equal(t, "Error fetching from unread.json: Forbidden", err.Error())
}

func TestClientDecodeError(t *testing.T) {
	c, _ := newFakeForum(t, http.StatusOK, `<html>`)

	_, err := c.Search(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response from search/query.json")
}

func TestClientTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	c := NewClient(Config{BaseURL: srv.URL, RequestTimeout: 20 * time.Millisecond})
	_, err := c.Fetch(context.Background(), "hot.json", nil, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "timed out")
}

func TestClientLimiterHonoursContext(t *testing.T) {
	c, seen := newFakeForum(t, http.StatusOK, `{}`)
	lim := rate.NewLimiter(rate.Every(time.Hour), 1)
	require.True(t, lim.Allow(), "drain the only token")
	c = NewClient(c.Config(), WithLimiter(lim))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Fetch(ctx, "latest.json", nil, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit latest.json")
	assert.Empty(t, seen.all())
}

func TestNewClientLimiterFromConfig(t *testing.T) {
	assert.Nil(t, NewClient(Config{}).limiter)
	c := NewClient(Config{RequestsPerSecond: 0.5})
	require.NotNil(t, c.limiter)
	assert.Equal(t, 1, c.limiter.Burst())
}

func TestConfigValidate(t *testing.T) {
	valid := Config{BaseURL: "https://linux.do", APIKey: "k", Username: "u"}
	require.NoError(t, valid.Validate())

	c := valid
	c.APIKey = ""
	assert.ErrorIs(t, c.Validate(), ErrMissingAPIKey)

	c = valid
	c.Username = ""
	assert.ErrorIs(t, c.Validate(), ErrMissingUsername)

	c = valid
	c.BaseURL = "linux.do"
	assert.Error(t, c.Validate())

	c = valid
	c.RequestTimeout = -time.Second
	assert.Error(t, c.Validate())
}

func TestLoadConfig(t *testing.T) {
	t.Cleanup(viper.Reset)
	config.Init(nil)

	_, err := LoadConfig()
	if config.APIKey() == "" {
		assert.ErrorIs(t, err, ErrMissingAPIKey)
	}

	viper.Set(config.KeyAPIKey, " key ")
	viper.Set(config.KeyUsername, "alice")
	viper.Set(config.KeyBaseURL, "https://example.org/")
	viper.Set(config.KeyRequestTimeout, "2s")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "key", cfg.APIKey)
	assert.Equal(t, "alice", cfg.Username)
	assert.Equal(t, "https://example.org", cfg.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "https://example.org/t/7", cfg.TopicURL(7))

	viper.Set(config.KeyRequestTimeout, "soon")
	_, err = LoadConfig()
	assert.Error(t, err)
}

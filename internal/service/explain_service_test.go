package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/course-scheduler-api/internal/dto"
	"github.com/noah-isme/course-scheduler-api/internal/models"
	"github.com/noah-isme/course-scheduler-api/pkg/config"
	appErrors "github.com/noah-isme/course-scheduler-api/pkg/errors"
)

type explainCacheStub struct {
	store map[string]string
	gets  int
	sets  int
}

func newExplainCacheStub() *explainCacheStub {
	return &explainCacheStub{store: make(map[string]string)}
}

func (c *explainCacheStub) Get(ctx context.Context, key string, dest interface{}) error {
	c.gets++
	value, ok := c.store[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	*(dest.(*string)) = value
	return nil
}

func (c *explainCacheStub) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	c.sets++
	c.store[key] = value.(string)
	return nil
}

func fakeCompletionServer(t *testing.T, reply string, capture *string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req completionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 1)
		if capture != nil {
			*capture = req.Messages[0].Content
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": reply}},
			},
		})
	}))
	t.Cleanup(server.Close)
	return server
}

func TestExplainBuildsPromptAndReturnsText(t *testing.T) {
	var prompt string
	server := fakeCompletionServer(t, "Your Friday evening lab was unavoidable.", &prompt)

	svc := NewExplainService(config.LLMConfig{APIURL: server.URL, Model: "test-model"}, config.ExplainConfig{}, nil, nil, nil)
	section, err := models.NewSection("PHY150", models.DayFri, "18:00", "19:30", "Lab 2")
	require.NoError(t, err)

	text, err := svc.Explain(context.Background(), dto.ExplainRequest{
		UserMessage: "why is my schedule like this",
		Schedule:    []models.Section{section},
		FailReason:  "",
	})
	require.NoError(t, err)
	require.Equal(t, "Your Friday evening lab was unavoidable.", text)

	require.True(t, strings.HasPrefix(prompt, "User request: why is my schedule like this"))
	require.Contains(t, prompt, "PHY150 Fri 18:00-19:30 at Lab 2")
	require.Contains(t, prompt, "advisor-style explanation")
	require.NotContains(t, prompt, "Fail reason:")
}

func TestExplainIncludesFailReason(t *testing.T) {
	var prompt string
	server := fakeCompletionServer(t, "ok", &prompt)

	svc := NewExplainService(config.LLMConfig{APIURL: server.URL}, config.ExplainConfig{}, nil, nil, nil)
	_, err := svc.Explain(context.Background(), dto.ExplainRequest{
		UserMessage: "what went wrong",
		FailReason:  "No sections exist for GHOST1",
	})
	require.NoError(t, err)
	require.Contains(t, prompt, "Fail reason: No sections exist for GHOST1")
	require.Contains(t, prompt, "(none)")
}

func TestExplainUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(server.Close)

	svc := NewExplainService(config.LLMConfig{APIURL: server.URL}, config.ExplainConfig{}, nil, nil, nil)
	_, err := svc.Explain(context.Background(), dto.ExplainRequest{UserMessage: "hi"})
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	require.Equal(t, appErrors.ErrUpstream.Code, appErr.Code)
	require.Equal(t, http.StatusBadGateway, appErr.Status)
}

func TestExplainUsesCache(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "cached answer"}},
			},
		})
	}))
	t.Cleanup(server.Close)

	cache := newExplainCacheStub()
	svc := NewExplainService(
		config.LLMConfig{APIURL: server.URL},
		config.ExplainConfig{CacheEnabled: true, CacheTTL: time.Hour},
		cache, nil, nil)

	req := dto.ExplainRequest{UserMessage: "explain please"}

	first, err := svc.Explain(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Explain(context.Background(), req)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, 1, calls)
	require.Equal(t, 1, cache.sets)
	require.Equal(t, 2, cache.gets)
}

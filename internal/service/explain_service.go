package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/course-scheduler-api/internal/dto"
	"github.com/noah-isme/course-scheduler-api/pkg/config"
	appErrors "github.com/noah-isme/course-scheduler-api/pkg/errors"
)

// ExplainCache abstracts the cached explanation store.
type ExplainCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// ExplainService produces advisor-style prose for a scheduling outcome via a
// hosted completion API. It sits strictly downstream of the engine: nothing
// it returns ever feeds back into scheduling decisions, which is also why
// caching responses here is safe while the engine itself stays cache-free.
type ExplainService struct {
	cfg          config.LLMConfig
	client       *http.Client
	cache        ExplainCache
	cacheTTL     time.Duration
	cacheEnabled bool
	metrics      *MetricsService
	logger       *zap.Logger
}

// NewExplainService constructs the explanation client.
func NewExplainService(cfg config.LLMConfig, explainCfg config.ExplainConfig, cache ExplainCache, metrics *MetricsService, logger *zap.Logger) *ExplainService {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ExplainService{
		cfg:          cfg,
		client:       &http.Client{Timeout: timeout},
		cache:        cache,
		cacheTTL:     explainCfg.CacheTTL,
		cacheEnabled: explainCfg.CacheEnabled && cache != nil,
		metrics:      metrics,
		logger:       logger,
	}
}

type completionRequest struct {
	Model    string              `json:"model"`
	Messages []completionMessage `json:"messages"`
}

type completionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionResponse struct {
	Choices []struct {
		Message completionMessage `json:"message"`
	} `json:"choices"`
}

// Explain renders the prompt and returns the generated explanation,
// consulting the cache first when enabled.
func (s *ExplainService) Explain(ctx context.Context, req dto.ExplainRequest) (string, error) {
	key := s.cacheKey(req)

	if s.cacheEnabled {
		var cached string
		start := time.Now()
		err := s.cache.Get(ctx, key, &cached)
		if err == nil {
			s.metrics.RecordCacheOperation(true, time.Since(start))
			return cached, nil
		}
		s.metrics.RecordCacheOperation(false, time.Since(start))
	}

	start := time.Now()
	text, err := s.complete(ctx, buildPrompt(req))
	s.metrics.ObserveLLM(time.Since(start))
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "explanation generation failed")
	}

	if s.cacheEnabled {
		writeStart := time.Now()
		if err := s.cache.Set(ctx, key, text, s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache explanation", zap.Error(err))
		}
		s.metrics.ObserveCacheWrite(time.Since(writeStart))
	}

	return text, nil
}

func (s *ExplainService) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(completionRequest{
		Model:    s.cfg.Model,
		Messages: []completionMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.APIURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call completion api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion api returned status %d", resp.StatusCode)
	}

	var parsed completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("completion api returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}

func (s *ExplainService) cacheKey(req dto.ExplainRequest) string {
	payload, _ := json.Marshal(req)
	sum := sha256.Sum256(payload)
	return "explain:" + hex.EncodeToString(sum[:])
}

func buildPrompt(req dto.ExplainRequest) string {
	var b strings.Builder
	b.WriteString("User request: ")
	b.WriteString(req.UserMessage)
	b.WriteString("\nSchedule:\n")
	if len(req.Schedule) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, section := range req.Schedule {
		b.WriteString(fmt.Sprintf("  %s %s %s-%s at %s\n",
			section.Course, section.Day, section.StartTime, section.EndTime, section.Location))
	}
	if req.FailReason != "" {
		b.WriteString("Fail reason: ")
		b.WriteString(req.FailReason)
		b.WriteString("\n")
	}
	b.WriteString("\nProvide a brief, advisor-style explanation for the student.")
	return b.String()
}

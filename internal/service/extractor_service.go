package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/course-scheduler-api/internal/dto"
	"github.com/noah-isme/course-scheduler-api/pkg/config"
)

// ExtractorService calls the hosted sequence-to-sequence model that turns
// free text into a structured constraint payload. The contract with the
// scheduler is degrade-never-fail: any transport or decoding problem yields
// the unconstrained default payload, so scheduling proceeds as if no
// constraint text had been supplied.
type ExtractorService struct {
	url     string
	client  *http.Client
	metrics *MetricsService
	logger  *zap.Logger
}

type extractRequest struct {
	Text string `json:"text"`
}

// NewExtractorService constructs the extractor client.
func NewExtractorService(cfg config.ExtractorConfig, metrics *MetricsService, logger *zap.Logger) *ExtractorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ExtractorService{
		url:     cfg.URL,
		client:  &http.Client{Timeout: timeout},
		metrics: metrics,
		logger:  logger,
	}
}

// Extract returns the structured constraint payload for the given text, or
// the unconstrained default when the text is empty, the extractor is not
// configured, or the call fails.
func (s *ExtractorService) Extract(ctx context.Context, text string) dto.RawConstraintPayload {
	text = strings.TrimSpace(text)
	if text == "" || s.url == "" {
		return dto.RawConstraintPayload{}
	}

	start := time.Now()
	payload, err := s.call(ctx, text)
	duration := time.Since(start)
	if err != nil {
		s.metrics.ObserveExtractor(duration, true)
		s.logger.Warn("constraint extraction failed, using unconstrained default", zap.Error(err))
		return dto.RawConstraintPayload{}
	}

	s.metrics.ObserveExtractor(duration, false)
	return payload
}

func (s *ExtractorService) call(ctx context.Context, text string) (dto.RawConstraintPayload, error) {
	body, err := json.Marshal(extractRequest{Text: text})
	if err != nil {
		return dto.RawConstraintPayload{}, fmt.Errorf("marshal extractor request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return dto.RawConstraintPayload{}, fmt.Errorf("build extractor request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return dto.RawConstraintPayload{}, fmt.Errorf("call extractor: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return dto.RawConstraintPayload{}, fmt.Errorf("extractor returned status %d", resp.StatusCode)
	}

	var payload dto.RawConstraintPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return dto.RawConstraintPayload{}, fmt.Errorf("decode extractor response: %w", err)
	}
	return payload, nil
}

package service

import (
	"go.uber.org/zap"

	"github.com/noah-isme/course-scheduler-api/internal/dto"
	"github.com/noah-isme/course-scheduler-api/internal/models"
)

// ConstraintService converts loosely-shaped extractor payloads into the
// canonical ConstraintSet the engine consumes.
type ConstraintService struct {
	logger *zap.Logger
}

// NewConstraintService constructs the normalizer.
func NewConstraintService(logger *zap.Logger) *ConstraintService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConstraintService{logger: logger}
}

// Normalize always succeeds and always returns a fully-populated
// ConstraintSet: missing fields become their defaults, unknown day names and
// malformed clock values degrade to "unconstrained" instead of failing.
// Normalizing the result of a previous normalization is a no-op.
func (s *ConstraintService) Normalize(raw *dto.RawConstraintPayload) models.ConstraintSet {
	result := models.Unconstrained()
	if raw == nil {
		return result
	}

	if raw.AvoidMornings != nil {
		result.AvoidMornings = *raw.AvoidMornings
	}
	if raw.AvoidEvenings != nil {
		result.AvoidEvenings = *raw.AvoidEvenings
	}
	if raw.AvoidFridays != nil {
		result.AvoidFridays = *raw.AvoidFridays
	}

	seen := make(map[models.Day]bool, len(raw.PreferredDays))
	for _, name := range raw.PreferredDays {
		day, err := models.ParseDay(name)
		if err != nil {
			s.logger.Debug("dropping unknown preferred day", zap.String("day", name))
			continue
		}
		if seen[day] {
			continue
		}
		seen[day] = true
		result.PreferredDays = append(result.PreferredDays, day)
	}

	if raw.TimeWindow != nil {
		result.TimeWindow.Earliest = normalizeClock(s.logger, "earliest", raw.TimeWindow.Earliest)
		result.TimeWindow.Latest = normalizeClock(s.logger, "latest", raw.TimeWindow.Latest)
	}

	return result
}

func normalizeClock(logger *zap.Logger, bound, raw string) string {
	if raw == "" {
		return ""
	}
	if _, err := models.ParseClock(raw); err != nil {
		logger.Debug("dropping malformed time window bound",
			zap.String("bound", bound), zap.String("value", raw))
		return ""
	}
	return raw
}

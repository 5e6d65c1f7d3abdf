package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/course-scheduler-api/internal/dto"
	"github.com/noah-isme/course-scheduler-api/internal/models"
	appErrors "github.com/noah-isme/course-scheduler-api/pkg/errors"
)

// Cutoffs for the morning/evening avoidance filters, minutes since midnight.
const (
	morningCutoff = 12 * 60
	eveningCutoff = 17 * 60
)

type constraintExtractor interface {
	Extract(ctx context.Context, text string) dto.RawConstraintPayload
}

type constraintNormalizer interface {
	Normalize(raw *dto.RawConstraintPayload) models.ConstraintSet
}

// ScheduleService runs the deterministic scheduling pipeline: constraint
// extraction, normalization, locked-course placement, then first-fit section
// selection for the remaining courses. The whole computation is synchronous
// and side-effect free; identical catalog and request always reproduce the
// same timetable.
type ScheduleService struct {
	catalog    *models.Catalog
	extractor  constraintExtractor
	normalizer constraintNormalizer
	validator  *validator.Validate
	metrics    *MetricsService
	logger     *zap.Logger
}

// NewScheduleService wires the scheduling pipeline.
func NewScheduleService(
	catalog *models.Catalog,
	extractor constraintExtractor,
	normalizer constraintNormalizer,
	validate *validator.Validate,
	metrics *MetricsService,
	logger *zap.Logger,
) *ScheduleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{
		catalog:    catalog,
		extractor:  extractor,
		normalizer: normalizer,
		validator:  validate,
		metrics:    metrics,
		logger:     logger,
	}
}

// Generate runs the full pipeline for one request. Scheduling failures are
// part of the response payload, not errors: only transport or validation
// problems surface as errors.
func (s *ScheduleService) Generate(ctx context.Context, req dto.GenerateScheduleRequest) (*dto.GenerateScheduleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule generation payload")
	}

	var raw dto.RawConstraintPayload
	if s.extractor != nil {
		raw = s.extractor.Extract(ctx, req.ConstraintText)
	}
	constraints := s.normalizer.Normalize(&raw)

	sections, failure := s.Build(req.SelectedCourses, req.LockedCourses, constraints)

	resp := &dto.GenerateScheduleResponse{
		Success:     failure == nil,
		Constraints: constraints,
	}
	if failure != nil {
		resp.FailReason = failure.Reason()
		resp.FailCause = failure.Cause
		s.metrics.ObserveScheduleOutcome(string(failure.Cause))
		s.logger.Info("schedule generation failed",
			zap.String("course", failure.Course),
			zap.String("cause", string(failure.Cause)))
		return resp, nil
	}

	resp.Schedule = sections
	s.metrics.ObserveScheduleOutcome("SUCCESS")
	s.logger.Info("schedule generated", zap.Int("courses", len(sections)))
	return resp, nil
}

// Build places locked courses first (in request order, bypassing constraint
// filters) and then the remaining selected courses (also in request order).
// It returns the ordered section list, or the single failure naming the
// first course that could not be placed.
func (s *ScheduleService) Build(selected, locked []string, constraints models.ConstraintSet) ([]models.Section, *models.ScheduleFailure) {
	schedule, failure := s.placeLocked(locked)
	if failure != nil {
		return nil, failure
	}

	lockedSet := make(map[string]bool, len(locked))
	for _, course := range locked {
		lockedSet[course] = true
	}

	for _, course := range selected {
		if lockedSet[course] {
			continue
		}
		section, failure := s.chooseSection(course, constraints, schedule)
		if failure != nil {
			return nil, failure
		}
		schedule.Add(course, section)
	}

	return schedule.Sections(), nil
}

// placeLocked pins each locked course to its first catalog section. The
// caller has already committed to these courses, so constraint filters do
// not apply; only locked-vs-locked conflicts can fail the pass.
func (s *ScheduleService) placeLocked(locked []string) (*models.Schedule, *models.ScheduleFailure) {
	schedule := &models.Schedule{}
	for _, course := range locked {
		candidates := s.catalog.SectionsFor(course)
		if len(candidates) == 0 {
			return nil, &models.ScheduleFailure{Cause: models.FailureUnknownCourse, Course: course}
		}
		chosen := candidates[0]
		if schedule.Conflicts(chosen) {
			return nil, &models.ScheduleFailure{Cause: models.FailureLockedConflict, Course: course}
		}
		schedule.Add(course, chosen)
	}
	return schedule, nil
}

// chooseSection picks one admissible section for a course: candidates by
// exact course match, then the conjunctive constraint filters, then
// conflict-freedom against the accumulated schedule. Among survivors it
// takes the first in catalog order. First-fit is deliberate policy, not an
// optimization: the engine never ranks sections.
func (s *ScheduleService) chooseSection(course string, constraints models.ConstraintSet, schedule *models.Schedule) (models.Section, *models.ScheduleFailure) {
	candidates := s.catalog.SectionsFor(course)
	if len(candidates) == 0 {
		return models.Section{}, &models.ScheduleFailure{Cause: models.FailureUnknownCourse, Course: course}
	}

	filters := constraintFilters(constraints)
	admissible := make([]models.Section, 0, len(candidates))
	for _, candidate := range candidates {
		if passesAll(candidate, filters) {
			admissible = append(admissible, candidate)
		}
	}
	if len(admissible) == 0 {
		return models.Section{}, &models.ScheduleFailure{Cause: models.FailureConstraintExhausted, Course: course}
	}

	for _, candidate := range admissible {
		if !schedule.Conflicts(candidate) {
			return candidate, nil
		}
	}
	return models.Section{}, &models.ScheduleFailure{Cause: models.FailureScheduleConflict, Course: course}
}

// sectionFilter is a single constraint predicate. Filters are independent
// and combined by conjunction, so constraint kinds can be added or removed
// without touching the selector's control flow.
type sectionFilter func(models.Section) bool

func passesAll(section models.Section, filters []sectionFilter) bool {
	for _, filter := range filters {
		if !filter(section) {
			return false
		}
	}
	return true
}

// constraintFilters builds the active predicate list for a ConstraintSet.
// Inactive constraints contribute no filter at all.
func constraintFilters(cs models.ConstraintSet) []sectionFilter {
	var filters []sectionFilter

	if cs.AvoidMornings {
		filters = append(filters, func(sec models.Section) bool {
			return sec.StartMinutes() >= morningCutoff
		})
	}
	if cs.AvoidEvenings {
		filters = append(filters, func(sec models.Section) bool {
			return sec.StartMinutes() <= eveningCutoff
		})
	}
	if cs.AvoidFridays {
		filters = append(filters, func(sec models.Section) bool {
			return sec.Day != models.DayFri
		})
	}
	if len(cs.PreferredDays) > 0 {
		preferred := make(map[models.Day]bool, len(cs.PreferredDays))
		for _, day := range cs.PreferredDays {
			preferred[day] = true
		}
		filters = append(filters, func(sec models.Section) bool {
			return preferred[sec.Day]
		})
	}
	if cs.TimeWindow.Earliest != "" {
		earliest := mustClock(cs.TimeWindow.Earliest)
		filters = append(filters, func(sec models.Section) bool {
			return sec.StartMinutes() >= earliest
		})
	}
	if cs.TimeWindow.Latest != "" {
		latest := mustClock(cs.TimeWindow.Latest)
		filters = append(filters, func(sec models.Section) bool {
			return sec.EndMinutes() <= latest
		})
	}

	return filters
}

// mustClock assumes the value was validated during normalization.
func mustClock(raw string) int {
	minutes, err := models.ParseClock(raw)
	if err != nil {
		return 0
	}
	return minutes
}

package service

import (
	"reflect"
	"testing"

	"github.com/noah-isme/course-scheduler-api/internal/dto"
	"github.com/noah-isme/course-scheduler-api/internal/models"
)

func boolPtr(b bool) *bool { return &b }

func TestNormalizeNilPayload(t *testing.T) {
	svc := NewConstraintService(nil)

	got := svc.Normalize(nil)
	want := models.Unconstrained()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Normalize(nil) = %+v, want %+v", got, want)
	}
}

func TestNormalizeEmptyPayload(t *testing.T) {
	svc := NewConstraintService(nil)

	got := svc.Normalize(&dto.RawConstraintPayload{})
	if got.AvoidMornings || got.AvoidEvenings || got.AvoidFridays {
		t.Fatalf("expected all avoidance flags false, got %+v", got)
	}
	if got.PreferredDays == nil || len(got.PreferredDays) != 0 {
		t.Fatalf("expected empty non-nil preferred days, got %v", got.PreferredDays)
	}
	if got.TimeWindow.Earliest != "" || got.TimeWindow.Latest != "" {
		t.Fatalf("expected unbounded time window, got %+v", got.TimeWindow)
	}
}

func TestNormalizeFullPayload(t *testing.T) {
	svc := NewConstraintService(nil)

	got := svc.Normalize(&dto.RawConstraintPayload{
		AvoidMornings: boolPtr(true),
		AvoidEvenings: boolPtr(false),
		AvoidFridays:  boolPtr(true),
		PreferredDays: []string{"monday", "Wed"},
		TimeWindow:    &dto.RawTimeWindow{Earliest: "10:00", Latest: "16:00"},
	})

	if !got.AvoidMornings || got.AvoidEvenings || !got.AvoidFridays {
		t.Fatalf("unexpected avoidance flags: %+v", got)
	}
	wantDays := []models.Day{models.DayMon, models.DayWed}
	if !reflect.DeepEqual(got.PreferredDays, wantDays) {
		t.Fatalf("PreferredDays = %v, want %v", got.PreferredDays, wantDays)
	}
	if got.TimeWindow.Earliest != "10:00" || got.TimeWindow.Latest != "16:00" {
		t.Fatalf("unexpected time window: %+v", got.TimeWindow)
	}
}

func TestNormalizeDropsInvalidValues(t *testing.T) {
	svc := NewConstraintService(nil)

	got := svc.Normalize(&dto.RawConstraintPayload{
		PreferredDays: []string{"Mon", "Funday", "monday", "tue"},
		TimeWindow:    &dto.RawTimeWindow{Earliest: "25:00", Latest: "9am"},
	})

	wantDays := []models.Day{models.DayMon, models.DayTue}
	if !reflect.DeepEqual(got.PreferredDays, wantDays) {
		t.Fatalf("PreferredDays = %v, want %v", got.PreferredDays, wantDays)
	}
	if got.TimeWindow.Earliest != "" || got.TimeWindow.Latest != "" {
		t.Fatalf("malformed bounds should be dropped, got %+v", got.TimeWindow)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	svc := NewConstraintService(nil)

	first := svc.Normalize(&dto.RawConstraintPayload{
		AvoidMornings: boolPtr(true),
		PreferredDays: []string{"Tue", "Thu"},
		TimeWindow:    &dto.RawTimeWindow{Earliest: "09:00"},
	})

	// Feed the canonical result back through as a raw payload.
	dayNames := make([]string, 0, len(first.PreferredDays))
	for _, day := range first.PreferredDays {
		dayNames = append(dayNames, string(day))
	}
	second := svc.Normalize(&dto.RawConstraintPayload{
		AvoidMornings: boolPtr(first.AvoidMornings),
		AvoidEvenings: boolPtr(first.AvoidEvenings),
		AvoidFridays:  boolPtr(first.AvoidFridays),
		PreferredDays: dayNames,
		TimeWindow:    &dto.RawTimeWindow{Earliest: first.TimeWindow.Earliest, Latest: first.TimeWindow.Latest},
	})

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("normalization not idempotent: %+v vs %+v", first, second)
	}
}

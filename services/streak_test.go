package services

import (
	"context"
	"testing"
	"time"

	"brainscript/models"
)

func days(dates ...string) []models.DailyActivity {
	out := make([]models.DailyActivity, 0, len(dates))
	for _, d := range dates {
		out = append(out, models.DailyActivity{Date: d})
	}
	return out
}

func TestStreak(t *testing.T) {
	// fixedNow is 2024-03-14
	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{"no activity", nil, 0},
		{"today only", []string{"2024-03-14"}, 1},
		{"today and yesterday", []string{"2024-03-14", "2024-03-13"}, 2},
		{"yesterday only", []string{"2024-03-13"}, 1},
		{"run ending yesterday", []string{"2024-03-13", "2024-03-12", "2024-03-11"}, 3},
		{"gap stops the count", []string{"2024-03-14", "2024-03-11", "2024-03-10"}, 1},
		{"older run after a gap is ignored", []string{"2024-03-14", "2024-03-13", "2024-03-10", "2024-03-09", "2024-03-08"}, 2},
		{"latest two days ago", []string{"2024-03-12", "2024-03-11"}, 0},
		{"unsorted input", []string{"2024-03-12", "2024-03-14", "2024-03-13"}, 3},
		{"duplicate dates collapse", []string{"2024-03-14", "2024-03-14", "2024-03-13"}, 2},
		{"unparseable dates skipped", []string{"not-a-date", "2024-03-14", "", "2024-03-13"}, 2},
		{"stale run", []string{"2024-03-02", "2024-03-01", "2024-02-29"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Streak(days(tt.dates...), fixedNow); got != tt.want {
				t.Errorf("Streak(%v) = %d, want %d", tt.dates, got, tt.want)
			}
		})
	}
}

func TestStreakAcrossMonthBoundary(t *testing.T) {
	now := time.Date(2024, time.March, 1, 0, 30, 0, 0, time.UTC)
	if got := Streak(days("2024-03-01", "2024-02-29", "2024-02-28"), now); got != 3 {
		t.Fatalf("got %d want 3", got)
	}
}

func TestStreakUsesUTCDate(t *testing.T) {
	// 23:30 on the 13th in UTC-5 is already the 14th in UTC
	local := time.Date(2024, time.March, 13, 23, 30, 0, 0, time.FixedZone("EST", -5*3600))
	if got := Streak(days("2024-03-14"), local); got != 1 {
		t.Fatalf("got %d want 1", got)
	}
}

func TestSortActivityDoesNotMutateInput(t *testing.T) {
	in := days("2024-03-12", "2024-03-14", "2024-03-13")
	out := SortActivity(in)

	if out[0].Date != "2024-03-14" || out[2].Date != "2024-03-12" {
		t.Fatalf("unexpected order: %+v", out)
	}
	if in[0].Date != "2024-03-12" {
		t.Fatalf("input was reordered: %+v", in)
	}
}

func TestDashboard(t *testing.T) {
	svc, store, clock := newTestService(t)
	id := seedUser(t, store)
	ctx := context.Background()

	clock.Advance(-24 * time.Hour)
	if err := svc.Track(ctx, id, ActivityDelta{WatchTime: 30.0}); err != nil {
		t.Fatalf("Track: %v", err)
	}
	clock.Advance(24 * time.Hour)
	if err := svc.Track(ctx, id, ActivityDelta{WatchTime: 15.0}); err != nil {
		t.Fatalf("Track: %v", err)
	}

	dash, err := svc.Dashboard(ctx, id)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if dash.Streak != 2 {
		t.Errorf("streak: got %d want 2", dash.Streak)
	}
	if dash.Stats.TotalWatchTime != 45 {
		t.Errorf("total watch time: got %v want 45", dash.Stats.TotalWatchTime)
	}
	if len(dash.DailyActivity) != 2 || dash.DailyActivity[0].Date != "2024-03-14" {
		t.Errorf("daily activity: got %+v", dash.DailyActivity)
	}
	if dash.QuizHistory == nil || dash.Stats.TopicsCleared == nil {
		t.Errorf("expected empty slices, got nil")
	}
	if dash.User.Name != "Ada Lovelace" {
		t.Errorf("user name: got %q", dash.User.Name)
	}
}

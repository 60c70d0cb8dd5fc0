package services

import (
	"context"
	"sort"
	"time"

	"brainscript/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Dashboard is everything the dashboard page renders
type Dashboard struct {
	Stats         models.Stats              `json:"stats"`
	DailyActivity []models.DailyActivity    `json:"dailyActivity"`
	QuizHistory   []models.QuizHistoryEntry `json:"quizHistory"`
	Streak        int                       `json:"streak"`
	User          models.ProfileView        `json:"user"`
}

// Dashboard loads the user and derives the streak
func (s *UserService) Dashboard(ctx context.Context, id primitive.ObjectID) (*Dashboard, error) {
	u, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	stats := u.Stats
	if stats.TopicsCleared == nil {
		stats.TopicsCleared = []string{}
	}
	quizzes := u.QuizHistory
	if quizzes == nil {
		quizzes = []models.QuizHistoryEntry{}
	}

	return &Dashboard{
		Stats:         stats,
		DailyActivity: SortActivity(u.DailyActivity),
		QuizHistory:   quizzes,
		Streak:        Streak(u.DailyActivity, s.now()),
		User:          u.Profile(),
	}, nil
}

// SortActivity returns a copy of days ordered most recent first
func SortActivity(days []models.DailyActivity) []models.DailyActivity {
	sorted := make([]models.DailyActivity, len(days))
	copy(sorted, days)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})
	return sorted
}

// Streak counts consecutive active days ending today or yesterday. The count
// stops at the first gap even if older activity exists. Entries sharing a
// date are treated as one day and unparseable dates are skipped.
func Streak(days []models.DailyActivity, now time.Time) int {
	dates := make([]time.Time, 0, len(days))
	for _, d := range days {
		t, err := time.Parse(dateLayout, d.Date)
		if err != nil {
			continue
		}
		dates = append(dates, t)
	}
	if len(dates) == 0 {
		return 0
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	latest := dates[0].Format(dateLayout)
	if latest != DateKey(now) && latest != DateKey(now.Add(-24*time.Hour)) {
		return 0
	}

	streak := 1
	for i := 1; i < len(dates); i++ {
		switch daysBetween(dates[i-1], dates[i]) {
		case 0:
			continue
		case 1:
			streak++
		default:
			return streak
		}
	}
	return streak
}

func daysBetween(a, b time.Time) int {
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	return int(diff.Hours() / 24)
}

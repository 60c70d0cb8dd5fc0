package services

import (
	"context"
	"math"
	"time"

	"brainscript/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	dateLayout = "2006-01-02"

	// MaxLearningProgress caps the continue watching list
	MaxLearningProgress = 20
)

// DateKey formats t as the UTC calendar date used by DailyActivity
func DateKey(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// ActivityDelta is one tracking ping from the client. WatchTime and
// AppOpenTime hold whatever JSON the client sent; non-numbers are ignored.
type ActivityDelta struct {
	VideoID      string      `json:"videoId"`
	WatchTime    interface{} `json:"watchTime"`
	AppOpenTime  interface{} `json:"appOpenTime"`
	Title        string      `json:"title"`
	ThumbnailURL string      `json:"thumbnailUrl"`
	PlaylistID   string      `json:"playlistId"`
}

// QuizResult is a finished quiz reported by the client
type QuizResult struct {
	VideoID        string   `json:"videoId"`
	VideoTitle     string   `json:"videoTitle"`
	Score          float64  `json:"score"`
	TotalQuestions float64  `json:"totalQuestions"`
	Difficulty     string   `json:"difficulty"`
	Topics         []string `json:"topics"`
}

// Track applies an activity delta to the user's record
func (s *UserService) Track(ctx context.Context, id primitive.ObjectID, delta ActivityDelta) error {
	_, err := s.mutate(ctx, id, func(u *models.User, now time.Time) error {
		ApplyActivity(u, delta, now)
		return nil
	})
	return err
}

// RecordQuizResult appends a quiz attempt and returns the full history
func (s *UserService) RecordQuizResult(ctx context.Context, id primitive.ObjectID, result QuizResult) ([]models.QuizHistoryEntry, error) {
	user, err := s.mutate(ctx, id, func(u *models.User, now time.Time) error {
		ApplyQuizResult(u, result, now)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user.QuizHistory, nil
}

// ApplyActivity folds delta into today's roll-up, the lifetime stats and the
// learning progress list.
func ApplyActivity(u *models.User, delta ActivityDelta, now time.Time) {
	day, _ := findOrCreateDay(u, DateKey(now))

	if watch, ok := seconds(delta.WatchTime); ok {
		u.Stats.TotalWatchTime += watch
		day.WatchTime += watch
	}
	if open, ok := seconds(delta.AppOpenTime); ok {
		day.AppOpenTime += open
	}

	if delta.VideoID == "" {
		return
	}
	if !contains(day.VideosWatched, delta.VideoID) {
		day.VideosWatched = append(day.VideosWatched, delta.VideoID)
	}
	if delta.Title != "" {
		pushLearningProgress(u, models.LearningProgressEntry{
			VideoID:      delta.VideoID,
			Title:        delta.Title,
			ThumbnailURL: delta.ThumbnailURL,
			PlaylistID:   delta.PlaylistID,
			LastWatched:  now,
		})
	}
}

// ApplyLogin stamps the login time and counts a login for today
func ApplyLogin(u *models.User, now time.Time) {
	u.LastLogin = now
	day, created := findOrCreateDay(u, DateKey(now))
	if created {
		day.LoginCount = 1
		return
	}
	day.LoginCount++
}

// ApplyQuizResult records a quiz attempt and the topics it cleared
func ApplyQuizResult(u *models.User, result QuizResult, now time.Time) {
	u.QuizHistory = append(u.QuizHistory, models.QuizHistoryEntry{
		ID:             primitive.NewObjectID(),
		Date:           now,
		VideoID:        result.VideoID,
		VideoTitle:     result.VideoTitle,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		Difficulty:     result.Difficulty,
	})
	u.Stats.TotalQuizzesSolved++

	for _, topic := range result.Topics {
		if topic != "" && !contains(u.Stats.TopicsCleared, topic) {
			u.Stats.TopicsCleared = append(u.Stats.TopicsCleared, topic)
		}
	}
}

// findOrCreateDay returns today's roll-up, creating it with zeroed counters.
// The returned pointer is only valid until the slice is appended to again.
func findOrCreateDay(u *models.User, date string) (*models.DailyActivity, bool) {
	for i := range u.DailyActivity {
		if u.DailyActivity[i].Date == date {
			return &u.DailyActivity[i], false
		}
	}
	u.DailyActivity = append(u.DailyActivity, models.DailyActivity{
		Date:          date,
		VideosWatched: []string{},
	})
	return &u.DailyActivity[len(u.DailyActivity)-1], true
}

func pushLearningProgress(u *models.User, entry models.LearningProgressEntry) {
	progress := make([]models.LearningProgressEntry, 0, len(u.LearningProgress)+1)
	progress = append(progress, entry)
	for _, p := range u.LearningProgress {
		if p.VideoID != entry.VideoID {
			progress = append(progress, p)
		}
	}
	if len(progress) > MaxLearningProgress {
		progress = progress[:MaxLearningProgress]
	}
	u.LearningProgress = progress
}

// seconds accepts any finite, non-negative JSON or Go number
func seconds(v interface{}) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case int32:
		f = float64(n)
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, false
	}
	return f, true
}

func contains(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}

package services

import (
	"context"
	"sort"
	"time"

	"brainscript/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	reviewThreshold = 0.6
	maxSmartReview  = 10
	unknownVideo    = "Unknown Video"
)

// ReviewItem is a weak quiz attempt worth revisiting
type ReviewItem struct {
	VideoID        string    `json:"videoId"`
	Title          string    `json:"title"`
	Score          float64   `json:"score"`
	TotalQuestions float64   `json:"totalQuestions"`
	Date           time.Time `json:"date"`
}

type LearningHistory struct {
	ContinueWatching []models.LearningProgressEntry `json:"continueWatching"`
	SmartReview      []ReviewItem                   `json:"smartReview"`
}

// LearningHistory derives the "My Learning" views. Nothing is written.
func (s *UserService) LearningHistory(ctx context.Context, id primitive.ObjectID) (*LearningHistory, error) {
	u, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	history := ComposeLearningHistory(u)
	return &history, nil
}

// ComposeLearningHistory returns the learning progress as is, plus the ten
// most recent quizzes scored under 60%.
func ComposeLearningHistory(u *models.User) LearningHistory {
	watching := u.LearningProgress
	if watching == nil {
		watching = []models.LearningProgressEntry{}
	}

	weak := make([]models.QuizHistoryEntry, 0)
	for _, q := range u.QuizHistory {
		if q.TotalQuestions > 0 && q.Score/q.TotalQuestions < reviewThreshold {
			weak = append(weak, q)
		}
	}
	sort.SliceStable(weak, func(i, j int) bool {
		return weak[i].Date.After(weak[j].Date)
	})
	if len(weak) > maxSmartReview {
		weak = weak[:maxSmartReview]
	}

	review := make([]ReviewItem, 0, len(weak))
	for _, q := range weak {
		title := q.VideoTitle
		if title == "" {
			title = unknownVideo
		}
		review = append(review, ReviewItem{
			VideoID:        q.VideoID,
			Title:          title,
			Score:          q.Score,
			TotalQuestions: q.TotalQuestions,
			Date:           q.Date,
		})
	}

	return LearningHistory{
		ContinueWatching: watching,
		SmartReview:      review,
	}
}

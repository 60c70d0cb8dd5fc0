package services

import (
	"testing"
	"time"

	"brainscript/models"
)

func quiz(videoID, title string, score, total float64, at time.Time) models.QuizHistoryEntry {
	return models.QuizHistoryEntry{VideoID: videoID, VideoTitle: title, Score: score, TotalQuestions: total, Date: at}
}

func TestComposeLearningHistoryFiltersWeakQuizzes(t *testing.T) {
	u := &models.User{QuizHistory: []models.QuizHistoryEntry{
		quiz("pass", "t", 6, 10, fixedNow),
		quiz("fail", "t", 5, 10, fixedNow),
		quiz("empty", "t", 0, 0, fixedNow),
		quiz("zero", "t", 0, 4, fixedNow),
	}}

	got := ComposeLearningHistory(u).SmartReview
	if len(got) != 2 {
		t.Fatalf("expected 2 review items, got %+v", got)
	}
	for _, item := range got {
		if item.VideoID == "pass" || item.VideoID == "empty" {
			t.Errorf("unexpected review item %q", item.VideoID)
		}
	}
}

func TestComposeLearningHistoryOrderAndCap(t *testing.T) {
	u := &models.User{}
	for i := 0; i < 12; i++ {
		u.QuizHistory = append(u.QuizHistory, quiz(string(rune('a'+i)), "t", 1, 10, fixedNow.Add(time.Duration(i)*time.Hour)))
	}

	got := ComposeLearningHistory(u).SmartReview
	if len(got) != maxSmartReview {
		t.Fatalf("length: got %d want %d", len(got), maxSmartReview)
	}
	if got[0].VideoID != "l" || got[len(got)-1].VideoID != "c" {
		t.Fatalf("unexpected order: first=%s last=%s", got[0].VideoID, got[len(got)-1].VideoID)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Date.After(got[i-1].Date) {
			t.Fatalf("not sorted by date descending at %d", i)
		}
	}
}

func TestComposeLearningHistoryTitleFallback(t *testing.T) {
	u := &models.User{QuizHistory: []models.QuizHistoryEntry{quiz("v1", "", 1, 4, fixedNow)}}
	got := ComposeLearningHistory(u).SmartReview
	if len(got) != 1 || got[0].Title != "Unknown Video" {
		t.Fatalf("unexpected review: %+v", got)
	}
}

func TestComposeLearningHistoryContinueWatching(t *testing.T) {
	progress := []models.LearningProgressEntry{
		{VideoID: "b", Title: "B", LastWatched: fixedNow},
		{VideoID: "a", Title: "A", LastWatched: fixedNow.Add(-time.Hour)},
	}
	got := ComposeLearningHistory(&models.User{LearningProgress: progress}).ContinueWatching
	if len(got) != 2 || got[0].VideoID != "b" || got[1].VideoID != "a" {
		t.Fatalf("continue watching should be returned as stored, got %+v", got)
	}
}

func TestComposeLearningHistoryEmpty(t *testing.T) {
	got := ComposeLearningHistory(&models.User{})
	if got.ContinueWatching == nil || got.SmartReview == nil {
		t.Fatalf("expected empty non-nil lists, got %+v", got)
	}
}

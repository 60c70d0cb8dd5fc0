package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AccountType tags what kind of learner owns the account
type AccountType string

const (
	AccountStudent   AccountType = "Student"
	AccountTeacher   AccountType = "Teacher"
	AccountDeveloper AccountType = "Developer"
	AccountLearner   AccountType = "Learner"
	AccountOther     AccountType = "Other"
)

// Valid reports whether t is one of the known account types
func (t AccountType) Valid() bool {
	switch t {
	case AccountStudent, AccountTeacher, AccountDeveloper, AccountLearner, AccountOther:
		return true
	}
	return false
}

// User is the single document holding everything we know about one learner.
// Embedded collections have no lifetime outside of it.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	GoogleID     string             `bson:"googleId" json:"googleId"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Picture      string             `bson:"picture" json:"picture"`
	ProfileImage string             `bson:"profileImage" json:"profileImage"`
	LastLogin    time.Time          `bson:"lastLogin" json:"lastLogin"`
	AccountType  AccountType        `bson:"accountType" json:"accountType"`

	Stats            Stats                   `bson:"stats" json:"stats"`
	DailyActivity    []DailyActivity         `bson:"dailyActivity" json:"dailyActivity"`
	QuizHistory      []QuizHistoryEntry      `bson:"quizHistory" json:"quizHistory"`
	LearningProgress []LearningProgressEntry `bson:"learningProgress" json:"learningProgress"`
	Notes            []Note                  `bson:"notes" json:"notes"`
	Downloads        []Download              `bson:"downloads" json:"downloads"`
	Summaries        []Summary               `bson:"summaries" json:"summaries"`
	Transcripts      []Transcript            `bson:"transcripts" json:"transcripts"`

	// Version is bumped on every save; a save against a stale version fails.
	Version   int64     `bson:"version" json:"-"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Stats are lifetime counters, they only ever grow
type Stats struct {
	TotalWatchTime     float64  `bson:"totalWatchTime" json:"totalWatchTime"` // seconds
	TotalQuizzesSolved int      `bson:"totalQuizzesSolved" json:"totalQuizzesSolved"`
	TopicsCleared      []string `bson:"topicsCleared" json:"topicsCleared"`
}

// DailyActivity is the roll-up for one UTC calendar date
type DailyActivity struct {
	Date          string   `bson:"date" json:"date"` // YYYY-MM-DD
	WatchTime     float64  `bson:"watchTime" json:"watchTime"`
	AppOpenTime   float64  `bson:"appOpenTime" json:"appOpenTime"`
	VideosWatched []string `bson:"videosWatched" json:"videosWatched"`
	LoginCount    int      `bson:"loginCount" json:"loginCount"`
}

type QuizHistoryEntry struct {
	ID             primitive.ObjectID `bson:"_id" json:"_id"`
	Date           time.Time          `bson:"date" json:"date"`
	VideoID        string             `bson:"videoId" json:"videoId"`
	VideoTitle     string             `bson:"videoTitle" json:"videoTitle"`
	Score          float64            `bson:"score" json:"score"`
	TotalQuestions float64            `bson:"totalQuestions" json:"totalQuestions"`
	Difficulty     string             `bson:"difficulty" json:"difficulty"`
}

// LearningProgressEntry backs the "continue watching" row
type LearningProgressEntry struct {
	VideoID      string    `bson:"videoId" json:"videoId"`
	Title        string    `bson:"title" json:"title"`
	ThumbnailURL string    `bson:"thumbnailUrl,omitempty" json:"thumbnailUrl,omitempty"`
	LastWatched  time.Time `bson:"lastWatched" json:"lastWatched"`
	PlaylistID   string    `bson:"playlistId,omitempty" json:"playlistId,omitempty"`
}

// ProfileView is the subset of the user shown on the dashboard
type ProfileView struct {
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Picture      string      `json:"picture"`
	ProfileImage string      `json:"profileImage"`
	LastLogin    time.Time   `json:"lastLogin"`
	AccountType  AccountType `json:"accountType"`
	CreatedAt    time.Time   `json:"createdAt"`
}

func (u *User) Profile() ProfileView {
	return ProfileView{
		Name:         u.Name,
		Email:        u.Email,
		Picture:      u.Picture,
		ProfileImage: u.ProfileImage,
		LastLogin:    u.LastLogin,
		AccountType:  u.AccountType,
		CreatedAt:    u.CreatedAt,
	}
}

package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FileType names one of the user's saved sub-collections
type FileType int

const (
	FileTranscript FileType = iota + 1
	FileSummary
	FileDownload
	FileNote
)

var fileTypeNames = map[FileType]string{
	FileTranscript: "transcript",
	FileSummary:    "summary",
	FileDownload:   "downloads",
	FileNote:       "notes",
}

// String is the canonical name echoed back by the files API
func (t FileType) String() string {
	if name, ok := fileTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseFileType accepts the singular and plural spellings used by clients
func ParseFileType(s string) (FileType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "transcript", "transcripts":
		return FileTranscript, true
	case "summary", "summaries":
		return FileSummary, true
	case "download", "downloads":
		return FileDownload, true
	case "note", "notes":
		return FileNote, true
	}
	return 0, false
}

// DownloadKind is what a downloaded file contained
type DownloadKind string

const (
	DownloadTranscript DownloadKind = "transcript"
	DownloadSummary    DownloadKind = "summary"
	DownloadQuiz       DownloadKind = "quiz"
	DownloadNotes      DownloadKind = "notes"
)

func (k DownloadKind) Valid() bool {
	switch k {
	case DownloadTranscript, DownloadSummary, DownloadQuiz, DownloadNotes:
		return true
	}
	return false
}

type Note struct {
	ID         primitive.ObjectID `bson:"_id" json:"_id"`
	VideoID    string             `bson:"videoId" json:"videoId"`
	VideoTitle string             `bson:"videoTitle" json:"videoTitle"`
	Content    string             `bson:"content" json:"content"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Summary struct {
	ID         primitive.ObjectID `bson:"_id" json:"_id"`
	VideoID    string             `bson:"videoId" json:"videoId"`
	VideoTitle string             `bson:"videoTitle" json:"videoTitle"`
	Summary    string             `bson:"summary" json:"summary"`
	IsFavorite bool               `bson:"isFavorite" json:"isFavorite"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Transcript struct {
	ID         primitive.ObjectID `bson:"_id" json:"_id"`
	VideoID    string             `bson:"videoId" json:"videoId"`
	VideoTitle string             `bson:"videoTitle" json:"videoTitle"`
	Transcript string             `bson:"transcript" json:"transcript"`
	Language   string             `bson:"language" json:"language"`
	IsFavorite bool               `bson:"isFavorite" json:"isFavorite"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Download records a file the user exported. Downloads cannot be favorited.
type Download struct {
	ID           primitive.ObjectID `bson:"_id" json:"_id"`
	VideoID      string             `bson:"videoId" json:"videoId"`
	VideoTitle   string             `bson:"videoTitle" json:"videoTitle"`
	FileType     DownloadKind       `bson:"fileType" json:"fileType"`
	FileName     string             `bson:"fileName" json:"fileName"`
	FileSize     int64              `bson:"fileSize" json:"fileSize"` // bytes
	Content      string             `bson:"content" json:"content"`
	DownloadedAt time.Time          `bson:"downloadedAt" json:"downloadedAt"`
}

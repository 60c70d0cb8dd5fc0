package services

import (
	"context"
	"strings"
	"time"

	"brainscript/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultLanguage   = "en"
	defaultNoteTitle  = "Untitled Video"
	noteNotFound      = "Note"
	fileEntryNotFound = "File"
)

type NoteInput struct {
	VideoID    string `json:"videoId"`
	VideoTitle string `json:"videoTitle"`
	Content    string `json:"content"`
}

type TranscriptInput struct {
	VideoID    string `json:"videoId"`
	VideoTitle string `json:"videoTitle"`
	Transcript string `json:"transcript"`
	Language   string `json:"language"`
}

type SummaryInput struct {
	VideoID    string `json:"videoId"`
	VideoTitle string `json:"videoTitle"`
	Summary    string `json:"summary"`
}

type DownloadInput struct {
	VideoID    string `json:"videoId"`
	VideoTitle string `json:"videoTitle"`
	FileType   string `json:"fileType"`
	FileName   string `json:"fileName"`
	Content    string `json:"content"`
	FileSize   int64  `json:"fileSize"`
}

// Files groups the saved-file collections
type Files struct {
	Transcripts []models.Transcript `json:"transcripts"`
	Summaries   []models.Summary    `json:"summaries"`
	Downloads   []models.Download   `json:"downloads"`
}

// keyIndex maps a natural key to its position in the ordered slice
type keyIndex map[string]int

func indexBy[T any](items []T, key func(T) string) keyIndex {
	idx := make(keyIndex, len(items))
	for i, item := range items {
		k := key(item)
		if _, seen := idx[k]; !seen {
			idx[k] = i
		}
	}
	return idx
}

func removeByID[T any](items []T, id primitive.ObjectID, idOf func(T) primitive.ObjectID) ([]T, bool) {
	for i, item := range items {
		if idOf(item) == id {
			return append(items[:i], items[i+1:]...), true
		}
	}
	return items, false
}

func noteKey(n models.Note) string             { return n.VideoID }
func summaryKey(s models.Summary) string       { return s.VideoID }
func transcriptKey(t models.Transcript) string { return transcriptIndexKey(t.VideoID, t.Language) }

func transcriptIndexKey(videoID, language string) string {
	return videoID + "\x00" + language
}

// fileCollection is the per-type behaviour shared by list, toggle and delete.
// A nil toggle means the collection has no favorite flag.
type fileCollection struct {
	list   func(u *models.User) interface{}
	remove func(u *models.User, id primitive.ObjectID) bool
	toggle func(u *models.User, id primitive.ObjectID) (favorite bool, found bool)
}

var fileCollections = map[models.FileType]fileCollection{
	models.FileTranscript: {
		list: func(u *models.User) interface{} { return nonNil(u.Transcripts) },
		remove: func(u *models.User, id primitive.ObjectID) bool {
			var ok bool
			u.Transcripts, ok = removeByID(u.Transcripts, id, func(t models.Transcript) primitive.ObjectID { return t.ID })
			return ok
		},
		toggle: func(u *models.User, id primitive.ObjectID) (bool, bool) {
			for i := range u.Transcripts {
				if u.Transcripts[i].ID == id {
					u.Transcripts[i].IsFavorite = !u.Transcripts[i].IsFavorite
					return u.Transcripts[i].IsFavorite, true
				}
			}
			return false, false
		},
	},
	models.FileSummary: {
		list: func(u *models.User) interface{} { return nonNil(u.Summaries) },
		remove: func(u *models.User, id primitive.ObjectID) bool {
			var ok bool
			u.Summaries, ok = removeByID(u.Summaries, id, func(s models.Summary) primitive.ObjectID { return s.ID })
			return ok
		},
		toggle: func(u *models.User, id primitive.ObjectID) (bool, bool) {
			for i := range u.Summaries {
				if u.Summaries[i].ID == id {
					u.Summaries[i].IsFavorite = !u.Summaries[i].IsFavorite
					return u.Summaries[i].IsFavorite, true
				}
			}
			return false, false
		},
	},
	models.FileDownload: {
		list: func(u *models.User) interface{} { return nonNil(u.Downloads) },
		remove: func(u *models.User, id primitive.ObjectID) bool {
			var ok bool
			u.Downloads, ok = removeByID(u.Downloads, id, func(d models.Download) primitive.ObjectID { return d.ID })
			return ok
		},
	},
	models.FileNote: {
		list: func(u *models.User) interface{} { return nonNil(u.Notes) },
		remove: func(u *models.User, id primitive.ObjectID) bool {
			var ok bool
			u.Notes, ok = removeByID(u.Notes, id, func(n models.Note) primitive.ObjectID { return n.ID })
			return ok
		},
	},
}

func collectionFor(ft models.FileType) (fileCollection, error) {
	c, ok := fileCollections[ft]
	if !ok {
		return fileCollection{}, invalid("Invalid file type")
	}
	return c, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// UpsertNote updates the note for the video or creates it
func UpsertNote(u *models.User, in NoteInput, now time.Time) (*models.Note, error) {
	if strings.TrimSpace(in.VideoID) == "" {
		return nil, invalid("videoId is required")
	}
	if i, ok := indexBy(u.Notes, noteKey)[in.VideoID]; ok {
		u.Notes[i].Content = in.Content
		u.Notes[i].UpdatedAt = now
		return &u.Notes[i], nil
	}

	title := in.VideoTitle
	if title == "" {
		title = defaultNoteTitle
	}
	u.Notes = append(u.Notes, models.Note{
		ID:         primitive.NewObjectID(),
		VideoID:    in.VideoID,
		VideoTitle: title,
		Content:    in.Content,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	return &u.Notes[len(u.Notes)-1], nil
}

// UpsertTranscript keys transcripts by video and language
func UpsertTranscript(u *models.User, in TranscriptInput, now time.Time) (*models.Transcript, error) {
	if in.VideoID == "" || in.Transcript == "" {
		return nil, invalid("videoId and transcript are required")
	}
	lang := in.Language
	if lang == "" {
		lang = defaultLanguage
	}

	if i, ok := indexBy(u.Transcripts, transcriptKey)[transcriptIndexKey(in.VideoID, lang)]; ok {
		t := &u.Transcripts[i]
		t.VideoTitle = in.VideoTitle
		t.Transcript = in.Transcript
		t.UpdatedAt = now
		return t, nil
	}

	u.Transcripts = append(u.Transcripts, models.Transcript{
		ID:         primitive.NewObjectID(),
		VideoID:    in.VideoID,
		VideoTitle: in.VideoTitle,
		Transcript: in.Transcript,
		Language:   lang,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	return &u.Transcripts[len(u.Transcripts)-1], nil
}

// UpsertSummary keeps one summary per video
func UpsertSummary(u *models.User, in SummaryInput, now time.Time) (*models.Summary, error) {
	if in.VideoID == "" || in.Summary == "" {
		return nil, invalid("videoId and summary are required")
	}

	if i, ok := indexBy(u.Summaries, summaryKey)[in.VideoID]; ok {
		s := &u.Summaries[i]
		s.VideoTitle = in.VideoTitle
		s.Summary = in.Summary
		s.UpdatedAt = now
		return s, nil
	}

	u.Summaries = append(u.Summaries, models.Summary{
		ID:         primitive.NewObjectID(),
		VideoID:    in.VideoID,
		VideoTitle: in.VideoTitle,
		Summary:    in.Summary,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	return &u.Summaries[len(u.Summaries)-1], nil
}

// AppendDownload always records a new download
func AppendDownload(u *models.User, in DownloadInput, now time.Time) (*models.Download, error) {
	if in.VideoID == "" || in.FileType == "" || in.FileName == "" {
		return nil, invalid("videoId, fileType, and fileName are required")
	}
	kind := models.DownloadKind(in.FileType)
	if !kind.Valid() {
		return nil, invalid("Invalid download file type")
	}
	size := in.FileSize
	if size < 0 {
		size = 0
	}

	u.Downloads = append(u.Downloads, models.Download{
		ID:           primitive.NewObjectID(),
		VideoID:      in.VideoID,
		VideoTitle:   in.VideoTitle,
		FileType:     kind,
		FileName:     in.FileName,
		FileSize:     size,
		Content:      in.Content,
		DownloadedAt: now,
	})
	return &u.Downloads[len(u.Downloads)-1], nil
}

// ToggleFavorite flips the favorite flag of one entry
func ToggleFavorite(u *models.User, ft models.FileType, fileID string) (bool, error) {
	c, err := collectionFor(ft)
	if err != nil {
		return false, err
	}
	if c.toggle == nil {
		return false, ErrFavoriteUnsupported
	}
	id, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return false, notFound(fileEntryNotFound)
	}
	favorite, ok := c.toggle(u, id)
	if !ok {
		return false, notFound(fileEntryNotFound)
	}
	return favorite, nil
}

// DeleteFile removes one entry by its id
func DeleteFile(u *models.User, ft models.FileType, fileID string) error {
	c, err := collectionFor(ft)
	if err != nil {
		return err
	}
	id, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return notFound(fileEntryNotFound)
	}
	if !c.remove(u, id) {
		return notFound(fileEntryNotFound)
	}
	return nil
}

// DeleteNoteByVideo removes the note attached to a video
func DeleteNoteByVideo(u *models.User, videoID string) error {
	i, ok := indexBy(u.Notes, noteKey)[videoID]
	if !ok {
		return notFound(noteNotFound)
	}
	u.Notes = append(u.Notes[:i], u.Notes[i+1:]...)
	return nil
}

// FindNote returns nil when the video has no note
func FindNote(u *models.User, videoID string) *models.Note {
	if i, ok := indexBy(u.Notes, noteKey)[videoID]; ok {
		return &u.Notes[i]
	}
	return nil
}

func (s *UserService) SaveNote(ctx context.Context, id primitive.ObjectID, in NoteInput) (*models.Note, error) {
	var note models.Note
	_, err := s.mutate(ctx, id, func(u *models.User, now time.Time) error {
		n, err := UpsertNote(u, in, now)
		if err != nil {
			return err
		}
		note = *n
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// GetNote returns nil, nil when the video has no note
func (s *UserService) GetNote(ctx context.Context, id primitive.ObjectID, videoID string) (*models.Note, error) {
	u, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return FindNote(u, videoID), nil
}

func (s *UserService) ListNotes(ctx context.Context, id primitive.ObjectID) ([]models.Note, error) {
	u, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return nonNil(u.Notes), nil
}

func (s *UserService) DeleteNote(ctx context.Context, id primitive.ObjectID, videoID string) error {
	_, err := s.mutate(ctx, id, func(u *models.User, _ time.Time) error {
		return DeleteNoteByVideo(u, videoID)
	})
	return err
}

func (s *UserService) SaveTranscript(ctx context.Context, id primitive.ObjectID, in TranscriptInput) error {
	_, err := s.mutate(ctx, id, func(u *models.User, now time.Time) error {
		_, err := UpsertTranscript(u, in, now)
		return err
	})
	return err
}

func (s *UserService) SaveSummary(ctx context.Context, id primitive.ObjectID, in SummaryInput) error {
	_, err := s.mutate(ctx, id, func(u *models.User, now time.Time) error {
		_, err := UpsertSummary(u, in, now)
		return err
	})
	return err
}

func (s *UserService) SaveDownload(ctx context.Context, id primitive.ObjectID, in DownloadInput) error {
	_, err := s.mutate(ctx, id, func(u *models.User, now time.Time) error {
		_, err := AppendDownload(u, in, now)
		return err
	})
	return err
}

func (s *UserService) ListFiles(ctx context.Context, id primitive.ObjectID) (*Files, error) {
	u, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Files{
		Transcripts: nonNil(u.Transcripts),
		Summaries:   nonNil(u.Summaries),
		Downloads:   nonNil(u.Downloads),
	}, nil
}

func (s *UserService) ListFilesByType(ctx context.Context, id primitive.ObjectID, ft models.FileType) (interface{}, error) {
	c, err := collectionFor(ft)
	if err != nil {
		return nil, err
	}
	u, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.list(u), nil
}

func (s *UserService) ToggleFavorite(ctx context.Context, id primitive.ObjectID, ft models.FileType, fileID string) (bool, error) {
	var favorite bool
	_, err := s.mutate(ctx, id, func(u *models.User, _ time.Time) error {
		var err error
		favorite, err = ToggleFavorite(u, ft, fileID)
		return err
	})
	return favorite, err
}

func (s *UserService) DeleteFile(ctx context.Context, id primitive.ObjectID, ft models.FileType, fileID string) error {
	_, err := s.mutate(ctx, id, func(u *models.User, _ time.Time) error {
		return DeleteFile(u, ft, fileID)
	})
	return err
}

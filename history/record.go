package history

import (
	"fmt"

	"github.com/lectern-cli/lectern/portal"
)

// SavedLecture represents a single captured lecture preserved in history.
type SavedLecture struct {
	LectureID int    `json:"lecture_id"`
	SubID     int    `json:"sub_id"`
	Title     string `json:"title"`
	Lecturer  string `json:"lecturer"`
	Room      string `json:"room"`
	BeginTime string `json:"begin_time"`
	URL       string `json:"url"`
	Format    string `json:"format"`
	Path      string `json:"path"`
	SavedAt   string `json:"saved_at"`
}

func (s *SavedLecture) encode() string {
	return fmt.Sprintf("%d/%d", s.LectureID, s.SubID)
}

func (s *SavedLecture) String() string {
	return fmt.Sprintf("%s  %s — %s (%s)", s.BeginTime, s.Title, s.Lecturer, s.Format)
}

// NewSavedLecture builds a history record from a lecture summary and its resolved video.
func NewSavedLecture(lecture portal.LectureSummary, video portal.ResolvedVideo, path string) *SavedLecture {
	return &SavedLecture{
		LectureID: lecture.LectureID,
		SubID:     lecture.SubID,
		Title:     lecture.Title,
		Lecturer:  lecture.Lecturer,
		Room:      lecture.Room,
		BeginTime: lecture.BeginTime,
		URL:       video.URL,
		Format:    video.Format.String(),
		Path:      path,
	}
}

package portal

import (
	"strings"

	"github.com/samber/lo"
)

// Flatten turns the schedule endpoint's time-slot groupings into a single
// ordered sequence of lecture summaries, preserving slot and in-slot order.
func Flatten(slots []TimeSlot) []LectureSummary {
	return lo.FlatMap(slots, func(slot TimeSlot, _ int) []LectureSummary {
		return slot.Lectures
	})
}

// FilterLectures narrows a lecture sequence by a case-insensitive substring
// matched against title, lecturer, or room. An empty keyword keeps everything.
// Order is preserved from the unfiltered sequence.
func FilterLectures(lectures []LectureSummary, keyword string) []LectureSummary {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return lectures
	}

	return lo.Filter(lectures, func(l LectureSummary, _ int) bool {
		return strings.Contains(strings.ToLower(l.Title), keyword) ||
			strings.Contains(strings.ToLower(l.Lecturer), keyword) ||
			strings.Contains(strings.ToLower(l.Room), keyword)
	})
}

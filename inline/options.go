// Package inline implements the non-interactive, scriptable execution mode.
package inline

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/lectern-cli/lectern/portal"
	"github.com/samber/mo"
)

// LecturePicker narrows a filtered schedule down to a single lecture.
type LecturePicker func([]portal.LectureSummary) mo.Option[portal.LectureSummary]

// Client is the slice of the portal client inline mode consumes.
type Client interface {
	Schedule(date time.Time, buildingID mo.Option[int]) ([]portal.TimeSlot, error)
	LectureDetail(lectureID, subID int) (portal.LectureDetail, error)
}

type Options struct {
	Out        io.Writer
	Client     Client
	Date       time.Time
	BuildingID mo.Option[int]
	Filter     string
	Picker     mo.Option[LecturePicker]
	Json       bool
	URLOnly    bool
}

// ParseLecturePicker parses a picker description.
// Supported kinds: "first", "last", "exact" (by title) and "index".
func ParseLecturePicker(kind, value string) (LecturePicker, error) {
	switch kind {
	case "first":
		return func(lectures []portal.LectureSummary) mo.Option[portal.LectureSummary] {
			if len(lectures) == 0 {
				return mo.None[portal.LectureSummary]()
			}
			return mo.Some(lectures[0])
		}, nil
	case "last":
		return func(lectures []portal.LectureSummary) mo.Option[portal.LectureSummary] {
			if len(lectures) == 0 {
				return mo.None[portal.LectureSummary]()
			}
			return mo.Some(lectures[len(lectures)-1])
		}, nil
	case "exact":
		return func(lectures []portal.LectureSummary) mo.Option[portal.LectureSummary] {
			for _, lecture := range lectures {
				if lecture.Title == value {
					return mo.Some(lecture)
				}
			}
			return mo.None[portal.LectureSummary]()
		}, nil
	case "index":
		idx, err := strconv.ParseUint(value, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid index: %s", value)
		}
		return func(lectures []portal.LectureSummary) mo.Option[portal.LectureSummary] {
			if uint64(len(lectures)) <= idx {
				return mo.None[portal.LectureSummary]()
			}
			return mo.Some(lectures[idx])
		}, nil
	default:
		return nil, fmt.Errorf("unknown picker type: %s", kind)
	}
}

// Package portal implements the authenticated client for the course-streaming portal API.
package portal

// Envelope is the common wrapper shared by all portal responses.
// Code zero means success; any other value is an application-level failure
// regardless of the transport status.
type Envelope[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"msg"`
	Total   int    `json:"total"`
	List    T      `json:"list"`
}

// Building is a single building on a campus.
type Building struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Campus groups the buildings of one campus. Sourced fresh per session.
type Campus struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Buildings []Building `json:"buildings"`
}

// LectureSummary is one scheduled session in a day.
type LectureSummary struct {
	LectureID int    `json:"id"`
	SubID     int    `json:"sub_id"`
	Title     string `json:"title"`
	Lecturer  string `json:"professor"`
	Room      string `json:"location"`
	BeginTime string `json:"begin_time"`
	EndTime   string `json:"end_time"`
}

// String renders the summary for selection menus.
func (l LectureSummary) String() string {
	return l.BeginTime + "  " + l.Title + " — " + l.Lecturer + " (" + l.Room + ")"
}

// TimeSlot is the schedule endpoint's grouping of sessions by teaching period.
type TimeSlot struct {
	Section   int              `json:"section"`
	BeginTime string           `json:"begin_time"`
	EndTime   string           `json:"end_time"`
	Lectures  []LectureSummary `json:"courses"`
}

// LectureDetail carries the recording metadata of a single lecture.
// SubContent is itself a JSON document; see ResolveVideo.
type LectureDetail struct {
	Title      string `json:"title"`
	Lecturer   string `json:"professor"`
	Room       string `json:"location"`
	BeginTime  string `json:"begin_time"`
	SubContent string `json:"sub_content"`
}

// Package session drives the interactive capture pipeline from credential
// acquisition through schedule browsing to video download.
package session

import (
	"time"

	"github.com/lectern-cli/lectern/credential"
	"github.com/lectern-cli/lectern/portal"
	"github.com/samber/mo"
)

// Outcome is the terminal result of a session run.
type Outcome int

const (
	// Failed means a fetch step errored out.
	Failed Outcome = iota
	// NoMatch means the filtered schedule came back empty.
	NoMatch
	// NoRecording means the selected lecture has no playable video.
	NoRecording
	// VideoResolved means a playable video address was produced.
	VideoResolved
)

func (o Outcome) String() string {
	switch o {
	case NoMatch:
		return "no matching lectures"
	case NoRecording:
		return "no recording available"
	case VideoResolved:
		return "video resolved"
	default:
		return "failed"
	}
}

// Client is the slice of the portal client the session consumes.
type Client interface {
	Locations() ([]portal.Campus, error)
	Schedule(date time.Time, buildingID mo.Option[int]) ([]portal.TimeSlot, error)
	LectureDetail(lectureID, subID int) (portal.LectureDetail, error)
}

// Store persists the working credential between runs.
type Store interface {
	Load() mo.Option[credential.Credential]
	Save(cred credential.Credential) error
	Invalidate()
}

// Options preseed interactive steps so they are not prompted for.
type Options struct {
	Date   mo.Option[time.Time]
	Filter mo.Option[string]
}

type session struct {
	state state

	options  *Options
	prompter Prompter
	store    Store
	connect  func(credential.Credential) Client

	credential      credential.Credential
	credentialSaved bool
	client          Client

	campuses []portal.Campus
	building mo.Option[int]
	date     time.Time

	lectures        []portal.LectureSummary
	selectedLecture portal.LectureSummary
	video           portal.ResolvedVideo

	outcome Outcome
}

func newSession(options *Options) *session {
	return &session{
		options:  options,
		prompter: &surveyPrompter{},
		store:    credential.DefaultStore(),
		connect: func(cred credential.Credential) Client {
			return portal.NewClient(cred)
		},
	}
}

// newState advances the pipeline. Every transition moves strictly
// forward; there is no back navigation in the capture flow.
func (s *session) newState(next state) {
	s.state = next
}

// Run walks the pipeline to completion and reports the terminal outcome.
func Run(options *Options) (Outcome, error) {
	if options == nil {
		options = &Options{}
	}
	return newSession(options).run()
}

func (s *session) run() (Outcome, error) {
	s.state = credentialState

	for s.state != doneState {
		if err := s.handleState(); err != nil {
			return Failed, err
		}
	}

	return s.outcome, nil
}

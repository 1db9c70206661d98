package session

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"path/filepath"

	"github.com/lectern-cli/lectern/credential"
	"github.com/lectern-cli/lectern/download"
	"github.com/lectern-cli/lectern/history"
	"github.com/lectern-cli/lectern/key"
	"github.com/lectern-cli/lectern/log"
	"github.com/lectern-cli/lectern/portal"
	"github.com/lectern-cli/lectern/query"
	"github.com/lectern-cli/lectern/util"
	"github.com/spf13/viper"
)

type state int

const (
	credentialState state = iota + 1
	locationState
	dateState
	scheduleState
	lectureSelectState
	resolveState
	downloadState
	doneState
)

func (s *session) handleState() error {
	switch s.state {
	case credentialState:
		return s.handleCredentialState()
	case locationState:
		return s.handleLocationState()
	case dateState:
		return s.handleDateState()
	case scheduleState:
		return s.handleScheduleState()
	case lectureSelectState:
		return s.handleLectureSelectState()
	case resolveState:
		return s.handleResolveState()
	case downloadState:
		return s.handleDownloadState()
	}

	return nil
}

// fetchFailed classifies a fetch error before surfacing it. Authorization
// rejections clear the stored credential so the next run re-prompts.
func (s *session) fetchFailed(err error) error {
	if portal.IsAuthFailure(err) {
		s.store.Invalidate()
		s.credentialSaved = false
	}

	s.outcome = Failed
	return err
}

// persistCredential saves the working credential once the portal has
// actually accepted it. Well-formed is not the same as valid.
func (s *session) persistCredential() {
	if s.credentialSaved {
		return
	}

	if err := s.store.Save(s.credential); err != nil {
		log.Warnf("saving credential: %s", err)
		return
	}

	s.credentialSaved = true
}

func (s *session) handleCredentialState() error {
	if stored, ok := s.store.Load().Get(); ok {
		s.credential = stored
		s.credentialSaved = true
		s.client = s.connect(stored)
		s.newState(locationState)
		return nil
	}

	for {
		raw, err := s.prompter.RawRequest()
		if err != nil {
			return err
		}

		cred, err := credential.Extract(raw)
		if err != nil {
			var extraction *credential.ExtractionError
			if errors.As(err, &extraction) {
				s.prompter.Fail(err.Error())
				continue
			}

			return err
		}

		if err := cred.Validate(); err != nil {
			s.prompter.Fail(err.Error())
			continue
		}

		s.credential = cred
		s.client = s.connect(cred)
		s.newState(locationState)
		return nil
	}
}

func (s *session) handleLocationState() error {
	campuses, err := s.client.Locations()
	if err != nil {
		return s.fetchFailed(err)
	}

	s.persistCredential()
	s.campuses = campuses

	building, err := s.prompter.Building(campuses)
	if err != nil {
		return err
	}

	s.building = building
	s.newState(dateState)
	return nil
}

func (s *session) handleDateState() error {
	if date, ok := s.options.Date.Get(); ok {
		s.date = date
		s.newState(scheduleState)
		return nil
	}

	date, err := s.prompter.Date()
	if err != nil {
		return err
	}

	s.date = date
	s.newState(scheduleState)
	return nil
}

func (s *session) handleScheduleState() error {
	slots, err := s.client.Schedule(s.date, s.building)
	if err != nil {
		return s.fetchFailed(err)
	}

	s.persistCredential()
	lectures := portal.Flatten(slots)

	keyword, ok := s.options.Filter.Get()
	if !ok {
		keyword, err = s.prompter.Filter()
		if err != nil {
			return err
		}
	}

	if keyword != "" {
		if err := query.Remember(keyword, 1); err != nil {
			log.Warnf("remembering filter keyword: %s", err)
		}
	}

	lectures = portal.FilterLectures(lectures, keyword)
	if len(lectures) == 0 {
		s.outcome = NoMatch
		s.newState(doneState)
		return nil
	}

	if limit := viper.GetInt(key.SessionLectureLimit); limit > 0 && len(lectures) > limit {
		lectures = lectures[:limit]
	}

	s.lectures = lectures
	s.newState(lectureSelectState)
	return nil
}

func (s *session) handleLectureSelectState() error {
	lecture, err := s.prompter.Lecture(s.lectures)
	if err != nil {
		return err
	}

	s.selectedLecture = lecture
	s.newState(resolveState)
	return nil
}

func (s *session) handleResolveState() error {
	detail, err := s.client.LectureDetail(s.selectedLecture.LectureID, s.selectedLecture.SubID)
	if err != nil {
		return s.fetchFailed(err)
	}

	video, ok := portal.ResolveVideo(detail).Get()
	if !ok {
		s.outcome = NoRecording
		s.newState(doneState)
		return nil
	}

	s.video = video
	s.outcome = VideoResolved
	s.newState(downloadState)
	return nil
}

func (s *session) handleDownloadState() error {
	if viper.GetBool(key.SessionConfirmDownload) {
		confirmed, err := s.prompter.ConfirmDownload(s.selectedLecture)
		if err != nil {
			return err
		}

		if !confirmed {
			s.newState(doneState)
			return nil
		}
	}

	dest := s.destination()

	var err error
	switch s.video.Format {
	case portal.Segmented:
		err = download.Transcode(s.video.URL, dest, s.credential)
	default:
		progress, done := download.Bar(s.selectedLecture.Title)
		err = download.Fetch(s.video.URL, dest, s.credential, progress)
		done()
	}

	if err != nil {
		s.outcome = Failed
		return err
	}

	if viper.GetBool(key.HistorySaveOnDownload) {
		record := history.NewSavedLecture(s.selectedLecture, s.video, dest)
		if err := history.Save(record); err != nil {
			log.Warnf("saving capture history: %s", err)
		}
	}

	s.newState(doneState)
	return nil
}

// destination builds the download path. Segmented captures are remuxed
// into an mp4 container; progressive ones keep the source extension.
func (s *session) destination() string {
	name := util.SanitizeFilename(fmt.Sprintf("%s %s", s.selectedLecture.Title, s.selectedLecture.BeginTime))

	ext := ".mp4"
	if s.video.Format == portal.Progressive {
		if parsed, err := url.Parse(s.video.URL); err == nil {
			if e := path.Ext(parsed.Path); e != "" {
				ext = e
			}
		}
	}

	return filepath.Join(viper.GetString(key.DownloadDir), name+ext)
}

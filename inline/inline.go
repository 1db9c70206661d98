// Package inline implements the non-interactive, scriptable execution mode.
package inline

import (
	"errors"
	"fmt"
	"os"

	"github.com/lectern-cli/lectern/credential"
	"github.com/lectern-cli/lectern/log"
	"github.com/lectern-cli/lectern/portal"
	"github.com/lectern-cli/lectern/query"
)

// Run fetches the schedule for the requested day, narrows it down and
// writes the resolved lectures to the configured output. Inline mode never
// prompts: a stored credential must already exist.
func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	client := options.Client
	if client == nil {
		cred, ok := credential.DefaultStore().Load().Get()
		if !ok {
			return errors.New("no stored credential, run `lectern auth set` first")
		}
		client = portal.NewClient(cred)
	}

	slots, err := client.Schedule(options.Date, options.BuildingID)
	if err != nil {
		return fmt.Errorf("fetching schedule: %w", err)
	}

	lectures := portal.FilterLectures(portal.Flatten(slots), options.Filter)
	if len(lectures) == 0 && options.Filter != "" {
		if hint, ok := query.Suggest(options.Filter).Get(); ok {
			log.Infof("no matches for %q, did you mean %q?", options.Filter, hint)
		}
	}

	if picker, ok := options.Picker.Get(); ok {
		if picked, ok := picker(lectures).Get(); ok {
			lectures = []portal.LectureSummary{picked}
		} else {
			lectures = nil
		}
	}

	captures := make([]*Capture, 0, len(lectures))
	for _, lecture := range lectures {
		capture := &Capture{Lecture: lecture}

		detail, err := client.LectureDetail(lecture.LectureID, lecture.SubID)
		if err != nil {
			return fmt.Errorf("fetching detail of %q: %w", lecture.Title, err)
		}

		if video, ok := portal.ResolveVideo(detail).Get(); ok {
			capture.URL = video.URL
			capture.Format = video.Format.String()
		} else {
			log.Infof("no recording available for %q", lecture.Title)
		}

		captures = append(captures, capture)
	}

	if options.Json {
		return writeJson(options.Out, captures, options)
	}

	for _, capture := range captures {
		if options.URLOnly {
			if capture.URL != "" {
				fmt.Fprintln(options.Out, capture.URL)
			}
			continue
		}

		fmt.Fprintln(options.Out, capture.Lecture.String())
		if capture.URL != "" {
			fmt.Fprintf(options.Out, "  %s (%s)\n", capture.URL, capture.Format)
		}
	}

	return nil
}

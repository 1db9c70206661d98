// Package inline implements the non-interactive, scriptable execution mode.
package inline

import (
	"encoding/json"
	"io"

	"github.com/lectern-cli/lectern/portal"
)

// Capture pairs a scheduled lecture with its resolved video, if any.
type Capture struct {
	Lecture portal.LectureSummary `json:"lecture"`
	// URL is empty when no recording is available.
	URL    string `json:"url,omitempty"`
	Format string `json:"format,omitempty"`
}

type Output struct {
	Date   string     `json:"date"`
	Filter string     `json:"filter,omitempty"`
	Result []*Capture `json:"result"`
}

func writeJson(out io.Writer, captures []*Capture, options *Options) error {
	if captures == nil {
		captures = []*Capture{}
	}

	data, err := json.Marshal(&Output{
		Date:   options.Date.Format("2006-01-02"),
		Filter: options.Filter,
		Result: captures,
	})
	if err != nil {
		return err
	}

	_, err = out.Write(data)
	return err
}

package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/lectern-cli/lectern/icon"
	"github.com/lectern-cli/lectern/portal"
	"github.com/lectern-cli/lectern/query"
	"github.com/lectern-cli/lectern/style"
	"github.com/samber/mo"
)

const dateLayout = "2006-01-02"

// Prompter gathers the interactive inputs of a session run.
type Prompter interface {
	RawRequest() (string, error)
	Building(campuses []portal.Campus) (mo.Option[int], error)
	Date() (time.Time, error)
	Filter() (string, error)
	Lecture(lectures []portal.LectureSummary) (portal.LectureSummary, error)
	ConfirmDownload(lecture portal.LectureSummary) (bool, error)
	Fail(message string)
}

// surveyPrompter asks through the terminal.
type surveyPrompter struct{}

func (p *surveyPrompter) RawRequest() (string, error) {
	prompt := survey.Multiline{
		Message: "Paste the request that carries your portal credentials",
		Help:    "Copy it from your browser's network inspector (\"Copy as cURL\")",
	}

	var raw string
	err := survey.AskOne(&prompt, &raw, survey.WithValidator(survey.Required))
	return raw, err
}

const allBuildings = "All buildings"

func (p *surveyPrompter) Building(campuses []portal.Campus) (mo.Option[int], error) {
	options := []string{allBuildings}
	ids := []int{0}

	for _, campus := range campuses {
		for _, building := range campus.Buildings {
			options = append(options, fmt.Sprintf("%s / %s", campus.Name, building.Name))
			ids = append(ids, building.ID)
		}
	}

	prompt := survey.Select{
		Message:  fmt.Sprintf("%s Where was the lecture held?", icon.Get(icon.Location)),
		Options:  options,
		PageSize: 15,
	}

	var index int
	if err := survey.AskOne(&prompt, &index); err != nil {
		return mo.None[int](), err
	}

	if index == 0 {
		return mo.None[int](), nil
	}

	return mo.Some(ids[index]), nil
}

func (p *surveyPrompter) Date() (time.Time, error) {
	prompt := survey.Input{
		Message: fmt.Sprintf("%s Which day?", icon.Get(icon.Calendar)),
		Default: time.Now().Format(dateLayout),
	}

	var raw string
	err := survey.AskOne(&prompt, &raw, survey.WithValidator(func(answer interface{}) error {
		input, ok := answer.(string)
		if !ok {
			return errors.New("expected a date")
		}

		if _, err := time.Parse(dateLayout, input); err != nil {
			return fmt.Errorf("expected a date like %s", dateLayout)
		}

		return nil
	}))
	if err != nil {
		return time.Time{}, err
	}

	return time.Parse(dateLayout, raw)
}

func (p *surveyPrompter) Filter() (string, error) {
	prompt := survey.Input{
		Message: fmt.Sprintf("%s Filter by course, lecturer or room (empty keeps all)", icon.Get(icon.Search)),
		Suggest: query.SuggestMany,
	}

	var keyword string
	err := survey.AskOne(&prompt, &keyword)
	return keyword, err
}

func (p *surveyPrompter) Lecture(lectures []portal.LectureSummary) (portal.LectureSummary, error) {
	options := make([]string, len(lectures))
	for i, lecture := range lectures {
		options[i] = lecture.String()
	}

	prompt := survey.Select{
		Message:  fmt.Sprintf("%s Pick a lecture", icon.Get(icon.Lecture)),
		Options:  options,
		PageSize: 15,
	}

	var index int
	if err := survey.AskOne(&prompt, &index); err != nil {
		return portal.LectureSummary{}, err
	}

	return lectures[index], nil
}

func (p *surveyPrompter) ConfirmDownload(lecture portal.LectureSummary) (bool, error) {
	prompt := survey.Confirm{
		Message: fmt.Sprintf("%s Download %s?", icon.Get(icon.Download), lecture.Title),
		Default: true,
	}

	var confirmed bool
	err := survey.AskOne(&prompt, &confirmed)
	return confirmed, err
}

func (p *surveyPrompter) Fail(message string) {
	fmt.Printf("%s %s\n", icon.Get(icon.Fail), style.ErrorTitle(message))
}

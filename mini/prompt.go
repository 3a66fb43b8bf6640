package mini

import (
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/lifo-cli/lifo/icon"
	"github.com/lifo-cli/lifo/style"
)

// prompter asks the user for input.
type prompter interface {
	Select(message string, options []string) (string, error)
	Input(message string) (string, error)
	Confirm(message string) (bool, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Select(message string, options []string) (string, error) {
	var response string
	err := survey.AskOne(&survey.Select{
		Message: message,
		Options: options,
	}, &response)
	return response, err
}

func (surveyPrompter) Input(message string) (string, error) {
	var response string
	err := survey.AskOne(&survey.Input{
		Message: message,
		Help:    "Leave empty to go back",
	}, &response)
	return response, err
}

func (surveyPrompter) Confirm(message string) (bool, error) {
	var response bool
	err := survey.AskOne(&survey.Confirm{
		Message: message,
		Default: false,
	}, &response)
	return response, err
}

func title(w io.Writer, s string) {
	fmt.Fprintln(w, style.Title(s))
}

func succeed(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s %s\n", icon.Get(icon.Success), msg)
}

func fail(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %s\n", icon.Get(icon.Fail), err)
}

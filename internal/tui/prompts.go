package tui

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrInteractiveDisabled is returned when interactive prompts are disabled via CODE_NON_INTERACTIVE
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled (CODE_NON_INTERACTIVE is set)")

// checkInteractiveAllowed returns an error if interactive mode is disabled
func checkInteractiveAllowed() error {
	if os.Getenv("CODE_NON_INTERACTIVE") != "" {
		return ErrInteractiveDisabled
	}
	return nil
}

// InteractiveAllowed reports whether prompts may be shown
func InteractiveAllowed() bool {
	return checkInteractiveAllowed() == nil
}

// PromptTextInput prompts the user for a line of text
func PromptTextInput(message, defaultValue string) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}

	var answer string
	prompt := &survey.Input{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", promptError(err)
	}
	return answer, nil
}

// PromptPassword prompts the user for a secret without echoing it
func PromptPassword(message string) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}

	var answer string
	prompt := &survey.Password{Message: message}
	if err := survey.AskOne(prompt, &answer, survey.WithValidator(survey.Required)); err != nil {
		return "", promptError(err)
	}
	return answer, nil
}

func promptError(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return fmt.Errorf("canceled")
	}
	return err
}

// Prompter asks questions on the terminal. It serves both the configuration
// store and the GitHub authorizer.
type Prompter struct{}

// Input asks for a line of text
func (Prompter) Input(message, defaultValue string) (string, error) {
	return PromptTextInput(message, defaultValue)
}

// Password asks for a hidden value
func (Prompter) Password(message string) (string, error) {
	return PromptPassword(message)
}

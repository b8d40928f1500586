package console

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
)

// Confirmer asks a yes/no question.
type Confirmer interface {
	Confirm(label string) (bool, error)
}

type PromptConfirmer struct{}

func NewPromptConfirmer() *PromptConfirmer {
	return &PromptConfirmer{}
}

// Confirm treats a declined, interrupted or closed prompt as "no".
func (that *PromptConfirmer) Confirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}

	_, err := prompt.Run()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, promptui.ErrAbort), errors.Is(err, promptui.ErrInterrupt), errors.Is(err, promptui.ErrEOF):
		return false, nil
	default:
		return false, fmt.Errorf("confirm prompt failed: %w", err)
	}
}

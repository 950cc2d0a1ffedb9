package setup

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/serialsh/internal/config"
)

// inputStep asks for a single value. skip, when set, completes the step
// without asking.
type inputStep struct {
	title string
	input textinput.Model
	skip  func(state *State) bool
	apply func(state *State, value string) error
	err   error
}

func newInputStep(title, placeholder string) *inputStep {
	ti := textinput.New()
	ti.Focus()
	ti.Placeholder = placeholder
	ti.Width = 50
	return &inputStep{title: title, input: ti}
}

func (s *inputStep) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, next)
}

func (s *inputStep) Update(msg tea.Msg, state *State) (Step, tea.Cmd) {
	if s.skip != nil && s.skip(state) {
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		if err := s.apply(state, s.input.Value()); err != nil {
			s.err = err
			return s, nil
		}
		return nil, nil
	}
	return s, cmd
}

func (s *inputStep) View(state *State) string {
	view := s.title + "\n\n" + s.input.View() + "\n\n"
	if s.err != nil {
		view += errorStyle.Render(s.err.Error()) + "\n\n"
	}
	return view + hintStyle.Render("(press enter to confirm)") + "\n"
}

func NewDeviceStep() Step {
	s := newInputStep("Enter the serial device path:", "/dev/ttyUSB0")
	s.skip = func(state *State) bool {
		return state.App.Transport != config.TransportSerial
	}
	s.apply = func(state *State, value string) error {
		value = strings.TrimSpace(value)
		if value == "" {
			return errors.New("a device path is required")
		}
		state.App.Device = value
		return nil
	}
	return s
}

func NewPromptStep() Step {
	s := newInputStep("Enter the prompt (empty keeps \"> \"):", "> ")
	s.apply = func(state *State, value string) error {
		if value == "" {
			value = "> "
		}
		state.App.Prompt = value
		return nil
	}
	return s
}

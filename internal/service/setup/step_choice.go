package setup

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/serialsh/internal/config"
)

type choice struct {
	title string
	value string
}

// choiceStep is a vertical menu; apply stores the selected value.
type choiceStep struct {
	title   string
	choices []choice
	cursor  int
	apply   func(state *State, value string) error
	err     error
}

func (s *choiceStep) Init() tea.Cmd {
	return nil
}

func (s *choiceStep) Update(msg tea.Msg, state *State) (Step, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch key.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.choices)-1 {
			s.cursor++
		}
	case "enter":
		if err := s.apply(state, s.choices[s.cursor].value); err != nil {
			s.err = err
			return s, nil
		}
		return nil, nil
	}
	return s, nil
}

func (s *choiceStep) View(state *State) string {
	var b strings.Builder
	b.WriteString(s.title + "\n\n")
	for i, c := range s.choices {
		if s.cursor == i {
			b.WriteString(selStyle.Render(fmt.Sprintf("> %s", c.title)) + "\n")
		} else {
			b.WriteString(itemStyle.Render(fmt.Sprintf("  %s", c.title)) + "\n")
		}
	}
	if s.err != nil {
		b.WriteString("\n" + errorStyle.Render(s.err.Error()) + "\n")
	}
	b.WriteString("\n" + hintStyle.Render("(press ctrl+c to quit)") + "\n")
	return b.String()
}

func NewTransportStep() Step {
	return &choiceStep{
		title: "Where does the console input come from?",
		choices: []choice{
			{title: "Serial device", value: config.TransportSerial},
			{title: "Standard input (raw terminal)", value: config.TransportStdio},
			{title: "Readline prompt (line editing, history)", value: config.TransportReadline},
		},
		apply: func(state *State, value string) error {
			state.App.Transport = value
			return nil
		},
	}
}

func NewTerminatorStep() Step {
	return &choiceStep{
		title: "Which character ends a command line?",
		choices: []choice{
			{title: `Carriage return (\r)`, value: `\r`},
			{title: `Line feed (\n)`, value: `\n`},
		},
		apply: func(state *State, value string) error {
			var c config.Char
			if err := c.UnmarshalText([]byte(value)); err != nil {
				return err
			}
			state.Shell.Terminator = c
			return state.Shell.ToShell().Validate()
		},
	}
}

package setup

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/serialsh/pkg/env"
)

// SaveEnvStep writes the collected configuration to the runtime .env file
type SaveEnvStep struct {
	err   error
	saved bool
}

func NewSaveEnvStep() Step {
	return &SaveEnvStep{}
}

func (s *SaveEnvStep) Init() tea.Cmd {
	return next
}

func (s *SaveEnvStep) Update(msg tea.Msg, state *State) (Step, tea.Cmd) {
	if s.saved {
		return nil, nil
	}
	if s.err != nil {
		return s, nil
	}

	if err := Save(state); err != nil {
		s.err = err
		return s, nil
	}

	s.saved = true
	return nil, nil
}

func (s *SaveEnvStep) View(state *State) string {
	if s.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", s.err)) + "\n\n(press ctrl+c to quit)\n"
	}
	if s.saved {
		return "Configuration saved successfully!\n"
	}
	return "Saving configuration...\n"
}

// Save renders state into <runtime>/.env. Values equal to their defaults are
// left out.
func Save(state *State) error {
	if err := os.MkdirAll(state.App.GetRuntimePath(), 0755); err != nil {
		return fmt.Errorf("failed to create runtime directory: %w", err)
	}

	envPath := state.App.GetEnvPath()
	if _, err := os.Stat(envPath); err == nil && !state.Overwrite {
		return fmt.Errorf(".env file already exists at %s", envPath)
	}

	// the file lives inside the runtime path, so it never records it
	app := state.App
	app.RuntimePath = ".serialsh"

	content, err := env.MarshalEnv(&app, &state.Shell)
	if err != nil {
		return err
	}

	return os.WriteFile(envPath, []byte(content), 0600)
}

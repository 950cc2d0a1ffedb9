package setup

import "github.com/sandevgo/serialsh/internal/config"

type State struct {
	App   config.AppConfig
	Shell config.ShellConfig

	// Overwrite allows replacing an existing .env file
	Overwrite bool
}

func NewState(app config.AppConfig, sh config.ShellConfig) *State {
	return &State{App: app, Shell: sh}
}

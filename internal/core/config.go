package core

type ConsoleConfig interface {
	GetPrompt() string
	IsEchoEnabled() bool
	IsBannerEnabled() bool
}

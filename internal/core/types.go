package core

const (
	AppName          = "serialsh"
	AppTitle         = "ERNI Shell"
	AppRepositoryURL = "https://github.com/sandevgo/serialsh"
)

// Version is overridden at build time with -ldflags "-X ...core.Version=...".
var Version = "0.1.0"

const (
	StatusOK    = 0
	StatusError = 1
)

package serial

import (
	"context"

	"github.com/sandevgo/serialsh/internal/service/console"
	"github.com/sandevgo/serialsh/pkg/log"
)

// Service runs a console over a Port for the lifetime of the process.
type Service struct {
	port    *Port
	console *console.Console
}

func NewService(port *Port, console *console.Console) *Service {
	return &Service{port: port, console: console}
}

func (s *Service) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("port", s.port.Name()).Msg("console started")

	s.console.Begin()
	return s.console.Run(ctx, s.port)
}

func (s *Service) Shutdown(ctx context.Context) error {
	// Start may still be blocked in Read: a tty read on stdin is not woken by
	// closing it. Writing is independent of the pending read, and the port
	// itself is closed afterwards by its own cleanup service.
	_, err := s.port.Write([]byte("\r\n"))
	return err
}

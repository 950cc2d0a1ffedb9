package serial

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"
	"syscall"
	"time"

	"github.com/sandevgo/serialsh/internal/config"
	"github.com/sandevgo/serialsh/pkg/log"
	"github.com/sandevgo/serialsh/pkg/retry"
	"go.bug.st/serial"
	"golang.org/x/term"
)

// ctrlC ends a stdio session: raw mode stops the terminal from turning it
// into SIGINT.
const ctrlC = 0x03

// Port is the byte stream the console talks to. It is either a serial device,
// opened at the configured speed with 8N1 framing, or the process's stdio,
// which is switched to raw mode while open.
type Port struct {
	name string
	in   io.Reader
	out  io.Writer

	closeOnce sync.Once
	closer    func() error
	restore   func() error

	interruptible bool
}

// Open opens the port selected by cfg.Transport.
func Open(ctx context.Context, cfg *config.AppConfig) (*Port, error) {
	switch cfg.Transport {
	case config.TransportSerial:
		return OpenDevice(ctx, cfg.Device, cfg.Baud, cfg.OpenRetries)
	case config.TransportStdio:
		return OpenStdio()
	default:
		return nil, &config.TransportError{Transport: cfg.Transport}
	}
}

// OpenDevice opens a serial device, retrying while it is missing or busy, as
// happens right after a USB adapter is plugged in.
func OpenDevice(ctx context.Context, path string, baud, retries int) (*Port, error) {
	logger := log.FromCtx(ctx)

	rcfg := retry.NewDefaultConfig()
	rcfg.MaxRetries = retries
	rcfg.MaxDelay = 5 * time.Second
	rcfg.ShouldRetry = isTransientOpenError
	rcfg.OnRetry = func(attempt int, delay time.Duration, err error) {
		logger.Warn().Err(err).Int("attempt", attempt).Dur("delay", delay).Str("device", path).Msg("device not ready, retrying")
	}

	mode := deviceMode(baud)

	var sp serial.Port
	err := retry.NewRetrier(rcfg).Do(ctx, func() error {
		var err error
		sp, err = serial.Open(path, mode)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	logger.Info().Str("device", path).Int("baud", mode.BaudRate).Msg("serial port opened")
	return &Port{name: path, in: sp, out: sp, closer: sp.Close}, nil
}

func deviceMode(baud int) *serial.Mode {
	return &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
}

// OpenStdio binds the port to stdin and stdout.
func OpenStdio() (*Port, error) {
	p := &Port{
		name:   "stdio",
		in:     os.Stdin,
		out:    os.Stdout,
		closer: os.Stdin.Close,
	}
	if err := p.makeRaw(int(os.Stdin.Fd())); err != nil {
		return nil, err
	}
	p.interruptible = p.restore != nil
	return p, nil
}

// NewPort wraps an arbitrary stream, for pipes and tests.
func NewPort(name string, in io.Reader, out io.Writer) *Port {
	p := &Port{name: name, in: in, out: out}
	if c, ok := in.(io.Closer); ok {
		p.closer = c.Close
	}
	return p
}

func (p *Port) makeRaw(fd int) error {
	if !term.IsTerminal(fd) {
		return nil
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to switch %s to raw mode: %w", p.name, err)
	}
	p.restore = func() error { return term.Restore(fd, state) }
	return nil
}

func (p *Port) Name() string {
	return p.name
}

func (p *Port) Read(b []byte) (int, error) {
	n, err := p.in.Read(b)
	if p.interruptible {
		if i := bytes.IndexByte(b[:n], ctrlC); i >= 0 {
			return i, io.EOF
		}
	}
	return n, err
}

func (p *Port) Write(b []byte) (int, error) {
	return p.out.Write(b)
}

// Close restores the terminal mode and closes the underlying stream. It is
// safe to call more than once.
func (p *Port) Close() error {
	var errs []error
	p.closeOnce.Do(func() {
		if p.restore != nil {
			errs = append(errs, p.restore())
		}
		if p.closer != nil {
			errs = append(errs, p.closer())
		}
	})
	return errors.Join(errs...)
}

func isTransientOpenError(err error) bool {
	var perr *serial.PortError
	if errors.As(err, &perr) {
		return perr.Code() == serial.PortBusy || perr.Code() == serial.PortNotFound
	}
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.EBUSY)
}

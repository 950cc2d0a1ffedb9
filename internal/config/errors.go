package config

import (
	"errors"
	"fmt"
)

var (
	errDeviceRequired = errors.New("SERIALSH_DEVICE is required for the serial transport")
	errInvalidBaud    = errors.New("SERIALSH_BAUD must be positive")
)

type TransportError struct {
	Transport string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("unknown transport %q (want %s, %s or %s)",
		e.Transport, TransportSerial, TransportStdio, TransportReadline)
}

package libxc

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidName is returned when a functional name is not in the libxc table.
	ErrInvalidName = errors.New("libxc: invalid functional name")

	// ErrInvalidID is returned when a functional ID is not among the available functionals.
	ErrInvalidID = errors.New("libxc: invalid functional ID")

	// ErrInvalidPolarization is returned for a Polarization other than Unpolarized or Polarized.
	ErrInvalidPolarization = errors.New("libxc: invalid polarization")
)

// InitError reports a nonzero status from native functional initialization.
type InitError struct {
	ID           int32
	Polarization Polarization
	Code         int32
}

func (e *InitError) Error() string {
	return fmt.Sprintf("libxc: failed to initialize functional %d (%s): error code %d", e.ID, e.Polarization, e.Code)
}

// SPDX-License-Identifier: MIT
// Package: qroute/provider
//
// errors.go - sentinel errors and the ProviderError type.

package provider

import (
	"errors"
	"fmt"
)

var (
	// ErrProvider classifies every *ProviderError.
	ErrProvider = errors.New("provider: error")

	// ErrUnknownDevice indicates that no snapshot exists for the device name.
	ErrUnknownDevice = errors.New("provider: unknown device")

	// ErrUnauthenticated indicates a device that requires a token when none is configured.
	ErrUnauthenticated = errors.New("provider: unauthenticated")

	// ErrMalformedSnapshot indicates a snapshot that cannot be parsed or fails validation.
	ErrMalformedSnapshot = errors.New("provider: malformed snapshot")

	// ErrUnknownParameter indicates that no two-qubit gate carries the requested parameter.
	ErrUnknownParameter = errors.New("provider: unknown gate parameter")
)

// Provider operations reported in ProviderError.Op.
const (
	OpFetch    = "fetch"
	OpAuth     = "auth"
	OpRead     = "read"
	OpDecode   = "decode"
	OpValidate = "validate"
)

// ProviderError reports a failed retrieval for Device during Op.
type ProviderError struct {
	Device string
	Op     string
	Err    error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider: %s %q: %v", e.Op, e.Device, e.Err)
}

// Unwrap exposes the cause.
func (e *ProviderError) Unwrap() error { return e.Err }

// Is reports true for ErrProvider.
func (e *ProviderError) Is(target error) bool { return target == ErrProvider }

func newProviderError(device, op string, err error) error {
	return &ProviderError{Device: device, Op: op, Err: err}
}

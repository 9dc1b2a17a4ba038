// Package derrors provides custom error types for hideezctl.
// These error types let callers distinguish user-input mistakes from
// device and transport failures when deciding what to print.
package derrors

import (
	"fmt"
	"strings"
)

// HideezError is the base interface for all hideezctl errors
type HideezError interface {
	error
	// Code returns a unique error code for programmatic error handling
	Code() string
}

// baseError provides common functionality for all hideezctl errors
type baseError struct {
	code    string
	message string
	cause   error
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Code() string {
	return e.code
}

func (e *baseError) Unwrap() error {
	return e.cause
}

// DeviceNotFoundError reports that no device could be reached at the
// requested path, or that no device is connected at all. The root cause
// (bad path, dead bridge, unplugged device) is deliberately collapsed.
type DeviceNotFoundError struct {
	baseError
	Path string
}

// NewDeviceNotFoundError creates a new device-not-found error
func NewDeviceNotFoundError(path string, cause error) *DeviceNotFoundError {
	msg := "no device found"
	if path != "" {
		msg = fmt.Sprintf("no device found at %s", path)
	}
	return &DeviceNotFoundError{
		baseError: baseError{
			code:    "DEVICE_NOT_FOUND",
			message: msg,
			cause:   cause,
		},
		Path: path,
	}
}

// CoinLookupError reports an unrecognized coin identifier. Known lists
// the supported coin names for the diagnostic.
type CoinLookupError struct {
	baseError
	Coin  string
	Known []string
}

// NewCoinLookupError creates a new coin lookup error
func NewCoinLookupError(coin string, known []string) *CoinLookupError {
	return &CoinLookupError{
		baseError: baseError{
			code:    "COIN_UNKNOWN",
			message: fmt.Sprintf("unknown coin %q, supported coins: %s", coin, strings.Join(known, ", ")),
		},
		Coin:  coin,
		Known: known,
	}
}

// PathSyntaxError reports an unparseable BIP-32 derivation path
type PathSyntaxError struct {
	baseError
	Path string
}

// NewPathSyntaxError creates a new path syntax error
func NewPathSyntaxError(path string, message string, cause error) *PathSyntaxError {
	return &PathSyntaxError{
		baseError: baseError{
			code:    "PATH_SYNTAX",
			message: message,
			cause:   cause,
		},
		Path: path,
	}
}

// PayloadError reports a binary argument that could not be decoded
type PayloadError struct {
	baseError
	Field string
}

// NewPayloadError creates a new payload error
func NewPayloadError(field string, message string, cause error) *PayloadError {
	return &PayloadError{
		baseError: baseError{
			code:    "PAYLOAD_ERROR",
			message: message,
			cause:   cause,
		},
		Field: field,
	}
}

// TransportError reports a failure on an established device connection
type TransportError struct {
	baseError
	Endpoint string
}

// NewTransportError creates a new transport error
func NewTransportError(endpoint string, message string, cause error) *TransportError {
	return &TransportError{
		baseError: baseError{
			code:    "TRANSPORT_ERROR",
			message: message,
			cause:   cause,
		},
		Endpoint: endpoint,
	}
}

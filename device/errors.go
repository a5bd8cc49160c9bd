package device

import "errors"

// Sentinel errors for device lookup and slot-name parsing.
var (
	// ErrUnknownDevice indicates the requested device ID has no registered Descriptor.
	ErrUnknownDevice = errors.New("device: unknown device id")
	// ErrMalformedSlotName indicates a string does not match the slot-name grammar.
	ErrMalformedSlotName = errors.New("device: malformed slot name")
)

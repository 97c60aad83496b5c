package shipment

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// Any valid status may follow any other: the shipping workflow deliberately
// imposes no transition graph, carriers report states out of order in
// practice. Status is a value object that validates enumeration membership
// and provides the symbolic names used for persistence and transport.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status assigned when a shipment is registered.
	Created

	// Processing indicates the shipment is being prepared at the warehouse.
	Processing

	// Dispatched indicates the shipment has been handed over to the carrier.
	Dispatched

	// InTransit indicates the carrier is moving the shipment to its destination.
	InTransit

	// WaitingCustomer indicates the shipment awaits customer pickup or availability.
	WaitingCustomer

	// Delivered indicates the shipment has reached the receiver.
	Delivered

	// Cancelled indicates the shipment was cancelled.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "Unknown",
		Created:         "Created",
		Processing:      "Processing",
		Dispatched:      "Dispatched",
		InTransit:       "InTransit",
		WaitingCustomer: "WaitingCustomer",
		Delivered:       "Delivered",
		Cancelled:       "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:         "Created",
		Processing:      "Processing",
		Dispatched:      "Dispatched",
		InTransit:       "InTransit",
		WaitingCustomer: "WaitingCustomer",
		Delivered:       "Delivered",
		Cancelled:       "Cancelled",
	}
}

// Validate checks if the Status value is a member of the enumeration.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the symbolic name of the status.
// The symbolic name, never the ordinal, is what crosses process boundaries:
// HTTP payloads and published events both carry it so the enumeration stays
// stable across versions.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a symbolic status name into a Status value.
// Parsing is exact: names are case-sensitive and anything outside the known
// set is rejected. Boundary code uses this to refuse unrecognized status
// values before they reach business logic.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status name", s),
	)
}

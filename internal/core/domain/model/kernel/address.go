package kernel

import (
	"errors"
	"fmt"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly initialized Address.
// Addresses must be created using the NewAddress constructor to ensure validity.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address represents a delivery destination with validated street, city, and zip code.
// Address is an immutable value object; all three components are required and non-empty.
// The zero value of Address is invalid and will fail validation - use NewAddress to create instances.
//
// Example:
//
//	addr, err := kernel.NewAddress("Amazing st. 5", "New York", "127675")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Deliver to: %s", addr) // Output: Deliver to: Amazing st. 5, New York 127675
type Address struct { //nolint:recvcheck //using for validation
	street string
	city   string
	zip    string

	guard guard.ConstructorGuard
}

// NewAddress creates a new Address from street, city, and zip components.
// Every component is required; a missing component yields a validation error
// naming the field with the client-facing message.
//
// Example:
//
//	addr, err := NewAddress("Amazing st. 5", "New York", "127675")
//	if err != nil {
//	    log.Fatal("Invalid address:", err)
//	}
func NewAddress(street, city, zip string) (Address, error) {
	addr := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addr.setStreet(street),
		addr.setCity(city),
		addr.setZip(zip),
	); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate checks if the Address was properly constructed using NewAddress.
// The zero value of Address is invalid and will fail this validation.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street component of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city component of the address.
func (a Address) City() string {
	return a.city
}

// Zip returns the zip code component of the address.
func (a Address) Zip() string {
	return a.zip
}

// String returns a human-readable single-line representation of the address.
// This method implements the fmt.Stringer interface.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s %s", a.street, a.city, a.zip)
}

// IsEqual compares two addresses component by component.
// Both addresses must be properly constructed for the comparison to succeed.
func (a Address) IsEqual(other Address) (bool, error) {
	if err := errors.Join(a.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return a == other, nil
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValidationError("Street", "Street must not be empty")
	}

	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValidationError("City", "City must not be empty")
	}

	a.city = city
	return nil
}

func (a *Address) setZip(zip string) error {
	if zip == "" {
		return errs.NewValidationError("Zip", "Zip code must not be empty")
	}

	a.zip = zip
	return nil
}

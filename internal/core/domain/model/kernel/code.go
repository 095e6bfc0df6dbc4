package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"procurement/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrCodeIsNotConstructed indicates that a Code was not initialized through one
// of the constructor functions. This error is returned when validating a
// zero-value Code.
var ErrCodeIsNotConstructed = errs.NewValueIsRequiredError("code must be created via NewCode or CodeFromString")

// codeLength is the length of generated identifiers.
const codeLength = 10

var codePattern = regexp.MustCompile(`^[A-Z0-9]+$`)

// Code is a value object representing a short uppercase alphanumeric identifier.
// It identifies vendors, purchase orders and performance snapshots. The zero
// value is invalid; instances must be created via NewCode (random generation)
// or CodeFromString (parsing caller-supplied identifiers).
//
// Code is immutable and safe for concurrent use.
//
// Example usage:
//
//	// Generate a fresh identifier
//	poNumber := kernel.NewCode()
//
//	// Parse a caller-supplied identifier
//	vendorCode, err := kernel.CodeFromString("V1X9K2QW00")
//	if err != nil {
//	    // handle error
//	}
type Code struct {
	value string
}

// NewCode generates a new random Code: the first ten characters of a random
// UUID with dashes stripped, upper-cased. Collisions are guarded against by
// the unique constraint in storage.
func NewCode() Code {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return Code{value: strings.ToUpper(raw[:codeLength])}
}

// CodeFromString parses a Code from its string representation.
// The value must be 1 to 10 uppercase alphanumeric characters.
// Returns an error if the string does not match the required format.
func CodeFromString(s string) (Code, error) {
	if s == "" {
		return Code{}, errs.NewValueIsRequiredError("code")
	}
	if len(s) > codeLength {
		return Code{}, errs.NewValueIsInvalidErrorWithCause(
			"code",
			fmt.Errorf("%q is longer than %d characters", s, codeLength),
		)
	}
	if !codePattern.MatchString(s) {
		return Code{}, errs.NewValueIsInvalidErrorWithCause(
			"code",
			fmt.Errorf("%q is not uppercase alphanumeric", s),
		)
	}
	return Code{value: s}, nil
}

// String returns the identifier as stored, e.g. "V1X9K2QW00".
func (c Code) String() string {
	return c.value
}

// IsEqual compares two codes for equality.
func (c Code) IsEqual(other Code) bool {
	return c.value == other.value
}

// Validate checks that the Code was properly constructed.
// Returns ErrCodeIsNotConstructed for the zero value.
func (c Code) Validate() error {
	if c.value == "" {
		return ErrCodeIsNotConstructed
	}
	return nil
}

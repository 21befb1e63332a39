// Package invalid carries the single error kind used by the business core:
// a precondition violation tagged with a machine-readable reason code.
// Callers branch on ErrArgument via errors.Is, or on the Reason via ReasonOf,
// never on message text.
package invalid

import (
	"errors"
	"fmt"
)

// ErrArgument is the sentinel every precondition violation matches.
var ErrArgument = errors.New("invalid argument")

// Reason identifies which precondition failed.
type Reason string

const (
	ReasonPriceMissing        Reason = "price_missing"
	ReasonPriceOutOfRange     Reason = "price_out_of_range"
	ReasonUnknownProduct      Reason = "unknown_product"
	ReasonUnknownMenuGroup    Reason = "unknown_menu_group"
	ReasonEmptyComposition    Reason = "empty_composition"
	ReasonMissingMenu         Reason = "missing_menu"
	ReasonMissingName         Reason = "missing_name"
	ReasonMissingTable        Reason = "missing_table"
	ReasonUnknownTable        Reason = "unknown_table"
	ReasonTableHasActiveOrder Reason = "table_has_active_order"
	ReasonTableEmpty          Reason = "table_empty"
	ReasonNegativeGuests      Reason = "negative_guests"
)

// Error is an invalid-argument failure with its reason code.
type Error struct {
	Reason Reason
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("invalid argument: %s", e.Reason)
	}
	return fmt.Sprintf("invalid argument: %s: %s", e.Reason, e.Detail)
}

// Is makes every *Error match ErrArgument.
func (e *Error) Is(target error) bool {
	return target == ErrArgument
}

// New builds a tagged invalid-argument error.
func New(reason Reason, detail string) *Error {
	return &Error{Reason: reason, Detail: detail}
}

// Newf builds a tagged invalid-argument error with a formatted detail.
func Newf(reason Reason, format string, args ...any) *Error {
	return &Error{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

// ReasonOf extracts the reason code when err is an invalid-argument error.
func ReasonOf(err error) (Reason, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Reason, true
	}
	return "", false
}

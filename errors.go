package bifid

import "errors"

// ErrBadPeriod indicates a non-positive period length at construction.
var ErrBadPeriod = errors.New("bifid: period must be a positive integer")

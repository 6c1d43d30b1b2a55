// Package searching - shared sentinel errors.
package searching

import "errors"

// ErrRankRange is returned by QuickSelect when the requested order
// statistic lies outside [0, len(a)).
var ErrRankRange = errors.New("searching: rank out of range")

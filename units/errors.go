// SPDX-License-Identifier: MIT

package units

import "errors"

// ErrUnknownUnit is returned by Convert when the unit tag is not recognized
// for the requested Dimension.
var ErrUnknownUnit = errors.New("units: unknown unit tag")

// ErrUnknownDimension is returned by Convert for a Dimension outside the
// declared set.
var ErrUnknownDimension = errors.New("units: unknown dimension")

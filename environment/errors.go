package environment

import "errors"

// ErrAccess reports that a Resolver could not locate or read the data for an
// identifier. Resolver implementations wrap it with the identifier and the
// underlying cause; callers match it with errors.Is.
var ErrAccess = errors.New("environment: cannot access driver data")

// ErrNoResolver is returned, wrapped in ErrAccess, by Resolve when the
// Environment was built without a Resolver.
var ErrNoResolver = errors.New("environment: no driver resolver configured")

package events

import "errors"

// ErrUnknownKind is returned when parsing a status event kind that does not exist.
var ErrUnknownKind = errors.New("unknown status event")

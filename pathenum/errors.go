package pathenum

import "errors"

// ErrNoCandidatePath indicates enumeration produced an empty set: the
// source and destination are not connected within the length and bend
// bounds (or at all).
var ErrNoCandidatePath = errors.New("pathenum: no candidate path found")

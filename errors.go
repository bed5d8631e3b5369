package shpanseq

import "errors"

// ErrInvalidArgument is wrapped by errors reported for structurally invalid
// construction parameters (e.g. a non-positive Range step or Batch size).
// Constructors do not fail directly; they return an error Seq that fails on
// first use with an error matching this one via errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

package bitstream

import "github.com/zeebo/errs"

// Error is the class of errors returned by this package.
var Error = errs.Class("bitstream")

// EndOfStream is returned when fewer bits remain than were asked for.
var EndOfStream = errs.Class("end of stream")

// ErrInvalidWidth is returned for a field width the call cannot serve.
var ErrInvalidWidth = Error.New("invalid width")

package smallint

import "github.com/zeebo/errs"

// Error classes shared by all codecs.
var (
	// RangeError is a value (or a decoded value) that does not fit the
	// 64-bit domain of a codec, or a negative decode count.
	RangeError = errs.Class("range")

	// TruncatedError is input that ends inside a value.
	TruncatedError = errs.Class("truncated input")

	// OverRequestError is a decode request for more values than the input
	// holds.
	OverRequestError = errs.Class("over request")

	// MalformedError is a prefix or marker that no conforming encoder
	// produces.
	MalformedError = errs.Class("malformed prefix")
)

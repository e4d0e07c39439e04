package elias

import "github.com/zeebo/errs"

// Error is the class of invalid codec parameters.
var Error = errs.Class("elias")

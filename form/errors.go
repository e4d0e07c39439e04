package form

import "github.com/zeebo/errs"

// Error is the class of table construction errors.
var Error = errs.Class("form")

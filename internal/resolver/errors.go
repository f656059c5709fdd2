package resolver

import "errors"

// ErrInvalidEncoding is wrapped into a *models.FileAccessError when a layer
// is not valid text in the requested encoding.
var ErrInvalidEncoding = errors.New("content is not valid in the requested encoding")

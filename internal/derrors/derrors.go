// Package derrors attaches stack traces to errors returned from the CLI.
package derrors

import "github.com/k1LoW/errors"

// Wrap adds a stack trace to *errp when it holds an error.
func Wrap(errp *error) {
	if errp == nil || *errp == nil {
		return
	}
	*errp = errors.WithStack(*errp)
}

package report

import "errors"

// ErrNoSections is returned by Build when called with no sections to render.
var ErrNoSections = errors.New("report: no sections to render")

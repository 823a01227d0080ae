package tracker

import "errors"

// Domain-specific errors for the tracker package.
var (
	ErrNoTasks        = errors.New("no tasks to export")
	ErrMissingProject = errors.New("tracker project key is not configured")
)

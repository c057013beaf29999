package work

import "errors"

var (
	ErrWorkNotFound       = errors.New("work not found")
	ErrSubmissionNotFound = errors.New("submitted work not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrNotAssignee        = errors.New("work does not belong to this employee")
)

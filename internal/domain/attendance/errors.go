package attendance

import "errors"

var (
	ErrAlreadyCheckedIn = errors.New("attendance already marked for today")
	ErrRecordNotFound   = errors.New("attendance record not found")
)

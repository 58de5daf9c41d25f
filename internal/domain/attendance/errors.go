package attendance

import "errors"

// Attendance domain errors
var (
	// Transition conflicts, correctable by the caller
	ErrAlreadyCheckedIn  = errors.New("you have already checked in today")
	ErrNotCheckedIn      = errors.New("please check in first")
	ErrAlreadyCheckedOut = errors.New("you have already checked out today")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrStoreUnavailable   = errors.New("attendance store unavailable")
	ErrInvalidTimeOfDay   = errors.New("time of day must be HH:MM or HH:MM:SS")
)

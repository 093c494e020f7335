package app

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrUsernameExists    = errors.New("username already exists")
	ErrEmailExists       = errors.New("email already exists")
	ErrAccountExists     = errors.New("username or email already exists")
	ErrInvalidCredential = errors.New("invalid username or password")
	ErrForbidden         = errors.New("unauthorized access")
	ErrCourseNotFound    = errors.New("course not found")
	ErrSessionNotFound   = errors.New("study session not found")
	ErrInvalidCourse     = errors.New("invalid course")
	ErrInvalidDate       = errors.New("invalid date, expected YYYY-MM-DD")
)

package util

import "errors"

var (
	ErrValidation     = errors.New("invalid input")
	ErrCourseNotFound = errors.New("course not found")
)

package model

import "errors"

var (
	ErrUnauthenticated    = errors.New("Only teachers can register or unregister students. Please log in.")
	ErrInvalidCredentials = errors.New("Invalid username or password")
	ErrActivityNotFound   = errors.New("Activity not found")
	ErrAlreadyRegistered  = errors.New("Student is already signed up")
	ErrNotRegistered      = errors.New("Student is not signed up for this activity")
)

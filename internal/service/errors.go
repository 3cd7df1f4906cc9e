package service

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrNoDraft         = errors.New("no meeting draft")
	ErrNoDuration      = errors.New("meeting duration is not set")
	ErrInvalidDuration = errors.New("invalid meeting duration")
	ErrEmptyName       = errors.New("empty attendee name")
	ErrTooManyEvents   = errors.New("too many events in draft")
)

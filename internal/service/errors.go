package service

import (
	"errors"

	"github.com/Freeeeeet/thunders/internal/signup"
)

var (
	ErrGuestNotFound   = errors.New("guest application not found")
	ErrMemberNotFound  = errors.New("member not found")
	ErrInvalidColor    = errors.New("unknown group color")
	ErrInvalidVideoURL = errors.New("invalid youtube url")
	ErrInvalidCursor   = errors.New("invalid board cursor")
	// ErrMissingFields общий с формами сайта
	ErrMissingFields = signup.ErrMissingFields
)

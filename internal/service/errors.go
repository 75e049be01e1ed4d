package service

import "errors"

var (
	// ErrInvalidSelection is returned by Start for an unknown device or payment method id.
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrSessionAlreadyActive is returned by Start while a session is running.
	ErrSessionAlreadyActive = errors.New("session already active")
	// ErrInvalidAirQuality is returned for labels outside the known set.
	ErrInvalidAirQuality = errors.New("invalid air quality label")
	// ErrInvalidWindow is returned by Summary for a non-positive window.
	ErrInvalidWindow = errors.New("invalid window: must be positive")
)

package services

import (
	"errors"

	"orgpulse/internal/exporter"
)

// Chart service errors
var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrDatasetNotLoaded   = errors.New("dataset not loaded")
	ErrUnknownChart       = errors.New("unknown chart")
	ErrUnsupportedFormat  = exporter.ErrUnsupportedFormat
)

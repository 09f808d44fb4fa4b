package http

import (
	"net/http"

	apierrors "orgpulse/internal/errors"
	"orgpulse/internal/services"
)

// ProblemMappings maps service errors to problem responses.
func ProblemMappings() []apierrors.Mapping {
	return []apierrors.Mapping{
		{
			Target: services.ErrDepartmentNotFound,
			Status: http.StatusNotFound,
			Type:   apierrors.TypeDepartmentNotFound,
			Title:  "Department Not Found",
		},
		{
			Target: services.ErrDatasetNotLoaded,
			Status: http.StatusServiceUnavailable,
			Type:   apierrors.TypeDatasetNotLoaded,
			Title:  "Dataset Not Loaded",
		},
		{
			Target: services.ErrUnsupportedFormat,
			Status: http.StatusBadRequest,
			Type:   apierrors.TypeUnsupportedFormat,
			Title:  "Unsupported Export Format",
		},
		{
			Target: services.ErrUnknownChart,
			Status: http.StatusNotFound,
			Type:   apierrors.TypeUnknownChart,
			Title:  "Unknown Chart",
		},
	}
}

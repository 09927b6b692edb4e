// Package server provides the HTTP REST API for the skill-map agent.
package server

import (
	"errors"
	"net/http"

	"github.com/guptavanshika1510-jpg/skillmap/internal/schema"
	"github.com/guptavanshika1510-jpg/skillmap/internal/tabular"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
// Schema-mapping and decode failures are client errors; everything
// else is treated as internal.
func HTTPStatus(err error) int {
	var mappingErr *schema.MappingError
	if errors.As(err, &mappingErr) {
		return http.StatusBadRequest
	}
	var decodeErr *tabular.DecodeError
	if errors.As(err, &decodeErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

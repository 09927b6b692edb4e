package schema

import "fmt"

// MappingError indicates the uploaded table cannot be mapped onto the
// canonical fields required for ingestion. It is surfaced to API
// callers as a user-actionable 4xx failure.
type MappingError struct {
	Field   string
	Message string
}

func (e *MappingError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("schema mapping failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("schema mapping failed: %s", e.Message)
}

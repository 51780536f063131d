package pkg

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// UUIDVar parses the named mux path variable as a uuid.
func UUIDVar(r *http.Request, name string) (uuid.UUID, error) {
	raw := mux.Vars(r)[name]
	if raw == "" {
		return uuid.Nil, fmt.Errorf("%s empty", name)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s invalid: %w", name, err)
	}
	return id, nil
}

// DecodeJSONBody decodes the request body into v, rejecting unknown fields.
func DecodeJSONBody(r *http.Request, v any) error {
	if r.Body == nil {
		return fmt.Errorf("empty body")
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}

package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const maxJSONBody = 1 << 20

// DecodeJSONBody reads exactly one JSON object of at most 1MB into dest.
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dest any) error {

	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(dest); err != nil {
		var maxErr *http.MaxBytesError

		switch {
		case errors.Is(err, io.EOF):
			return errors.New("request body cannot be empty")
		case errors.As(err, &maxErr):
			return fmt.Errorf("request body must not exceed %d bytes", maxErr.Limit)
		default:
			return fmt.Errorf("invalid JSON format: %w", err)
		}
	}

	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}

	return nil
}

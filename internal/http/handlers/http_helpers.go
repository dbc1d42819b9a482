package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/farmatech/farmatech-client/internal/gateway"
)

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

// writeGatewayError maps a gateway failure onto an HTTP response following
// the error taxonomy: auth failures force re-login, transport failures are
// reported distinctly from backend errors, backend messages pass through
// verbatim, everything else gets a generic fallback.
func writeGatewayError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, gateway.ErrUnauthorized):
		http.Error(w, gateway.ErrUnauthorized.Error(), http.StatusUnauthorized)
	case errors.Is(err, gateway.ErrUnreachable):
		http.Error(w, gateway.ErrUnreachable.Error(), http.StatusBadGateway)
	default:
		var apiErr *gateway.APIError
		if errors.As(err, &apiErr) {
			http.Error(w, apiErr.Error(), apiErr.StatusCode)
			return
		}
		log.Printf("unexpected gateway error: %v", err)
		http.Error(w, "unexpected error", http.StatusInternalServerError)
	}
}

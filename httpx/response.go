// Package httpx handles the JSON response envelope of the seafood backend on
// the client side: successful bodies decode into typed values, failures turn
// into *APIError carrying whatever the backend put in its `detail` field.
package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (HTTP %d)", e.Detail, e.StatusCode)
}

// AsAPIError unwraps err into an *APIError if there is one in the chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// errorBody is the backend's error envelope. Older endpoints use `error`
// instead of `detail`; both are accepted.
type errorBody struct {
	Detail string `json:"detail"`
	Err    string `json:"error"`
}

// DecodeResponse consumes resp. On 2xx it decodes the body into out (out may
// be nil for endpoints that return nothing useful, e.g. DELETE). On any other
// status it returns an *APIError with the backend detail, falling back to
// "HTTP <status>" when the body is not the expected envelope.
func DecodeResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := fmt.Sprintf("HTTP %d", resp.StatusCode)
		var eb errorBody
		if body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)); err == nil {
			if json.Unmarshal(body, &eb) == nil {
				if eb.Detail != "" {
					detail = eb.Detail
				} else if eb.Err != "" {
					detail = eb.Err
				}
			}
		}
		return &APIError{StatusCode: resp.StatusCode, Detail: detail}
	}

	if out == nil {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

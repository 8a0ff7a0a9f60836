package jsonclient

import "fmt"

// EndpointError reports an endpoint that is not an absolute URL.
type EndpointError struct {
	Endpoint string
	Err      error
}

func (e *EndpointError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid endpoint %q: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("invalid endpoint %q: not an absolute URL", e.Endpoint)
}

func (e *EndpointError) Unwrap() error { return e.Err }

// EncodeError reports a POST body that could not be marshaled.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string { return fmt.Sprintf("encoding JSON payload: %v", e.Err) }
func (e *EncodeError) Unwrap() error { return e.Err }

// StatusError is returned for any status other than 200, redirects included.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP request failed with status %d: %s", e.StatusCode, e.Body)
}

// DecodeError is returned when a 200 response does not hold valid JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("invalid JSON response: %v", e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }

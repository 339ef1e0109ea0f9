package practicum

import "fmt"

// ConnectivityError reports a transport-level failure reaching the API
// (DNS, connection, timeout).
type ConnectivityError struct {
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("practicum api unreachable: %v", e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

// UpstreamStatusError reports a non-200 response from the API.
type UpstreamStatusError struct {
	Status int
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("practicum api returned status %d", e.Status)
}

// DecodeError reports a response body that is not valid JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode practicum response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

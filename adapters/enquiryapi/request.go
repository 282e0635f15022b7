package enquiryapi

import (
	"context"
	"encoding/json"
	"io"

	"github.com/manutdmohit/bhagirathi-enquiry/enquiry"
)

// DefaultMaxBodyBytes bounds request body buffering during decode.
const DefaultMaxBodyBytes int64 = 1 * 1024 * 1024

// Request provides a minimal request interface for transport adapters.
type Request interface {
	Context() context.Context
	Method() string
	Path() string
	Header(name string) string
	Body() io.ReadCloser
}

// Response provides a minimal response interface for transport adapters.
type Response interface {
	SetHeader(name, value string)
	WriteHeader(status int)
	Write(data []byte) (int, error)
	WriteJSON(status int, payload any) error
}

// decodeBody parses a JSON request body into out. Malformed and non-object
// bodies surface as internal errors: the original pipeline treats parse
// failures like any other generation failure, not like a missing field.
func decodeBody(body io.ReadCloser, maxBytes int64, out any) error {
	if body == nil {
		return enquiry.NewError(enquiry.KindInternal, "request body is required", nil)
	}
	defer body.Close()

	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}
	decoder := json.NewDecoder(io.LimitReader(body, maxBytes))
	if err := decoder.Decode(out); err != nil {
		return enquiry.NewError(enquiry.KindInternal, "invalid request payload", err)
	}
	return nil
}

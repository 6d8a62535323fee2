package datamaxiapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/c9s/requestgen"
	"github.com/pkg/errors"
)

// ErrNoDataFound is returned by paged endpoints when the data field is null or empty.
var ErrNoDataFound = errors.New("no data found")

type ParameterRequiredError struct {
	Params []string
}

func (e *ParameterRequiredError) Error() string {
	return fmt.Sprintf("%s is mandatory, but received empty", strings.Join(e.Params, ", "))
}

type AtLeastOneParameterRequiredError struct {
	Params []string
}

func (e *AtLeastOneParameterRequiredError) Error() string {
	if len(e.Params) == 0 {
		return "at least one parameter is required"
	}

	return fmt.Sprintf("at least one of %s is required", strings.Join(e.Params, ", "))
}

// ValueError reports a parameter that is set but out of its accepted range.
type ValueError struct {
	Field   string
	Message string
}

func (e *ValueError) Error() string {
	return e.Message
}

// ErrorCode is the vendor error code, the API sends it either as a string or a number.
type ErrorCode string

func (c *ErrorCode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		*c = ErrorCode(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}

	*c = ErrorCode(n.String())
	return nil
}

// ClientError is a 4xx reply. Code is empty when the body is not a JSON error envelope,
// in which case Message carries the raw body.
type ClientError struct {
	StatusCode int
	Code       ErrorCode
	Message    string
	Header     http.Header
	Data       json.RawMessage
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("datamaxi client error: status %d, code %q: %s", e.StatusCode, e.Code, e.Message)
}

// ServerError is a 5xx reply.
type ServerError struct {
	StatusCode int
	Body       string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("datamaxi server error: status %d: %s", e.StatusCode, e.Body)
}

type errorEnvelope struct {
	Code    ErrorCode       `json:"code"`
	Message string          `json:"msg"`
	Data    json.RawMessage `json:"data"`
}

func toAPIError(response *requestgen.Response) error {
	status := response.StatusCode
	switch {
	case status < 400:
		return nil

	case status < 500:
		clientErr := &ClientError{
			StatusCode: status,
			Header:     response.Header,
		}

		var envelope errorEnvelope
		if err := json.Unmarshal(response.Body, &envelope); err != nil {
			clientErr.Message = string(response.Body)
			return clientErr
		}

		clientErr.Code = envelope.Code
		clientErr.Message = envelope.Message
		if len(clientErr.Code) == 0 && len(clientErr.Message) == 0 {
			clientErr.Message = string(response.Body)
		}

		if len(envelope.Data) > 0 && !bytes.Equal(envelope.Data, []byte("null")) {
			clientErr.Data = envelope.Data
		}

		return clientErr

	}

	return &ServerError{
		StatusCode: status,
		Body:       string(response.Body),
	}
}

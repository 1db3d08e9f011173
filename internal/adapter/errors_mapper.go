package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusTooManyRequests:     ErrRateLimited,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrUnavailable,
}

// mapHTTPError converts a non-2xx response into a wrapped sentinel error.
// It returns nil for 2xx responses.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	msg := errorMessage(resp.Body())
	if sentinel, ok := statusErrors[status]; ok {
		return fmt.Errorf("%w: %s", sentinel, msg)
	}

	if msg == "" {
		msg = http.StatusText(status)
	}
	return fmt.Errorf("%w: http %d: %s", ErrRequestFailed, status, msg)
}

// errorMessage extracts the messages of a record API error body,
// {"errors":[{"message":"..."}]} or {"errors":["..."]}, and falls back to the
// raw body.
func errorMessage(body []byte) string {
	errs := gjson.GetBytes(body, "errors")
	if !gjson.ValidBytes(body) || !errs.IsArray() {
		return strings.TrimSpace(string(body))
	}

	var msgs []string
	for _, item := range errs.Array() {
		if item.IsObject() {
			item = item.Get("message")
		}
		if m := strings.TrimSpace(item.String()); m != "" {
			msgs = append(msgs, m)
		}
	}
	return strings.Join(msgs, "; ")
}

package socialuni

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"

	"resty.dev/v3"
)

// Kind is the semantic outcome of a failed request. It is assigned once,
// at the client boundary; callers branch on it and never on status codes.
type Kind string

const (
	KindAuthRequired       Kind = "auth_required"
	KindUnauthenticated    Kind = "unauthenticated"
	KindForbidden          Kind = "forbidden"
	KindNotFound           Kind = "not_found"
	KindConflict           Kind = "conflict"
	KindMethodNotSupported Kind = "method_not_supported"
	KindRateLimited        Kind = "rate_limited"
	KindOffline            Kind = "offline"
	KindNetworkError       Kind = "network_error"
	KindServerError        Kind = "server_error"
)

// APIError is the single structured error this package produces.
type APIError struct {
	Kind    Kind
	Status  int
	Message string
	Payload json.RawMessage
	Path    string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s (%d) %s: %s", e.Kind, e.Status, e.Path, e.Message)
}

// ErrAuthRequired is returned when an action needs a session and there is
// none; no network call is made.
var ErrAuthRequired = &APIError{Kind: KindAuthRequired, Message: "authentication required"}

// KindOf extracts the classified kind from err, or "" when err is not an
// APIError.
func KindOf(err error) Kind {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}

// Some backend deployments answer an expired token with a 500 whose body
// carries this marker, so classification checks the body as well as the
// status.
const jwtExpiredMarker = "JWT expired"

func classify(path string, res *resty.Response, err error) *APIError {
	if err != nil {
		return &APIError{Kind: transportKind(err), Message: err.Error(), Path: path}
	}
	if res == nil {
		return &APIError{Kind: KindNetworkError, Message: "no response received", Path: path}
	}
	if !res.IsError() {
		return nil
	}

	body := res.Bytes()

	kind := statusKind(res.StatusCode(), path)
	if bytes.Contains(body, []byte(jwtExpiredMarker)) {
		kind = KindUnauthenticated
	}

	return &APIError{
		Kind:    kind,
		Status:  res.StatusCode(),
		Message: errorMessage(body, res.Status()),
		Payload: json.RawMessage(body),
		Path:    path,
	}
}

func statusKind(status int, path string) Kind {
	switch status {
	case 401:
		return KindUnauthenticated
	case 403:
		return KindForbidden
	case 404:
		return KindNotFound
	case 405:
		return KindMethodNotSupported
	case 409:
		return KindConflict
	case 429:
		return KindRateLimited
	case 400:
		// The backend rejects a duplicate reaction with a plain 400.
		if strings.HasPrefix(path, reactionsNamespace) {
			return KindConflict
		}
	}
	return KindServerError
}

func transportKind(err error) Kind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindNetworkError
	}

	dnsErr := &net.DNSError{}
	if errors.As(err, &dnsErr) {
		return KindOffline
	}
	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.EHOSTUNREACH) {
		return KindOffline
	}

	return KindNetworkError
}

func errorMessage(body []byte, status string) string {
	envelope := struct {
		Message string `json:"message"`
	}{}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	return status
}

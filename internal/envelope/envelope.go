package envelope

import "github.com/byunyourim/BC-Adapter/internal/apperr"

// Envelope is the JSON object published for every correlated request.
type Envelope map[string]any

// Success merges data under the request id.
func Success(requestID string, data map[string]any) Envelope {
	env := make(Envelope, len(data)+1)
	for k, v := range data {
		env[k] = v
	}
	env["requestId"] = requestID
	return env
}

// Failure renders err as {requestId, error, errorCode} plus extra context fields.
func Failure(requestID string, err error, extra map[string]any) Envelope {
	typed := apperr.From(err)
	env := make(Envelope, len(extra)+3)
	for k, v := range extra {
		env[k] = v
	}
	env["error"] = typed.Message
	env["errorCode"] = string(typed.Code)
	env["requestId"] = requestID
	return env
}

// RequestID returns the correlation id, or "" when absent.
func (e Envelope) RequestID() string {
	id, _ := e["requestId"].(string)
	return id
}

// Failed reports whether e is a failure envelope.
func (e Envelope) Failed() bool {
	_, ok := e["errorCode"]
	return ok
}

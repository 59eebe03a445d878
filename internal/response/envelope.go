// Package response defines the uniform envelope every endpoint returns.
package response

// Envelope wraps every response, success or failure, in the same shape:
// a human-readable message, a success flag and an optional payload.
// Data marshals to null when nothing was found (a soft miss).
type Envelope struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
	Data    any    `json:"data"`
}

// OK builds a success envelope around data. Pass nil data for a soft miss.
func OK(message string, data any) Envelope {
	return Envelope{Message: message, Success: true, Data: data}
}

// Fail builds a failure envelope. Data usually stays nil; validation
// failures attach their violation list.
func Fail(message string, data any) Envelope {
	return Envelope{Message: message, Success: false, Data: data}
}

package server

// RequestParseError is a malformed /multiply request. StatusCode is the
// HTTP status to answer with.
type RequestParseError struct {
	Message    string
	StatusCode int
}

func (e RequestParseError) Error() string {
	return e.Message
}

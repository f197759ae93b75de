package errors

type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

// New builds an Exception for messages only known at runtime, such as
// sanitized upstream generation failures.
func New(message string, statusCode int) *Exception {
	return &Exception{Message: message, StatusCode: statusCode}
}

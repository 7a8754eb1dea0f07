package pkg

// FieldError is one field-level validation failure. The UI renders Field and
// Message verbatim, so Field is a dotted path into the payload
// (e.g. "items[2].quantity").
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors collects failures in the order the fields were checked.
type FieldErrors []FieldError

// Add appends a failure, preserving check order.
func (e *FieldErrors) Add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// AppError is the error shape handlers translate domain errors into. Cause is
// kept for logging only and never serialized.
type AppError struct {
	Code       string
	Message    string
	Cause      error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func NewDomainError(code, message string, cause error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Cause: cause, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// HTTPError is the JSON body clients receive. Errors carries the ordered
// field-level validation failures when the request failed schema checks.
type HTTPError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Errors  FieldErrors `json:"errors,omitempty"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}

// ToValidationError attaches the field errors to the HTTP body verbatim.
func (e *AppError) ToValidationError(errs FieldErrors) HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Errors: errs}
}

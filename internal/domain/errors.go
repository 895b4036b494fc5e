package domain

// ParseErrorKind distinguishes the two terminal parse failures.
type ParseErrorKind string

const (
	// InvalidSyntax means the input is not well-formed JSON.
	InvalidSyntax ParseErrorKind = "invalid_syntax"
	// InvalidShape means the input parsed but is not a single JSON object.
	InvalidShape ParseErrorKind = "invalid_shape"
)

// ParseError is a terminal input failure. No validation is attempted when a
// scan fails to parse; the caller surfaces the error instead.
type ParseError struct {
	Kind    ParseErrorKind
	Message string
}

func (e *ParseError) Error() string { return e.Message }

// NewSyntaxError wraps the underlying decoder diagnostic.
func NewSyntaxError(detail string) *ParseError {
	return &ParseError{Kind: InvalidSyntax, Message: "invalid JSON: " + detail}
}

// NewShapeError reports a well-formed input that is not a keyed record.
func NewShapeError() *ParseError {
	return &ParseError{Kind: InvalidShape, Message: "input must be a single JSON object"}
}

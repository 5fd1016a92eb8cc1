package temperature

// ErrorKind identifies why a token could not be parsed.
type ErrorKind uint8

const (
	NotNumeric ErrorKind = iota
	ScaleUnknown
	Inconvertible
)

// String returns the fixed message associated with the kind.
func (k ErrorKind) String() string {
	switch k {
	case NotNumeric:
		return "not a numeric value"
	case ScaleUnknown:
		return "scale unknown"
	case Inconvertible:
		return "string is empty"
	}
	return "unknown error"
}

// ParseError is returned by [Parse] when a token is not a valid conversion
// request. It carries nothing but its kind.
type ParseError struct {
	kind ErrorKind
}

// Sentinel errors for use with [errors.Is].
var (
	ErrNotNumeric    = &ParseError{NotNumeric}
	ErrScaleUnknown  = &ParseError{ScaleUnknown}
	ErrInconvertible = &ParseError{Inconvertible}
)

func (e *ParseError) Error() string {
	return e.kind.String()
}

// Kind returns the kind of the error.
func (e *ParseError) Kind() ErrorKind {
	return e.kind
}

// Is reports whether target is a *ParseError of the same kind.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.kind == e.kind
}

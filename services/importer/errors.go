package importer

// Error code values surfaced to API clients.
const (
	CodeValidation   = "IMPORT_VALIDATION_ERROR"
	CodeSource       = "IMPORT_SOURCE_ERROR"
	CodeSourceFormat = "IMPORT_SOURCE_FORMAT"
	CodeDuplicate    = "IMPORT_DUPLICATE"
	CodeMapping      = "IMPORT_MAPPING_ERROR"
	CodeInternal     = "INTERNAL_ERROR"
)

// Error is the import failure taxonomy. Every failure leaving
// ImportItemFromURL is one of these, unexpected faults carry
// CodeInternal.
type Error struct {
	Code    string
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func newError(code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

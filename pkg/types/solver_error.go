package types

import "fmt"

// ErrorCode categorizes solver errors
type ErrorCode string

const (
	ErrCodeUnknown            ErrorCode = "unknown"
	ErrCodeValidation         ErrorCode = "validation"
	ErrCodeEngineInit         ErrorCode = "engine_init"
	ErrCodeSolveFailure       ErrorCode = "solve_failure"
	ErrCodeUnsupportedBackend ErrorCode = "unsupported_backend"
	ErrCodeCanceled           ErrorCode = "canceled"
)

// SolverError represents a standardized error from a solver backend or from
// the request handling around it.
type SolverError struct {
	Code        ErrorCode   // Categorized error code
	Message     string      // Human-readable message
	Backend     BackendType // Which backend generated this error, if any
	Operation   string      // What operation failed (e.g., "new_model", "solve")
	OriginalErr error       // Wrapped original error
}

// Error implements the error interface
func (e *SolverError) Error() string {
	if e.Backend != "" {
		return fmt.Sprintf("[%s] %s (code=%s)", e.Backend, e.Message, e.Code)
	}
	return fmt.Sprintf("%s (code=%s)", e.Message, e.Code)
}

// Unwrap returns the original error for errors.Is/As
func (e *SolverError) Unwrap() error {
	return e.OriginalErr
}

// IsClientError reports whether the error was caused by the request rather
// than the process or the engine.
func (e *SolverError) IsClientError() bool {
	return e.Code == ErrCodeValidation || e.Code == ErrCodeUnsupportedBackend
}

// WithOperation sets the operation field and returns the error for chaining
func (e *SolverError) WithOperation(operation string) *SolverError {
	e.Operation = operation
	return e
}

// WithBackend sets the backend field and returns the error for chaining
func (e *SolverError) WithBackend(backend BackendType) *SolverError {
	e.Backend = backend
	return e
}

// WithOriginalErr sets the original error field and returns the error for chaining
func (e *SolverError) WithOriginalErr(err error) *SolverError {
	e.OriginalErr = err
	return e
}

// NewSolverError creates a new SolverError
func NewSolverError(backend BackendType, code ErrorCode, message string) *SolverError {
	return &SolverError{
		Code:    code,
		Message: message,
		Backend: backend,
	}
}

// NewValidationError creates a SolverError for malformed request input.
// Validation errors are detected before any engine is invoked.
func NewValidationError(format string, args ...interface{}) *SolverError {
	return &SolverError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewEngineInitError creates a SolverError for a backend environment,
// license, or initialization failure.
func NewEngineInitError(backend BackendType, err error) *SolverError {
	return &SolverError{
		Code:        ErrCodeEngineInit,
		Message:     fmt.Sprintf("failed to initialize %s engine: %v", backend, err),
		Backend:     backend,
		OriginalErr: err,
	}
}

package domain

import (
	"fmt"
)

// Error codes for different failure scenarios
const (
	ErrConfiguration = "CONFIGURATION_ERROR"
	ErrParameter     = "PARAMETER_ERROR"
	ErrExport        = "EXPORT_ERROR"
)

// ConfigurationError represents a fatal registry or configuration defect,
// such as a weighted domain whose weights do not sum to 1.0. There is no
// retry path; generation must not start.
type ConfigurationError struct {
	Domain  string `json:"domain"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: domain %q: %s", ErrConfiguration, e.Domain, e.Message)
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(domain, message string) *ConfigurationError {
	return &ConfigurationError{Domain: domain, Message: message}
}

// ParameterError represents an invalid caller-supplied parameter, such as a
// non-positive record count or a negative cost variance.
type ParameterError struct {
	Param   string      `json:"param"`
	Message string      `json:"message"`
	Value   interface{} `json:"value"`
}

// Error implements the error interface
func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: parameter %q: %s (got %v)", ErrParameter, e.Param, e.Message, e.Value)
}

// NewParameterError creates a new ParameterError
func NewParameterError(param, message string, value interface{}) *ParameterError {
	return &ParameterError{Param: param, Message: message, Value: value}
}

// ExportError wraps a sink failure while persisting an output table. The
// error is surfaced to the caller; no retry is attempted internally.
type ExportError struct {
	Sink  string `json:"sink"`
	Table string `json:"table"`
	Err   error  `json:"-"`
}

// Error implements the error interface
func (e *ExportError) Error() string {
	return fmt.Sprintf("%s: sink %q, table %q: %v", ErrExport, e.Sink, e.Table, e.Err)
}

// Unwrap returns the underlying sink error
func (e *ExportError) Unwrap() error {
	return e.Err
}

// NewExportError creates a new ExportError
func NewExportError(sink, table string, err error) *ExportError {
	return &ExportError{Sink: sink, Table: table, Err: err}
}

// Package errors provides custom error types for the royaltyflow system.
// These errors enable programmatic error checking and carry enough context
// (available headers, offending file) for a caller to report to an end user.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the royaltyflow system.
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrColumnNotFound indicates a statement column could not be resolved
	ErrColumnNotFound = errors.New("column not found")

	// ErrInvalidContractData indicates a merged contract is unusable for calculation
	ErrInvalidContractData = errors.New("invalid contract data")

	// ErrEmptyStatement indicates a statement aggregate contained no titles
	ErrEmptyStatement = errors.New("empty statement")

	// ErrAPIKeyRequired indicates that an API key is required but not provided
	ErrAPIKeyRequired = errors.New("API key required")
)

// ColumnNotFoundError reports that the statement lacks a detectable (or
// explicitly named) column. It carries the normalized headers that were
// available so the caller can surface them for diagnosis.
type ColumnNotFoundError struct {
	Kind      string   // "title" or "payable"
	Column    string   // explicit override that was requested, if any
	Available []string // normalized headers present in the statement
}

// Error implements the error interface.
func (e *ColumnNotFoundError) Error() string {
	headers := strings.Join(e.Available, ", ")
	if e.Column != "" {
		return fmt.Sprintf("%s column %q not found in statement (available columns: %s)", e.Kind, e.Column, headers)
	}
	return fmt.Sprintf("could not auto-detect %s column (available columns: %s)", e.Kind, headers)
}

// Is implements errors.Is support.
func (e *ColumnNotFoundError) Is(target error) bool {
	return target == ErrColumnNotFound
}

// NewColumnNotFoundError creates a new ColumnNotFoundError.
func NewColumnNotFoundError(kind, column string, available []string) *ColumnNotFoundError {
	return &ColumnNotFoundError{Kind: kind, Column: column, Available: available}
}

// InvalidContractDataError reports that the merged contract record is missing
// the pieces a calculation run needs (works or royalty shares).
type InvalidContractDataError struct {
	Reason string
}

// Error implements the error interface.
func (e *InvalidContractDataError) Error() string {
	return fmt.Sprintf("invalid contract data: %s", e.Reason)
}

// Is implements errors.Is support.
func (e *InvalidContractDataError) Is(target error) bool {
	return target == ErrInvalidContractData
}

// NewInvalidContractDataError creates a new InvalidContractDataError.
func NewInvalidContractDataError(reason string) *InvalidContractDataError {
	return &InvalidContractDataError{Reason: reason}
}

// EmptyStatementError reports that ingestion produced no per-title totals.
type EmptyStatementError struct {
	Path string
}

// Error implements the error interface.
func (e *EmptyStatementError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("no songs found in royalty statement %s", e.Path)
	}
	return "no songs found in royalty statement"
}

// Is implements errors.Is support.
func (e *EmptyStatementError) Is(target error) bool {
	return target == ErrEmptyStatement
}

// NewEmptyStatementError creates a new EmptyStatementError.
func NewEmptyStatementError(path string) *EmptyStatementError {
	return &EmptyStatementError{Path: path}
}

// ParseError represents an error when parsing data formats.
type ParseError struct {
	Format  string // "csv", "yaml", "json"
	File    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError.
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

// IOError represents an error during I/O operations.
type IOError struct {
	Operation string // "read", "write", "create", "open", "close"
	Path      string
	Err       error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("IO error during %s: %v", e.Operation, e.Err)
}

// Unwrap implements errors.Unwrap.
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError.
func NewIOError(operation, path string, err error) *IOError {
	return &IOError{Operation: operation, Path: path, Err: err}
}

// ExtractionError represents a failure while extracting structured contract
// facts from a source document via the language-understanding service.
type ExtractionError struct {
	File    string
	Stage   string // "parties", "works", "royalty_shares", "summary"
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExtractionError) Error() string {
	if e.Stage != "" {
		return fmt.Sprintf("extraction error for %s (stage %s): %s", e.File, e.Stage, e.Message)
	}
	return fmt.Sprintf("extraction error for %s: %s", e.File, e.Message)
}

// Unwrap implements errors.Unwrap.
func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(file, stage, message string, err error) *ExtractionError {
	return &ExtractionError{File: file, Stage: stage, Message: message, Err: err}
}

// AuthenticationError represents a missing or rejected API credential.
type AuthenticationError struct {
	Service string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication error for %s: %s", e.Service, e.Message)
}

// Unwrap implements errors.Unwrap.
func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support.
func (e *AuthenticationError) Is(target error) bool {
	return target == ErrAPIKeyRequired
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsColumnNotFound checks if an error is a column resolution failure.
func IsColumnNotFound(err error) bool {
	return errors.Is(err, ErrColumnNotFound)
}

// IsInvalidContractData checks if an error is an invalid contract data error.
func IsInvalidContractData(err error) bool {
	return errors.Is(err, ErrInvalidContractData)
}

// IsEmptyStatement checks if an error is an empty statement error.
func IsEmptyStatement(err error) bool {
	return errors.Is(err, ErrEmptyStatement)
}

// WrapIO wraps an error as an IOError.
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError.
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// Package errors defines the coded errors reported by the faces-config model.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode classifies a model error. An ErrorCode is itself an error so
// callers can match with errors.Is(err, ErrIllegalChild).
type ErrorCode string

const (
	// ErrXMLParse indicates the document could not be parsed.
	ErrXMLParse ErrorCode = "xml-parse-error"
	// ErrNoRoot indicates the document has no root element.
	ErrNoRoot ErrorCode = "faces-no-root"
	// ErrUnexpectedRoot indicates the root element is not faces-config in a faces namespace.
	ErrUnexpectedRoot ErrorCode = "faces-unexpected-root"

	// ErrIllegalChild indicates a child is not declared under its parent kind.
	ErrIllegalChild ErrorCode = "faces-illegal-child"
	// ErrNotAllowedInVersion indicates an element does not exist in the document version.
	ErrNotAllowedInVersion ErrorCode = "faces-not-allowed-in-version"
	// ErrForeignComponent indicates a component belongs to another model.
	ErrForeignComponent ErrorCode = "faces-foreign-component"
	// ErrAlreadyAttached indicates a component already has a parent.
	ErrAlreadyAttached ErrorCode = "faces-already-attached"
	// ErrNotChild indicates a component is not a child of the receiver.
	ErrNotChild ErrorCode = "faces-not-child"

	// ErrUnknownAttribute indicates an attribute not declared for the kind.
	ErrUnknownAttribute ErrorCode = "faces-unknown-attribute"
	// ErrAttributeType indicates a value of the wrong type for an attribute.
	ErrAttributeType ErrorCode = "faces-attribute-type"

	// ErrTransaction indicates an unbalanced or nested transaction bracket.
	ErrTransaction ErrorCode = "faces-transaction"
	// ErrHistory indicates there is nothing to undo or redo.
	ErrHistory ErrorCode = "faces-history"

	// ErrForeignElement reports extension content unknown to the document version.
	ErrForeignElement ErrorCode = "faces-foreign-element"
)

// Error returns the code itself.
func (c ErrorCode) Error() string {
	return string(c)
}

// Error is a coded model error with an optional element path.
type Error struct {
	Code    ErrorCode
	Message string
	Path    string
}

// New builds an Error.
func New(code ErrorCode, msg, path string) *Error {
	return &Error{Code: code, Message: msg, Path: path}
}

// Newf formats a message and builds an Error.
func Newf(code ErrorCode, path, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...), path)
}

// Error formats the error as "[code] message at path".
func (e *Error) Error() string {
	if e == nil {
		return "error <nil>"
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))
	if e.Path != "" {
		b.WriteString(fmt.Sprintf(" at %s", e.Path))
	}
	return b.String()
}

// Is matches an ErrorCode target against the error code.
func (e *Error) Is(target error) bool {
	var code ErrorCode
	if errors.As(target, &code) {
		return e != nil && e.Code == code
	}
	return false
}

// CodeOf extracts the code of a model error anywhere in err's chain.
func CodeOf(err error) (ErrorCode, bool) {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.Code, true
	}
	var code ErrorCode
	if errors.As(err, &code) {
		return code, true
	}
	return "", false
}

// IssueList is an error that carries one or more findings.
type IssueList []Error //nolint:errname // mirrors the single Error type.

// Error returns a compact summary of the findings.
func (l IssueList) Error() string {
	switch len(l) {
	case 0:
		return "no issues"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", l[0].Error(), len(l)-1)
	}
}

// AsIssues extracts findings from an error returned by Check helpers.
func AsIssues(err error) ([]Error, bool) {
	if err == nil {
		return nil, false
	}
	var list IssueList
	if errors.As(err, &list) {
		return []Error(list), true
	}
	var listPtr *IssueList
	if errors.As(err, &listPtr) && listPtr != nil {
		return *listPtr, true
	}
	return nil, false
}

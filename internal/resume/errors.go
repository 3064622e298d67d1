package resume

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure the extraction pipeline can produce.
type ErrorKind int

const (
	// KindNone is returned by KindOf for nil or foreign errors.
	KindNone ErrorKind = iota
	UnsupportedFormat
	CorruptDocument
	SectionNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case UnsupportedFormat:
		return "unsupported_format"
	case CorruptDocument:
		return "corrupt_document"
	case SectionNotFound:
		return "section_not_found"
	default:
		return "none"
	}
}

var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrCorruptDocument   = errors.New("corrupt document")
	ErrSectionNotFound   = errors.New("skills section not found")
)

// Error carries the failure kind and the underlying cause, if any.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.sentinel().Error()
	}
	return fmt.Sprintf("%s: %v", e.sentinel(), e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is match the kind sentinels.
func (e *Error) Is(target error) bool {
	return target == e.sentinel()
}

func (e *Error) sentinel() error {
	switch e.Kind {
	case UnsupportedFormat:
		return ErrUnsupportedFormat
	case CorruptDocument:
		return ErrCorruptDocument
	case SectionNotFound:
		return ErrSectionNotFound
	}
	return errors.New("unknown failure")
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf reports which failure kind err belongs to.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	switch {
	case errors.Is(err, ErrUnsupportedFormat):
		return UnsupportedFormat
	case errors.Is(err, ErrCorruptDocument):
		return CorruptDocument
	case errors.Is(err, ErrSectionNotFound):
		return SectionNotFound
	}
	return KindNone
}

// Notice is the message shown to the person who uploaded the document.
func Notice(kind ErrorKind) string {
	switch kind {
	case UnsupportedFormat:
		return "Only PDF, DOCX, DOC, and TXT files are supported."
	case CorruptDocument:
		return "We could not read this file. Please upload it again or try another format."
	case SectionNotFound:
		return "Could not find a 'Skills' section. Add one to your resume or fill out your skills manually."
	}
	return ""
}

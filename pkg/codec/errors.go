package codec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/simwire/simwire-go/pkg/fieldtype"
)

// Codec errors. Field-level sentinels are shared with package fieldtype.
var (
	ErrBufferUnderrun       = fieldtype.ErrBufferUnderrun
	ErrValueOutOfRange      = fieldtype.ErrValueOutOfRange
	ErrMalformedString      = fieldtype.ErrMalformedString
	ErrTrailingBytes        = errors.New("codec: trailing bytes")
	ErrUnknownMessageNumber = errors.New("codec: unknown message number")
	ErrUnknownMessageName   = errors.New("codec: unknown message name")
	ErrBlockCountMismatch   = errors.New("codec: block count mismatch")
	ErrBlockCountOverflow   = errors.New("codec: block count overflow")
	ErrMissingField         = errors.New("codec: missing field")
	ErrMissingBlock         = errors.New("codec: missing block")
	ErrUnknownBlock         = errors.New("codec: unknown block")
	ErrUnknownField         = errors.New("codec: unknown field")
	ErrIndexOutOfRange      = errors.New("codec: index out of range")
)

// Kind classifies a codec error.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindBufferUnderrun
	KindTrailingBytes
	KindUnknownMessageNumber
	KindUnknownMessageName
	KindBlockCountMismatch
	KindBlockCountOverflow
	KindMissingField
	KindMissingBlock
	KindValueOutOfRange
	KindMalformedString
	KindUnknownBlock
	KindUnknownField
	KindIndexOutOfRange
)

var kindNames = [...]string{
	KindUnknown:              "Unknown",
	KindBufferUnderrun:       "BufferUnderrun",
	KindTrailingBytes:        "TrailingBytes",
	KindUnknownMessageNumber: "UnknownMessageNumber",
	KindUnknownMessageName:   "UnknownMessageName",
	KindBlockCountMismatch:   "BlockCountMismatch",
	KindBlockCountOverflow:   "BlockCountOverflow",
	KindMissingField:         "MissingField",
	KindMissingBlock:         "MissingBlock",
	KindValueOutOfRange:      "ValueOutOfRange",
	KindMalformedString:      "MalformedString",
	KindUnknownBlock:         "UnknownBlock",
	KindUnknownField:         "UnknownField",
	KindIndexOutOfRange:      "IndexOutOfRange",
}

var kindSentinels = [...]error{
	KindBufferUnderrun:       ErrBufferUnderrun,
	KindTrailingBytes:        ErrTrailingBytes,
	KindUnknownMessageNumber: ErrUnknownMessageNumber,
	KindUnknownMessageName:   ErrUnknownMessageName,
	KindBlockCountMismatch:   ErrBlockCountMismatch,
	KindBlockCountOverflow:   ErrBlockCountOverflow,
	KindMissingField:         ErrMissingField,
	KindMissingBlock:         ErrMissingBlock,
	KindValueOutOfRange:      ErrValueOutOfRange,
	KindMalformedString:      ErrMalformedString,
	KindUnknownBlock:         ErrUnknownBlock,
	KindUnknownField:         ErrUnknownField,
	KindIndexOutOfRange:      ErrIndexOutOfRange,
}

// String returns the kind name, e.g. "BlockCountMismatch".
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Sentinel returns the sentinel error matched by errors.Is for this kind,
// or nil for KindUnknown.
func (k Kind) Sentinel() error {
	if int(k) < len(kindSentinels) {
		return kindSentinels[k]
	}
	return nil
}

// Error is the error returned by every codec operation.
type Error struct {
	Kind Kind

	// Message is the template name, if it was resolved.
	Message string
	// Block is the block name, if any.
	Block string
	// Index is the block instance, or -1 when not applicable.
	Index int
	// Field is the field name, if any.
	Field string

	// Detail is a human-readable description of the failure.
	Detail string
	// Err is the underlying cause, if any.
	Err error
}

func newError(kind Kind, detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{Kind: kind, Index: -1, Detail: detail}
}

// Error implements the error interface. The form is
// "codec: Message.Block[i].Field: kind: detail: cause".
func (e *Error) Error() string {
	head := "error"
	cause := e.Err
	if s := e.Kind.Sentinel(); s != nil {
		head = strings.TrimPrefix(s.Error(), "codec: ")
		if cause != nil && errors.Is(cause, s) {
			head, cause = cause.Error(), nil
		}
	}

	var b strings.Builder
	b.WriteString("codec: ")
	if loc := e.location(); loc != "" {
		b.WriteString(loc)
		b.WriteString(": ")
	}
	b.WriteString(head)
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if cause != nil {
		b.WriteString(": ")
		b.WriteString(cause.Error())
	}
	return b.String()
}

// location renders "Message.Block[i].Field", omitting unknown parts.
func (e *Error) location() string {
	var parts []string
	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	if e.Block != "" {
		blk := e.Block
		if e.Index >= 0 {
			blk = fmt.Sprintf("%s[%d]", blk, e.Index)
		}
		parts = append(parts, blk)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	return strings.Join(parts, ".")
}

// Unwrap returns the kind sentinel and the cause so that errors.Is matches
// either.
func (e *Error) Unwrap() []error {
	var errs []error
	if s := e.Kind.Sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// KindOf returns the Kind of a codec error, or KindUnknown if err is not
// one.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindUnknown
}

// fieldKind classifies an error returned by package fieldtype.
func fieldKind(err error) Kind {
	switch {
	case errors.Is(err, fieldtype.ErrBufferUnderrun):
		return KindBufferUnderrun
	case errors.Is(err, fieldtype.ErrMalformedString):
		return KindMalformedString
	default:
		return KindValueOutOfRange
	}
}

// withMessage records the template name on a codec error.
func withMessage(err error, name string) error {
	var ce *Error
	if errors.As(err, &ce) && ce.Message == "" {
		ce.Message = name
	}
	return err
}

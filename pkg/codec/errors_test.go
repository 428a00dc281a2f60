package codec

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/simwire/simwire-go/pkg/fieldtype"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "BufferUnderrun", KindBufferUnderrun.String())
	assert.Equal(t, "IndexOutOfRange", KindIndexOutOfRange.String())
	assert.Equal(t, "Kind(200)", Kind(200).String())
	assert.Nil(t, KindUnknown.Sentinel())
	assert.Nil(t, Kind(200).Sentinel())
}

func TestErrorMatchesKindAndCause(t *testing.T) {
	cause := fmt.Errorf("%w: U32 needs 4 bytes, 2 remain", fieldtype.ErrBufferUnderrun)
	err := &Error{Kind: KindBufferUnderrun, Message: "TestMessage", Block: "TestBlock1", Index: 0, Field: "Test1", Err: cause}

	assert.True(t, errors.Is(err, ErrBufferUnderrun))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrTrailingBytes))
	assert.Equal(t, "codec: TestMessage.TestBlock1[0].Test1: buffer underrun: U32 needs 4 bytes, 2 remain", err.Error())
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{
			&Error{Kind: KindTrailingBytes, Message: "TestMessage", Index: -1, Detail: "1 bytes after offset 56"},
			"codec: TestMessage: trailing bytes: 1 bytes after offset 56",
		},
		{
			&Error{Kind: KindUnknownMessageName, Index: -1, Detail: `"Nope"`},
			`codec: unknown message name: "Nope"`,
		},
		{
			&Error{Kind: KindMissingBlock, Message: "ChatFromViewer", Block: "ChatData", Index: -1},
			"codec: ChatFromViewer.ChatData: missing block",
		},
		{
			&Error{Kind: KindUnknown, Index: -1, Err: errors.New("boom")},
			"codec: error: boom",
		},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
	}
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("reading packet: %w", &Error{Kind: KindMissingField, Index: -1})
	assert.Equal(t, KindMissingField, KindOf(wrapped))
	assert.True(t, errors.Is(wrapped, ErrMissingField))
	assert.Equal(t, KindUnknown, KindOf(errors.New("other")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestFieldKind(t *testing.T) {
	assert.Equal(t, KindBufferUnderrun, fieldKind(fmt.Errorf("x: %w", fieldtype.ErrBufferUnderrun)))
	assert.Equal(t, KindMalformedString, fieldKind(fmt.Errorf("x: %w", fieldtype.ErrMalformedString)))
	assert.Equal(t, KindValueOutOfRange, fieldKind(fmt.Errorf("x: %w", fieldtype.ErrValueOutOfRange)))
}

package diag_test

import (
	"bytes"
	"testing"

	"github.com/mna/slang/lang/diag"
	"github.com/mna/slang/lang/interp"
	"github.com/mna/slang/lang/token"
	"github.com/stretchr/testify/assert"
)

func TestErrorLatchesHadError(t *testing.T) {
	var buf bytes.Buffer
	sink := diag.New(&buf)
	assert.False(t, sink.HadError())

	sink.Error(3, "bad thing")
	assert.True(t, sink.HadError())
	assert.Equal(t, "[line 3] Error : bad thing\n", buf.String())
}

func TestErrorAtEOF(t *testing.T) {
	var buf bytes.Buffer
	sink := diag.New(&buf)
	sink.ErrorAt(token.Token{Kind: token.EOF, Line: 5}, "Expect expression.")
	assert.Equal(t, "[line 5] Error at end: Expect expression.\n", buf.String())
}

func TestErrorAtToken(t *testing.T) {
	var buf bytes.Buffer
	sink := diag.New(&buf)
	sink.ErrorAt(token.Token{Kind: token.IDENTIFIER, Lexeme: "x", Line: 2}, "bad.")
	assert.Equal(t, "[line 2] Error at 'x': bad.\n", buf.String())
}

func TestRuntimeErrorLatchesHadRuntimeError(t *testing.T) {
	var buf bytes.Buffer
	sink := diag.New(&buf)
	assert.False(t, sink.HadRuntimeError())

	sink.RuntimeError(&interp.RuntimeError{Token: token.Token{Line: 7}, Message: "Undefined variable 'x'."})
	assert.True(t, sink.HadRuntimeError())
	assert.Equal(t, "Undefined variable 'x'.\n[line 7]\n", buf.String())
}

func TestClearStaticErrorResetsOnlyStaticLatch(t *testing.T) {
	var buf bytes.Buffer
	sink := diag.New(&buf)
	sink.Error(1, "x")
	sink.RuntimeError(&interp.RuntimeError{Token: token.Token{Line: 1}, Message: "y"})

	sink.ClearStaticError()
	assert.False(t, sink.HadError())
	assert.True(t, sink.HadRuntimeError())
}

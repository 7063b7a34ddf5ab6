// Released under an MIT license. See LICENSE.

package reader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/jsi/internal/common/fault"
	"github.com/michaelmacinnis/jsi/internal/reader"
)

func TestScanContinuation(t *testing.T) {
	r := reader.New("repl")

	p, _, err := r.Scan("function f() {")
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.True(t, r.Pending())

	p, src, err := r.Scan("  return 1 }")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "function f() {\n  return 1 }", src)
	assert.False(t, r.Pending())
}

func TestScanError(t *testing.T) {
	r := reader.New("repl")

	_, _, err := r.Scan("1 +* 2")
	require.Error(t, err)
	assert.True(t, fault.Is(err, fault.Syntax))
	assert.False(t, r.Pending())

	var f *fault.T
	require.ErrorAs(t, err, &f)
	assert.Contains(t, f.Where, "repl:1:")
}

func TestReset(t *testing.T) {
	r := reader.New("repl")

	_, _, _ = r.Scan("[1,")
	assert.True(t, r.Pending())

	r.Reset()
	assert.False(t, r.Pending())
}

func TestParse(t *testing.T) {
	p, err := reader.Parse("file.js", "var x = 1; x")
	require.NoError(t, err)
	assert.Len(t, p.Body, 2)

	_, err = reader.Parse("file.js", "return 1")
	assert.True(t, fault.Is(err, fault.Syntax))
}

func TestParseFunction(t *testing.T) {
	f, err := reader.ParseFunction("a, b", "return a + b")
	require.NoError(t, err)
	assert.Len(t, f.ParameterList.List, 2)

	_, err = reader.ParseFunction("a b", "return a")
	assert.True(t, fault.Is(err, fault.Syntax))
}

package hufftree

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestDecode_Scenarios(t *testing.T) {
	type testRow struct {
		name   string
		input  string
		output string
	}

	testData := [...]testRow{
		{name: "empty", input: "0", output: ""},
		{name: "single-symbol", input: "4La", output: "aaaa"},
		{name: "aab", input: "3ILbLa\xc0", output: "aab"},
		{name: "padding", input: "2ILaLb\x40", output: "ab"},
		{name: "tie-break", input: "7IL\x02IL\x00L\x01\xaf\x00", output: "\x00\x00\x01\x01\x02\x02\x02"},
		{name: "leading-whitespace", input: " \n3ILbLa\xc0", output: "aab"},
		{name: "digit-leaf", input: "2L7", output: "77"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			actual, err := DecodeBytes([]byte(row.input))
			require.NoError(t, err)
			require.Equal(t, row.output, string(actual))
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	type testRow struct {
		name  string
		input string
		cause error
	}

	testData := [...]testRow{
		{name: "no-input", input: "", cause: ErrMissingCount},
		{name: "no-count", input: "ILaLb", cause: ErrMissingCount},
		{name: "bad-tag", input: "3X", cause: ErrMalformedTree},
		{name: "bad-nested-tag", input: "3ILaQ", cause: ErrMalformedTree},
		{name: "too-deep", input: "1" + strings.Repeat("I", 300), cause: ErrMalformedTree},
		{name: "tree-eof", input: "3IL", cause: io.ErrUnexpectedEOF},
		{name: "count-without-tree", input: "3", cause: io.ErrUnexpectedEOF},
		{name: "no-payload", input: "3ILbLa", cause: ErrTruncated},
		{name: "short-payload", input: "9ILbLa\xc0", cause: ErrTruncated},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := DecodeBytes([]byte(row.input))
			require.Error(t, err)
			require.Equal(t, row.cause, errors.Cause(err))
		})
	}
}

func TestDecoder_LazyRead(t *testing.T) {
	encoded, err := EncodeBytes([]byte("aab"))
	require.NoError(t, err)

	trailer := []byte("trailing")
	r := bytes.NewReader(append(append([]byte(nil), encoded...), trailer...))

	var d Decoder
	require.NoError(t, d.Init(r))
	require.Equal(t, uint64(3), d.Count())
	require.Equal(t, len(trailer)+1, r.Len())

	var out bytes.Buffer
	n, err := d.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(3), n)
	require.Equal(t, "aab", out.String())
	require.Equal(t, len(trailer), r.Len())
}

func TestDecoder_NonScanner(t *testing.T) {
	encoded, err := EncodeBytes([]byte("mississippi"))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, Decode(&out, io.MultiReader(bytes.NewReader(encoded))))
	require.Equal(t, "mississippi", out.String())
}

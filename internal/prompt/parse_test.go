package prompt

import (
	"bufio"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int32
		reason ValidationReason
	}{
		{name: "positive", input: "42", want: 42},
		{name: "negative", input: "-7", want: -7},
		{name: "explicit plus", input: "+13", want: 13},
		{name: "zero", input: "0", want: 0},
		{name: "leading zeros", input: "0007", want: 7},
		{name: "max int32", input: "2147483647", want: math.MaxInt32},
		{name: "min int32", input: "-2147483648", want: math.MinInt32},
		{name: "empty", input: "", reason: ReasonEmpty},
		{name: "letters", input: "abc", reason: ReasonSyntax},
		{name: "trailing garbage", input: "12abc", reason: ReasonSyntax},
		{name: "sign only", input: "-", reason: ReasonSyntax},
		{name: "double sign", input: "--1", reason: ReasonSyntax},
		{name: "inner space", input: "1 2", reason: ReasonSyntax},
		{name: "untrimmed", input: " 1", reason: ReasonSyntax},
		{name: "decimal", input: "1.5", reason: ReasonSyntax},
		{name: "underscore", input: "1_000", reason: ReasonSyntax},
		{name: "hex", input: "0x10", reason: ReasonSyntax},
		{name: "above max", input: "2147483648", reason: ReasonRange},
		{name: "below min", input: "-2147483649", reason: ReasonRange},
		{name: "huge", input: "99999999999999999999", reason: ReasonRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNumber(tt.input)
			if tt.reason == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}

			require.Error(t, err)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.reason, verr.Reason)
			assert.Equal(t, tt.input, verr.Input)
			assert.Zero(t, got)
		})
	}
}

func TestParseNumberRangeErrorUnwraps(t *testing.T) {
	_, err := ParseNumber("99999999999999999999")
	require.Error(t, err)
	assert.ErrorIs(t, err, strconv.ErrRange)
}

func TestParseNumberRoundTrip(t *testing.T) {
	values := []int32{math.MinInt32, math.MinInt32 + 1, -1000000, -1, 0, 1, 255, 65536, math.MaxInt32 - 1, math.MaxInt32}
	for i := int64(math.MinInt32); i <= math.MaxInt32; i += 104729 * 97 {
		values = append(values, int32(i))
	}

	for _, v := range values {
		text := strconv.FormatInt(int64(v), 10)
		got, err := ParseNumber(text)
		require.NoError(t, err, text)
		assert.Equal(t, v, got, text)

		padded := " \t" + text + " \r\n"
		got, err = ParseNumber(Trim(padded))
		require.NoError(t, err, padded)
		assert.Equal(t, v, got, padded)
	}
}

func TestTrimIdempotent(t *testing.T) {
	inputs := []string{"42\n", "  13  \n", "-7", "\t+5\r\n", "abc\n", "", " \n", " 19 "}
	for _, in := range inputs {
		once := Trim(in)
		assert.Equal(t, once, Trim(once), "input %q", in)

		n1, err1 := ParseNumber(once)
		n2, err2 := ParseNumber(Trim(once))
		assert.Equal(t, n1, n2, "input %q", in)
		assert.Equal(t, err1 == nil, err2 == nil, "input %q", in)
	}
}

func TestReadLine(t *testing.T) {
	t.Run("stops at newline", func(t *testing.T) {
		line, err := ReadLine(strings.NewReader("42\nsecond line\n"))
		require.NoError(t, err)
		assert.Equal(t, "42\n", line)
	})

	t.Run("keeps carriage return", func(t *testing.T) {
		line, err := ReadLine(strings.NewReader("42\r\n"))
		require.NoError(t, err)
		assert.Equal(t, "42\r\n", line)
	})

	t.Run("partial line at end of stream", func(t *testing.T) {
		line, err := ReadLine(strings.NewReader("-7"))
		require.NoError(t, err)
		assert.Equal(t, "-7", line)
	})

	t.Run("blank line is a line", func(t *testing.T) {
		line, err := ReadLine(strings.NewReader("\n"))
		require.NoError(t, err)
		assert.Equal(t, "\n", line)
	})

	t.Run("empty stream", func(t *testing.T) {
		_, err := ReadLine(strings.NewReader(""))
		assert.ErrorIs(t, err, ErrNoInput)
	})

	t.Run("invalid utf-8", func(t *testing.T) {
		_, err := ReadLine(strings.NewReader("4\xff2\n"))
		assert.ErrorIs(t, err, ErrInvalidEncoding)
	})

	t.Run("reader error", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := ReadLine(&failingReader{err: boom})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("reuses buffered reader", func(t *testing.T) {
		br := bufio.NewReader(strings.NewReader("1\n2\n"))
		first, err := ReadLine(br)
		require.NoError(t, err)
		second, err := ReadLine(br)
		require.NoError(t, err)
		assert.Equal(t, "1\n", first)
		assert.Equal(t, "2\n", second)
	})
}

type failingReader struct {
	data string
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.data != "" {
		n := copy(p, r.data)
		r.data = r.data[n:]
		return n, nil
	}
	if r.err == nil {
		return 0, io.EOF
	}
	return 0, r.err
}

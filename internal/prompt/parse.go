package prompt

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ReadLine performs one blocking read of a single line, terminator included.
//
// End of stream after a partial line yields that line. End of stream with
// nothing read is ErrNoInput, which callers treat as a read failure rather
// than as an empty entry.
func ReadLine(r io.Reader) (string, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	line, err := br.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			return "", ErrNoInput
		}
	}

	if !utf8.ValidString(line) {
		return "", ErrInvalidEncoding
	}

	return line, nil
}

// Trim strips surrounding whitespace, line terminators included.
func Trim(raw string) string {
	return strings.TrimSpace(raw)
}

// ParseNumber parses trimmed text as a base-10 int32. An optional leading
// sign is accepted; anything else besides digits is rejected.
func ParseNumber(text string) (int32, error) {
	if text == "" {
		return 0, &ValidationError{Input: text, Reason: ReasonEmpty}
	}

	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		reason := ReasonSyntax
		if errors.Is(err, strconv.ErrRange) {
			reason = ReasonRange
		}
		return 0, &ValidationError{Input: text, Reason: reason, Err: err}
	}

	return int32(n), nil
}

// Package prompt asks for a number on the console, reads one line and parses
// it as a base-10 int32.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Session holds the streams of one invocation.
type Session struct {
	// Input is read once, up to the first line terminator.
	Input io.Reader
	// Output receives the prompt line.
	Output   io.Writer
	Messages Messages
}

// Run writes the prompt, blocks on one line of input and parses it.
//
// A read failure is returned as a *ReadError and nothing is parsed. Text that
// is not a number is not an error: the returned Report has StatusInvalid.
func (s *Session) Run(ctx context.Context) (Report, error) {
	logger := zerolog.Ctx(ctx)
	msgs := s.Messages
	if msgs == (Messages{}) {
		msgs = English
	}

	if _, err := fmt.Fprintln(s.Output, msgs.Prompt); err != nil {
		return Report{}, fmt.Errorf("writing prompt: %w", err)
	}

	raw, err := ReadLine(s.Input)
	if err != nil {
		logger.Debug().Err(err).Msg("Console read failed")
		return Report{}, &ReadError{Message: msgs.ReadFailure, Err: err}
	}

	trimmed := Trim(raw)
	logger.Debug().
		Int("raw_bytes", len(raw)).
		Str("trimmed", trimmed).
		Msg("Read line")

	report := Report{
		Input:   raw,
		Trimmed: trimmed,
	}

	n, err := ParseNumber(trimmed)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			report.Reason = verr.Reason
		}
		logger.Debug().Err(err).Msg("Input is not a valid number")

		report.Status = StatusInvalid
		report.Message = msgs.Invalid
		return report, nil
	}

	logger.Debug().Int32("value", n).Msg("Parsed number")

	report.Status = StatusOK
	report.Value = &n
	report.Message = msgs.resultFor(n)
	return report, nil
}

// Run is a shorthand for a Session over in and out with the given messages.
func Run(ctx context.Context, in io.Reader, out io.Writer, msgs Messages) (Report, error) {
	s := &Session{Input: in, Output: out, Messages: msgs}
	return s.Run(ctx)
}

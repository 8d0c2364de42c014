package testhelper

import (
	"context"
	"os"
	"testing"

	"github.com/rs/zerolog"
)

// init disables logging for tests unless explicitly enabled
func init() {
	if testing.Testing() && os.Getenv("READNUM_TEST_LOG") == "" {
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}
}

// Context returns a context carrying a debug-level logger that writes through
// t.Log, so log lines only show up for failing or verbose tests.
func Context(t testing.TB) context.Context {
	t.Helper()

	logger := zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
	return logger.WithContext(context.Background())
}

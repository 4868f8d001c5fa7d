package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zerolog.Disabled, ParseLevel("off"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("bogus"))
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})

	ctx := WithComponent(WithContext(context.Background(), logger), "dispatcher")
	ctx = WithSurface(ctx, "s1")
	FromContext(ctx).Debug().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"dispatcher"`)
	assert.Contains(t, buf.String(), `"surface_id":"s1"`)
	assert.Contains(t, buf.String(), `"message":"hello"`)
}

func TestFromContext_NoLogger(t *testing.T) {
	// a bare context yields a usable no-op logger
	FromContext(context.Background()).Info().Msg("dropped")
}

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad")))

	wrapped := fmt.Errorf("run: %w", WrapExitError(ExitFailure, "catalog is invalid", errors.New("boom")))
	assert.Equal(t, ExitFailure, GetExitCode(wrapped))
	assert.Equal(t, "run: catalog is invalid: boom", wrapped.Error())
}

func TestOutputFormatter(t *testing.T) {
	var out, diag bytes.Buffer
	f := &OutputFormatter{Format: "text", Writer: &out, ErrWriter: &diag, Verbose: true}

	require.NoError(t, f.Success("plain", nil))
	require.NoError(t, f.Success(nil, func(w io.Writer) { io.WriteString(w, "rendered\n") }))
	f.VerboseLog("note %d", 1)
	err := f.Fail(ExitCommandError, ErrCodeNotFound, "missing", map[string]string{"path": "x"})

	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Equal(t, "plain\nrendered\nError [E005]: missing\nDetails: map[path:x]\n", out.String())
	assert.Equal(t, "note 1\n", diag.String())

	out.Reset()
	f = &OutputFormatter{Format: "json", Writer: &out}
	require.NoError(t, f.Error(ErrCodeGeneric, "oops", nil))
	assert.Equal(t, "{\n  \"status\": \"error\",\n  \"error\": {\n    \"code\": \"E001\",\n    \"message\": \"oops\"\n  }\n}\n", out.String())

	// Without an ErrWriter diagnostics share the main writer.
	out.Reset()
	f = &OutputFormatter{Format: "json", Writer: &out, Verbose: true}
	f.VerboseLog("loaded")
	assert.Equal(t, "loaded\n", out.String())
}

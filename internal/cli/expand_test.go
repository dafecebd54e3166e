package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/variantgen/variantgen/internal/generator"
)

func TestExpandStdout(t *testing.T) {
	in := strings.NewReader(`//variantgen:sumtype
type (
	Event interface{ isEvent() }
	Open  struct{}
	Close struct{ Reason string }
)
`)

	var out bytes.Buffer
	require.NoError(t, Expand(in, &out, "-"))

	text := out.String()
	assert.Contains(t, text, "package main")
	assert.Contains(t, text, "Event interface{ isEvent() }")
	assert.Contains(t, text, "func (Open) isEvent() {}")
	assert.Contains(t, text, `func (Close) VariantName() string { return "Close" }`)
	assert.Contains(t, text, "func EventVariantName(v Event) string {")
}

func TestExpandToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "event_gen.go")

	in := strings.NewReader(`package events

type (
	Event interface{ isEvent() }
	Open  struct{}
)
`)

	var out bytes.Buffer
	require.NoError(t, Expand(in, &out, path))
	assert.Empty(t, out.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "package events")
	assert.Contains(t, string(data), "func EventVariantName(v Event) string {")
}

func TestExpandInvalidTarget(t *testing.T) {
	in := strings.NewReader("type Config struct{ Name string }\n")

	var out bytes.Buffer
	err := Expand(in, &out, "-")

	var invalid *generator.InvalidTargetError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Config", invalid.TypeName)
	assert.Empty(t, out.String(), "no code alongside a diagnostic")
}

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunFormat(t *testing.T) {
	in := "[0:00] Hello there\n[0:04] General Kenobi\n"

	t.Run("srt", func(t *testing.T) {
		var out bytes.Buffer
		err := runFormat(strings.NewReader(in), &out, formatFlags{format: "srt"})
		require.NoError(t, err)
		assert.Equal(t, "1\n00:00:00,000 --> 00:00:04,000\nHello there\n\n2\n00:00:04,000 --> 00:00:07,000\nGeneral Kenobi\n", out.String())
	})

	t.Run("markdown_title", func(t *testing.T) {
		var out bytes.Buffer
		err := runFormat(strings.NewReader(in), &out, formatFlags{format: "md", timestamps: true, title: "Duel"})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out.String(), "# Duel"))
		assert.Contains(t, out.String(), "General Kenobi")
	})

	t.Run("compact", func(t *testing.T) {
		var out bytes.Buffer
		err := runFormat(strings.NewReader(in), &out, formatFlags{format: "compact"})
		require.NoError(t, err)
		assert.Equal(t, "Hello there General Kenobi\n", out.String())
	})

	t.Run("unknown_format", func(t *testing.T) {
		err := runFormat(strings.NewReader(in), &bytes.Buffer{}, formatFlags{format: "docx"})
		assert.Error(t, err)
	})

	t.Run("empty_input", func(t *testing.T) {
		err := runFormat(strings.NewReader("  \n\n"), &bytes.Buffer{}, formatFlags{format: "txt"})
		assert.Error(t, err)
	})
}

func TestFormatCmdReadsStdin(t *testing.T) {
	cmd := newFormatCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader("1:05 late line"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--format", "txt"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "[1:05] late line\n", out.String())
}

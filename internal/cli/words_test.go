package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rjhall/hangman/internal/words"
)

func execWords(t *testing.T, args ...string) string {
	t.Helper()

	var buf bytes.Buffer
	cmd := wordsCmd
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	wordsAll = false
	require.NoError(t, cmd.Flags().Parse(args))
	require.NoError(t, cmd.RunE(cmd, nil))
	return buf.String()
}

func TestWordsCommand(t *testing.T) {
	out := execWords(t)

	assert.Contains(t, out, "words:")
	assert.Contains(t, out, "lengths:")
	for _, w := range words.List() {
		assert.NotContains(t, out, w+"\n")
	}
}

func TestWordsCommandAll(t *testing.T) {
	out := execWords(t, "--all")

	for _, w := range words.List() {
		assert.Contains(t, out, w)
	}
}

func TestRootCommandWiring(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	assert.True(t, names["play"])
	assert.True(t, names["words"])
	assert.Equal(t, Version, rootCmd.Version)
}

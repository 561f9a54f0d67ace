package core

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompt(t *testing.T) {
	s, _, _ := newTestShell(t, testConfig())
	assert.Equal(t, "My Shell> ", s.Prompt())
}

func TestRunLineSyntaxError(t *testing.T) {
	s, runner, _ := newTestShell(t, testConfig())

	err := s.RunLine(`echo "unclosed`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "syntax error")
	assert.Empty(t, runner.calls)
}

func TestRunLineEmpty(t *testing.T) {
	s, runner, _ := newTestShell(t, testConfig())

	assert.NoError(t, s.RunLine(""))
	assert.NoError(t, s.RunLine("   "))
	assert.Empty(t, runner.calls)
}

func TestNewShellPreloadsAliasFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "aliases.txt",
		[]byte("ll ls -l\n"), 0644))

	cfg := testConfig()
	cfg.AliasFile = "aliases.txt"

	s, err := NewShell(cfg, Options{
		Stdin:  io.NopCloser(strings.NewReader("")),
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
		FS:     fsys,
		Runner: &fakeRunner{},
	})
	require.NoError(t, err)

	command, ok := s.Aliases.Get("ll")
	assert.True(t, ok)
	assert.Equal(t, "ls -l", command)

	t.Run("missing preload file fails", func(t *testing.T) {
		cfg := testConfig()
		cfg.AliasFile = "nope.txt"
		_, err := NewShell(cfg, Options{
			Stdin:  io.NopCloser(strings.NewReader("")),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			FS:     afero.NewMemMapFs(),
			Runner: &fakeRunner{},
		})
		assert.Error(t, err)
	})
}

func TestHelp(t *testing.T) {
	s, _, stdout := newTestShell(t, testConfig())
	require.NoError(t, s.Dispatch([]string{"HELP"}))

	g := goldie.New(t)
	g.Assert(t, "help", stdout.Bytes())
}

// Package core implements the interactive shell: the read-eval loop, the
// builtin dispatcher, and external program invocation.
package core

import (
	"fmt"
	"io"
	"os"

	"github.com/abiosoft/readline"
	"github.com/anmitsu/go-shlex"
	"github.com/fatih/color"
	"github.com/nameshell/namesh/core/alias"
	"github.com/nameshell/namesh/core/config"
	"github.com/nameshell/namesh/core/logger"
	"github.com/spf13/afero"
)

// Shell is a single interactive session. It owns the prompt state and the
// alias table; both live for the lifetime of the process and are never
// shared across goroutines.
type Shell struct {
	Aliases  *alias.Store
	Runner   Runner
	Readline *readline.Instance

	fs  afero.Fs
	log *logger.SessionLogger

	name       string
	terminator string
	motd       string

	// Set to true by STOP to quit the shell.
	quit bool

	stdin  io.ReadCloser
	stdout io.Writer
	stderr io.Writer
}

// Options overrides the shell's collaborators, primarily for tests. Zero
// values select the host OS equivalents.
type Options struct {
	Stdin  io.ReadCloser
	Stdout io.Writer
	Stderr io.Writer
	FS     afero.Fs
	Runner Runner
	Log    *logger.SessionLogger
}

// NewShell creates a shell from the configuration, preloading the alias
// file when one is configured.
func NewShell(cfg *config.Configuration, opts Options) (*Shell, error) {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.FS == nil {
		opts.FS = afero.NewOsFs()
	}
	if opts.Runner == nil {
		opts.Runner = &ExecRunner{
			Stdin:  opts.Stdin,
			Stdout: opts.Stdout,
			Stderr: opts.Stderr,
		}
	}
	if opts.Log == nil {
		opts.Log = logger.NewNopLogRecorder().NewSession()
	}

	s := &Shell{
		Aliases:    alias.NewStore(cfg.MaxAliases),
		Runner:     opts.Runner,
		fs:         opts.FS,
		log:        opts.Log,
		name:       cfg.ShellName,
		terminator: cfg.Terminator,
		motd:       cfg.Motd,
		stdin:      opts.Stdin,
		stdout:     opts.Stdout,
		stderr:     opts.Stderr,
	}

	if cfg.AliasFile != "" {
		if _, err := s.Aliases.Load(s.fs, cfg.AliasFile); err != nil {
			return nil, fmt.Errorf("preload aliases: %w", err)
		}
	}

	return s, nil
}

// Prompt renders the current prompt.
func (s *Shell) Prompt() string {
	return fmt.Sprintf("%s%s ", s.name, s.terminator)
}

// RunLine tokenizes and dispatches a single input line.
func (s *Shell) RunLine(line string) error {
	tokens, err := shlex.Split(line, true)
	if err != nil {
		return fmt.Errorf("syntax error: %v", err)
	}
	return s.Dispatch(tokens)
}

// Run is the interactive read-eval loop. It returns when input is closed
// or the STOP builtin runs; every other failure is reported and the loop
// continues.
func (s *Shell) Run() error {
	cfg := &readline.Config{
		Stdin:  readline.NewCancelableStdin(s.stdin),
		Stdout: s.stdout,
		Stderr: s.stderr,
	}
	if err := cfg.Init(); err != nil {
		return err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return err
	}
	defer rl.Close()
	s.Readline = rl

	if s.motd != "" {
		fmt.Fprintln(s.stdout, s.motd)
	}

	errColor := color.New(color.FgRed)
	for !s.quit {
		rl.SetPrompt(s.Prompt())
		line, err := rl.Readline()

		switch {
		case err == io.EOF:
			return nil // Input closed, quit.

		case err == readline.ErrInterrupt:
			continue

		case err != nil:
			fmt.Fprintf(s.stderr, "read error: %v\n", err)
			continue
		}

		if err := s.RunLine(line); err != nil {
			errColor.Fprintf(s.stderr, "Error: %v\n", err)
		}
	}
	return nil
}

package core

import (
	"fmt"
	"sort"
	"strings"
)

// builtin handlers receive the full token slice, selector included.
type builtinFunc func(s *Shell, tokens []string) error

type builtin struct {
	fn    builtinFunc
	short string
}

// allBuiltins is the fixed command vocabulary. Matching is exact and
// case-sensitive; anything else falls through to alias resolution and
// external invocation.
var allBuiltins map[string]builtin

// Populated in init to break the initialization cycle between allBuiltins
// and builtinHelp, which iterates the map.
func init() {
	allBuiltins = map[string]builtin{
		"STOP":          {builtinStop, "exit the shell"},
		"SETSHELLNAME":  {builtinSetShellName, "set the shell name shown in the prompt"},
		"SETTERMINATOR": {builtinSetTerminator, "set the prompt terminator"},
		"NEWNAME":       {builtinNewName, "list aliases, delete one, or define one"},
		"READNEWNAMES":  {builtinReadNewNames, "load aliases from a file"},
		"LISTNEWNAMES":  {builtinListNewNames, "list all aliases"},
		"SAVENEWNAMES":  {builtinSaveNewNames, "save aliases to a file"},
		"HELP":          {builtinHelp, "show this help"},
	}
}

// Dispatch routes one tokenized input line. Builtins fully shadow aliases
// and external programs; an empty token list is a silent no-op. Errors are
// reported by the caller and never terminate the shell.
func (s *Shell) Dispatch(tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	if b, ok := allBuiltins[tokens[0]]; ok {
		_ = s.log.RecordBuiltin(tokens[0], tokens[1:])
		return b.fn(s, tokens)
	}
	return s.invoke(tokens)
}

// invoke runs an external program, consulting the alias table first. An
// alias value replaces the whole input line: the original arguments are
// discarded, per the table's contract of binding a full command line.
func (s *Shell) invoke(tokens []string) error {
	name, args := tokens[0], tokens[1:]

	if command, ok := s.Aliases.Get(name); ok {
		_ = s.log.RecordAliasResolved(name, command)
		fields := strings.Fields(command)
		if len(fields) == 0 {
			return fmt.Errorf("alias %q expands to an empty command", name)
		}
		name, args = fields[0], fields[1:]
	}

	runErr := s.Runner.Run(name, args)
	_ = s.log.RecordExec(name, args, runErr)
	return runErr
}

func builtinStop(s *Shell, tokens []string) error {
	s.quit = true
	return nil
}

func builtinSetShellName(s *Shell, tokens []string) error {
	s.name = strings.Join(tokens[1:], " ")
	fmt.Fprintf(s.stdout, "Shell name set to: %s\n", s.name)
	return nil
}

func builtinSetTerminator(s *Shell, tokens []string) error {
	if len(tokens) < 2 {
		fmt.Fprintf(s.stdout, "No terminator specified. Keeping the current terminator: %s\n", s.terminator)
		return nil
	}
	s.terminator = tokens[1]
	fmt.Fprintf(s.stdout, "Terminator set to: %s\n", s.terminator)
	return nil
}

func builtinNewName(s *Shell, tokens []string) error {
	switch len(tokens) {
	case 1:
		s.listAliases()
	case 2:
		if s.Aliases.Delete(tokens[1]) {
			fmt.Fprintf(s.stdout, "Alias '%s' deleted.\n", tokens[1])
		} else {
			fmt.Fprintf(s.stdout, "Alias '%s' does not exist.\n", tokens[1])
		}
	case 3:
		if err := s.Aliases.Set(tokens[1], tokens[2]); err != nil {
			return fmt.Errorf("NEWNAME: %w", err)
		}
		fmt.Fprintf(s.stdout, "Alias '%s' defined for '%s'.\n", tokens[1], tokens[2])
	default:
		return fmt.Errorf("usage: NEWNAME [alias [command]]")
	}
	return nil
}

func builtinReadNewNames(s *Shell, tokens []string) error {
	if len(tokens) != 2 {
		return fmt.Errorf("usage: READNEWNAMES <file>")
	}
	loaded, err := s.Aliases.Load(s.fs, tokens[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(s.stdout, "Loaded %d aliases from %s.\n", loaded, tokens[1])
	return nil
}

func builtinListNewNames(s *Shell, tokens []string) error {
	s.listAliases()
	return nil
}

func builtinSaveNewNames(s *Shell, tokens []string) error {
	if len(tokens) != 2 {
		return fmt.Errorf("usage: SAVENEWNAMES <file>")
	}
	if err := s.Aliases.Save(s.fs, tokens[1]); err != nil {
		return err
	}
	fmt.Fprintf(s.stdout, "Aliases saved to: %s\n", tokens[1])
	return nil
}

func builtinHelp(s *Shell, tokens []string) error {
	fmt.Fprintln(s.stdout, "These commands are handled by the shell itself.")
	fmt.Fprintln(s.stdout, "Anything else runs as an external program, aliases first.")
	fmt.Fprintln(s.stdout)

	var names []string
	for name := range allBuiltins {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(s.stdout, "  %-13s  %s\n", name, allBuiltins[name].short)
	}
	return nil
}

func (s *Shell) listAliases() {
	fmt.Fprintln(s.stdout, "Aliases:")
	s.Aliases.Each(func(name, command string) {
		fmt.Fprintf(s.stdout, "%s - %s\n", name, command)
	})
}

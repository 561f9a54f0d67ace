// Package alias implements the shell's alias table, an in-memory mapping
// from alias names to command lines with plain text file persistence.
package alias

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// ErrFull is returned when inserting a new alias into a table that already
// holds its maximum number of entries.
var ErrFull = errors.New("alias table is full")

// Store holds the alias table. It is not safe for concurrent use; the shell
// owns it from a single goroutine.
type Store struct {
	max     int
	entries map[string]string
}

// NewStore creates an empty table bounded to max entries.
func NewStore(max int) *Store {
	return &Store{
		max:     max,
		entries: make(map[string]string),
	}
}

// Len reports the number of aliases in the table.
func (s *Store) Len() int {
	return len(s.entries)
}

// Get looks up the command line bound to name.
func (s *Store) Get(name string) (string, bool) {
	command, ok := s.entries[name]
	return command, ok
}

// Set binds name to command, overwriting any previous binding. Overwrites
// are always allowed; inserting a new name fails with ErrFull once the
// table holds its maximum number of entries.
func (s *Store) Set(name, command string) error {
	if _, exists := s.entries[name]; !exists && len(s.entries) >= s.max {
		return ErrFull
	}
	s.entries[name] = command
	return nil
}

// Delete removes name from the table and reports whether it was present.
func (s *Store) Delete(name string) bool {
	if _, ok := s.entries[name]; !ok {
		return false
	}
	delete(s.entries, name)
	return true
}

// Each calls fn for every alias. Iteration order is unspecified.
func (s *Store) Each(fn func(name, command string)) {
	for name, command := range s.entries {
		fn(name, command)
	}
}

// splitEntry splits a saved alias line into its name and command line.
// Only the first space separates the two; the command line keeps any
// further spaces verbatim. Lines without two non-empty parts are invalid.
func splitEntry(line string) (name, command string, ok bool) {
	idx := strings.Index(line, " ")
	if idx <= 0 {
		return "", "", false
	}
	name, command = line[:idx], line[idx+1:]
	if command == "" {
		return "", "", false
	}
	return name, command, true
}

// Load reads aliases from the file at path, inserting them into the table
// on top of whatever is already present. Invalid lines are skipped.
// Loading stops without error as soon as the table is full; remaining
// lines are not read. Returns the number of entries applied.
func (s *Store) Load(fsys afero.Fs, path string) (int, error) {
	fd, err := fsys.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open alias file: %w", err)
	}
	defer fd.Close()

	loaded := 0
	scanner := bufio.NewScanner(fd)
	for scanner.Scan() {
		name, command, ok := splitEntry(scanner.Text())
		if !ok {
			continue
		}
		if err := s.Set(name, command); err != nil {
			break
		}
		loaded++
		if len(s.entries) >= s.max {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return loaded, fmt.Errorf("read alias file: %w", err)
	}
	return loaded, nil
}

// Save writes the table to the file at path, one "name command" entry per
// line in unspecified order. The file is created or truncated. The first
// write failure aborts the save; lines already written are left on disk.
func (s *Store) Save(fsys afero.Fs, path string) error {
	fd, err := fsys.Create(path)
	if err != nil {
		return fmt.Errorf("create alias file: %w", err)
	}
	defer fd.Close()

	for name, command := range s.entries {
		if _, err := fmt.Fprintf(fd, "%s %s\n", name, command); err != nil {
			return fmt.Errorf("write alias file: %w", err)
		}
	}
	return nil
}

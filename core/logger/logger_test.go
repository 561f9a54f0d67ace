package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLinesLogRecorder(t *testing.T) {
	buf := &bytes.Buffer{}
	session := NewJSONLinesLogRecorder(buf).NewSession()

	require.NoError(t, session.RecordBuiltin("NEWNAME", []string{"ll", "ls -l"}))
	require.NoError(t, session.RecordAliasResolved("ll", "ls -l"))
	require.NoError(t, session.RecordExec("ls", []string{"-l"}, errors.New("exit status 2")))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var entries []LogEntry
	for _, line := range lines {
		var le LogEntry
		require.NoError(t, json.Unmarshal([]byte(line), &le))
		entries = append(entries, le)
	}

	// All entries share the session's ID and carry timestamps.
	sessionID := entries[0].SessionID
	assert.NotEmpty(t, sessionID)
	for _, le := range entries {
		assert.Equal(t, sessionID, le.SessionID)
		assert.NotZero(t, le.TimestampMicros)
	}

	require.NotNil(t, entries[0].Builtin)
	assert.Equal(t, "NEWNAME", entries[0].Builtin.Name)
	assert.Equal(t, []string{"ll", "ls -l"}, entries[0].Builtin.Args)

	require.NotNil(t, entries[1].AliasResolved)
	assert.Equal(t, "ll", entries[1].AliasResolved.Alias)

	require.NotNil(t, entries[2].Exec)
	assert.Equal(t, "exit status 2", entries[2].Exec.Error)
}

func TestNopLogRecorder(t *testing.T) {
	session := NewNopLogRecorder().NewSession()
	assert.NoError(t, session.RecordBuiltin("STOP", nil))
	assert.NoError(t, session.RecordExec("ls", nil, nil))
}

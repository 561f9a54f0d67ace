package core

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecRunnerNotFound(t *testing.T) {
	out := &bytes.Buffer{}
	r := &ExecRunner{Stdout: out, Stderr: out}

	err := r.Run("namesh-test-no-such-program", nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "command not found")
}

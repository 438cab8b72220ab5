// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DataDog/sequence-go/sequence"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestKinds(t *testing.T) {
	out, _, err := execute(t, "kinds")
	require.NoError(t, err)
	assert.Equal(t, "cbl\ncdal\npsll\nsdal\n", out)
}

func TestRun(t *testing.T) {
	t.Run("args", func(t *testing.T) {
		for _, k := range []string{"cbl", "cdal", "psll", "sdal"} {
			t.Run(k, func(t *testing.T) {
				out, _, err := execute(t, "run", "--kind", k,
					"push_back:a", "push_back:b", "insert:x@1", "push_front:z",
					"replace:y@0", "length", "contains:x", "item_at:2", "print")
				require.NoError(t, err)
				assert.Equal(t, "push_back:a => ok\n"+
					"push_back:b => ok\n"+
					"insert:x@1 => ok\n"+
					"push_front:z => ok\n"+
					"replace:y@0 => z\n"+
					"length => 4\n"+
					"contains:x => true\n"+
					"item_at:2 => x\n"+
					"print => [y,a,x,b]\n"+
					"[y,a,x,b]\n", out)
			})
		}
	})

	t.Run("empty", func(t *testing.T) {
		out, _, err := execute(t, "run")
		require.NoError(t, err)
		assert.Equal(t, "<empty list>\n", out)
	})

	t.Run("failure", func(t *testing.T) {
		out, _, err := execute(t, "run", "push_back:a", "remove:3", "push_back:b")
		require.ErrorIs(t, err, sequence.ErrRange)
		assert.Equal(t, "push_back:a => ok\n", out)
	})

	t.Run("keep-going", func(t *testing.T) {
		out, _, err := execute(t, "run", "--keep-going", "pop_back", "push_back:a", "peek_front")
		require.ErrorIs(t, err, sequence.ErrEmpty)
		assert.Equal(t, "pop_back: PopBack: sequence is empty\n"+
			"push_back:a => ok\n"+
			"peek_front => a\n"+
			"[a]\n", out)
	})

	t.Run("invalid operation", func(t *testing.T) {
		_, _, err := execute(t, "run", "shuffle")
		assert.ErrorContains(t, err, `unknown operation "shuffle"`)
	})

	t.Run("invalid kind", func(t *testing.T) {
		_, _, err := execute(t, "run", "--kind", "vector")
		assert.ErrorContains(t, err, "unknown sequence kind")
	})

	t.Run("invalid capacity", func(t *testing.T) {
		_, _, err := execute(t, "run", "--kind", "sdal", "--capacity", "0")
		assert.ErrorContains(t, err, "invalid capacity")
	})

	t.Run("stats", func(t *testing.T) {
		out, _, err := execute(t, "run", "--kind", "cbl", "--capacity", "2", "--stats", "push_back:a", "push_back:b")
		require.NoError(t, err)
		assert.Contains(t, out, "[a,b]\n")
		assert.Contains(t, out, "grows: 1\n")
		assert.Contains(t, out, "nodes_allocated: 0\n")
	})

	t.Run("verbose", func(t *testing.T) {
		_, logs, err := execute(t, "run", "-v", "--kind", "sdal", "--capacity", "1", "push_back:a", "push_back:b")
		require.NoError(t, err)
		assert.Contains(t, logs, "running 2 operations on sdal")
		assert.Contains(t, logs, "grew backing array from 1 to 2 slots")

		_, logs, err = execute(t, "run", "--kind", "sdal", "--capacity", "1", "push_back:a", "push_back:b")
		require.NoError(t, err)
		assert.Empty(t, logs)
	})
}

func TestRunConfiguration(t *testing.T) {
	t.Run("env", func(t *testing.T) {
		t.Setenv("SEQCTL_KIND", "psll")
		_, logs, err := execute(t, "run", "-v")
		require.NoError(t, err)
		assert.Contains(t, logs, "on psll")
	})

	t.Run("env/flag wins", func(t *testing.T) {
		t.Setenv("SEQCTL_KIND", "psll")
		_, logs, err := execute(t, "run", "-v", "--kind", "cdal")
		require.NoError(t, err)
		assert.Contains(t, logs, "on cdal")
	})

	t.Run("config file", func(t *testing.T) {
		path := writeFile(t, "seqctl.yaml", "kind: sdal\ncapacity: 3\n")
		_, logs, err := execute(t, "run", "-v", "--config", path, "push_back:a", "push_back:b", "push_back:c", "push_back:d")
		require.NoError(t, err)
		assert.Contains(t, logs, "on sdal")
		assert.Contains(t, logs, "grew backing array from 3 to 4 slots")
	})

	t.Run("config file/missing", func(t *testing.T) {
		_, _, err := execute(t, "run", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorContains(t, err, "failed to read config")
	})

	t.Run("script", func(t *testing.T) {
		path := writeFile(t, "ops.yaml", `kind: cdal
ops:
  - op: push_back
    value: b
  - op: insert
    value: a
    position: 0
  - op: remove
    position: 1
`)
		out, logs, err := execute(t, "run", "-v", "--script", path, "push_back:c")
		require.NoError(t, err)
		assert.Contains(t, logs, "on cdal")
		assert.Equal(t, "push_back:b => ok\n"+
			"insert:a@0 => ok\n"+
			"remove:1 => b\n"+
			"push_back:c => ok\n"+
			"[a,c]\n", out)
	})

	t.Run("script/flag wins", func(t *testing.T) {
		path := writeFile(t, "ops.yaml", "kind: cdal\n")
		_, logs, err := execute(t, "run", "-v", "--kind", "psll", "--script", path)
		require.NoError(t, err)
		assert.Contains(t, logs, "on psll")
	})

	t.Run("script/invalid", func(t *testing.T) {
		path := writeFile(t, "ops.yaml", "ops:\n  - op: sort\n")
		_, _, err := execute(t, "run", "--script", path)
		assert.ErrorContains(t, err, "script operation #1")
	})
}

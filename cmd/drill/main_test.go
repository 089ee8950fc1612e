package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeRoot(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	chdir(t, t.TempDir())
	t.Cleanup(func() { verbose, quiet = false, false })

	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	require.NoError(t, root.Execute())

	return out.String(), errOut.String()
}

func TestQuiet_KeepsReportDropsInfoLogs(t *testing.T) {
	out, logs := executeRoot(t, "run", "--no-color", "--quiet")
	assert.Contains(t, out, "0 failed, 0 errored")
	assert.Empty(t, logs)

	out, logs = executeRoot(t, "run", "--no-color")
	assert.Contains(t, out, "0 failed, 0 errored")
	assert.Contains(t, logs, "casebooks loaded")
}

func TestVerbose_LogsEveryCase(t *testing.T) {
	_, logs := executeRoot(t, "run", "--no-color", "--verbose", "--op", "merge_sort")
	assert.Contains(t, logs, "case finished")
}

func TestQuiet_FlagUsage(t *testing.T) {
	flag := newRootCmd().PersistentFlags().Lookup("quiet")
	require.NotNil(t, flag)
	assert.Contains(t, flag.Usage, "report is still printed")
}

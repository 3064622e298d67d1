package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunPlainText(t *testing.T) {
	path := writeFile(t, "resume.txt", "Jane Doe\nSkills:\n- Go\n- Rust\n- Kubernetes\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{path}, &stdout, &stderr)
	assert.Equal(t, exitOK, code, stderr.String())
	assert.Equal(t, "Go\nRust\nKubernetes\n", stdout.String())
}

func TestRunJSONStrict(t *testing.T) {
	path := writeFile(t, "resume.txt", "Skills: front-end, SQL\nReferences:\nJane Roe\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-json", "-strict", "-stop-at-heading", "-type", "text/plain", path}, &stdout, &stderr)
	assert.Equal(t, exitOK, code, stderr.String())
	assert.JSONEq(t, `["front-end","SQL"]`, stdout.String())
}

func TestRunEmptySectionJSON(t *testing.T) {
	path := writeFile(t, "resume.txt", "Skills:")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-json", path}, &stdout, &stderr)
	assert.Equal(t, exitOK, code)
	assert.JSONEq(t, `[]`, stdout.String())
}

func TestRunFailures(t *testing.T) {
	testCases := []struct {
		name string
		args func(t *testing.T) []string
		want int
	}{
		{
			name: "no section",
			args: func(t *testing.T) []string { return []string{writeFile(t, "r.txt", "Jane Doe\n")} },
			want: exitNoSection,
		},
		{
			name: "unsupported declared type",
			args: func(t *testing.T) []string { return []string{"-type", "image/png", writeFile(t, "r.txt", "Skills: Go")} },
			want: exitUnsupported,
		},
		{
			name: "corrupt declared pdf",
			args: func(t *testing.T) []string { return []string{"-type", "application/pdf", writeFile(t, "r.pdf", "Skills: Go")} },
			want: exitCorrupt,
		},
		{
			name: "missing file",
			args: func(t *testing.T) []string { return []string{filepath.Join(t.TempDir(), "nope.txt")} },
			want: exitUsage,
		},
		{
			name: "no arguments",
			args: func(t *testing.T) []string { return nil },
			want: exitUsage,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Equal(t, tc.want, run(tc.args(t), &stdout, &stderr))
			assert.Empty(t, stdout.String())
			assert.NotEmpty(t, stderr.String())
		})
	}
}

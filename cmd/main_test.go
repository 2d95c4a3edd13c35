package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInput = "alphanumeric_aBc123_AbC123_foobar!\n"

// writeInput creates an input file with content in a fresh temp dir.
func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func invoke(argv ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(argv, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunWritesToStdout(t *testing.T) {
	tests := []struct {
		name  string
		input string
		flags []string
		want  string
	}{
		{
			name:  "no flags echoes input",
			input: sampleInput,
			want:  sampleInput,
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "replace first occurrence",
			input: sampleInput,
			flags: []string{"-r", "123", "456"},
			want:  "alphanumeric_aBc456_AbC123_foobar!\n",
		},
		{
			name:  "replace with empty replacement",
			input: sampleInput,
			flags: []string{"-r", "123", ""},
			want:  "alphanumeric_aBc_AbC123_foobar!\n",
		},
		{
			name:  "replace search with backslash",
			input: "alphanumeric_aBc1\\23_AbC123_foobar!\n",
			flags: []string{"-r", "1\\23", "456"},
			want:  "alphanumeric_aBc456_AbC123_foobar!\n",
		},
		{
			name:  "replace replacement with backslash",
			input: sampleInput,
			flags: []string{"-r", "123", "4\\56"},
			want:  "alphanumeric_aBc4\\56_AbC123_foobar!\n",
		},
		{
			name:  "prefix with special characters",
			input: sampleInput,
			flags: []string{"-p", "Pref!x$_"},
			want:  "Pref!x$_alphanumeric_aBc123_AbC123_foobar!\n",
		},
		{
			name:  "encode by one",
			input: sampleInput,
			flags: []string{"-c", "1"},
			want:  "bmqibovnfsjd_bCd123_BcD123_gppcbs!\n",
		},
		{
			name:  "encode negative",
			input: "abc XYZ\n",
			flags: []string{"-c", "-25"},
			want:  "bcd YZA\n",
		},
		{
			name:  "duplicate keeps blocks together",
			input: "a\nb\n",
			flags: []string{"-d", "2"},
			want:  "a\na\na\nb\nb\nb\n",
		},
		{
			name:  "crlf input normalized",
			input: "one\r\ntwo\r\n",
			flags: []string{"-p", "> "},
			want:  "> one\n> two\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			input := writeInput(t, tc.input)

			code, stdout, stderr := invoke(append(tc.flags, input)...)

			assert.Equal(t, exitCodeSuccess, code)
			assert.Empty(t, stderr)
			assert.Equal(t, tc.want, stdout)
			assert.Equal(t, tc.input, readFile(t, input), "input file must be unchanged")
		})
	}
}

func TestRunWritesInPlace(t *testing.T) {
	tests := []struct {
		name  string
		flags []string
		want  string
	}{
		{
			name:  "replace case insensitive prefix duplicate",
			flags: []string{"-f", "-r", "AbC123", "Def456", "-i", "-p", "Prefix", "-d", "1"},
			want: "Prefixalphanumeric_Def456_AbC123_foobar!\n" +
				"Prefixalphanumeric_Def456_AbC123_foobar!\n",
		},
		{
			name:  "replace case insensitive prefix",
			flags: []string{"-f", "-r", "AbC123", "Def456", "-i", "-p", "Prefix"},
			want:  "Prefixalphanumeric_Def456_AbC123_foobar!\n",
		},
		{
			name:  "replace case sensitive prefix duplicate",
			flags: []string{"-f", "-r", "AbC123", "Def456", "-p", "Prefix", "-d", "1"},
			want: "Prefixalphanumeric_aBc123_Def456_foobar!\n" +
				"Prefixalphanumeric_aBc123_Def456_foobar!\n",
		},
		{
			name:  "repeated replace uses the last one",
			flags: []string{"-f", "-r", "123", "456", "-r", "123", "789", "-i", "-p", "PREFIX_", "-d", "2"},
			want: "PREFIX_alphanumeric_aBc789_AbC123_foobar!\n" +
				"PREFIX_alphanumeric_aBc789_AbC123_foobar!\n" +
				"PREFIX_alphanumeric_aBc789_AbC123_foobar!\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			input := writeInput(t, sampleInput)

			code, stdout, stderr := invoke(append(tc.flags, input)...)

			assert.Equal(t, exitCodeSuccess, code)
			assert.Empty(t, stderr)
			assert.Empty(t, stdout)
			assert.Equal(t, tc.want, readFile(t, input))
		})
	}
}

func TestRunWritesNewFile(t *testing.T) {
	input := writeInput(t, sampleInput)
	output := filepath.Join(filepath.Dir(input), "output.txt")

	code, stdout, stderr := invoke("-o", output, "-c", "1", input)

	assert.Equal(t, exitCodeSuccess, code)
	assert.Empty(t, stderr)
	assert.Empty(t, stdout)
	assert.Equal(t, "bmqibovnfsjd_bCd123_BcD123_gppcbs!\n", readFile(t, output))
	assert.Equal(t, sampleInput, readFile(t, input))
}

func TestRunRejectsInvalidInvocation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		argv  func(input, dir string) []string
	}{
		{
			name: "no arguments",
			argv: func(string, string) []string { return nil },
		},
		{
			name: "missing input file",
			argv: func(_, dir string) []string { return []string{filepath.Join(dir, "the_wrong_file_name")} },
		},
		{
			name: "output file without input",
			argv: func(input, _ string) []string { return []string{"-o", input} },
		},
		{
			name: "output file already exists",
			argv: func(input, dir string) []string {
				existing := filepath.Join(dir, "existing.txt")
				os.WriteFile(existing, []byte("x\n"), 0o644)
				return []string{"-o", existing, input}
			},
		},
		{
			name: "write in place with output file",
			argv: func(input, dir string) []string {
				return []string{"-f", "-o", filepath.Join(dir, "outputFile.txt"), input}
			},
		},
		{
			name: "replace missing parameters",
			argv: func(input, _ string) []string { return []string{"-r", input} },
		},
		{
			name: "replace empty search",
			argv: func(input, _ string) []string { return []string{"-r", "", "456", input} },
		},
		{
			name: "prefix missing parameter",
			argv: func(input, _ string) []string { return []string{"-p", input} },
		},
		{
			name: "prefix empty",
			argv: func(input, _ string) []string { return []string{"-p", "", input} },
		},
		{
			name: "duplicate non-numeric",
			argv: func(input, _ string) []string { return []string{"-d", "One", input} },
		},
		{
			name: "duplicate negative",
			argv: func(input, _ string) []string { return []string{"-d", "-1", input} },
		},
		{
			name: "duplicate too large",
			argv: func(input, _ string) []string { return []string{"-d", "11", input} },
		},
		{
			name: "encode missing parameter",
			argv: func(input, _ string) []string { return []string{"-c", input} },
		},
		{
			name: "encode -26",
			argv: func(input, _ string) []string { return []string{"-c", "-26", input} },
		},
		{
			name: "encode 26",
			argv: func(input, _ string) []string { return []string{"-c", "26", input} },
		},
		{
			name: "replace with encode",
			argv: func(input, _ string) []string { return []string{"-r", "123", "456", "-c", "1", input} },
		},
		{
			name: "case insensitive alone",
			argv: func(input, _ string) []string { return []string{"-f", "-i", input} },
		},
		{
			name: "parameter before any flag",
			argv: func(input, _ string) []string { return []string{"oops", "-f", input} },
		},
		{
			name:  "missing trailing newline",
			input: "alphanumeric_aBc123_AbC123_foobar!",
			argv:  func(input, _ string) []string { return []string{"-f", "-p", "x", input} },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			content := tc.input
			if content == "" {
				content = sampleInput
			}
			input := writeInput(t, content)
			dir := filepath.Dir(input)
			argv := tc.argv(input, dir)
			before, err := os.ReadDir(dir)
			require.NoError(t, err)

			code, stdout, stderr := invoke(argv...)

			assert.Equal(t, exitCodeUsage, code)
			assert.Empty(t, stdout)
			assert.Equal(t, usage, strings.TrimSpace(stderr))
			assert.Equal(t, 1, strings.Count(stderr, "\n"))
			assert.Equal(t, content, readFile(t, input), "input file must be unchanged")

			after, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Len(t, after, len(before), "no file may be created")
		})
	}
}

func TestRunFailedWriteReportsUsage(t *testing.T) {
	input := writeInput(t, sampleInput)
	output := filepath.Join(filepath.Dir(input), "missing-dir", "out.txt")

	code, stdout, stderr := invoke("-o", output, input)

	assert.Equal(t, exitCodeUsage, code)
	assert.Empty(t, stdout)
	assert.Equal(t, usage+"\n", stderr)
	assert.NoFileExists(t, output)
}

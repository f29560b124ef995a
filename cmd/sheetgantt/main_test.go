package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const tasksYAML = `tasks:
  - name: Kick-off
    start: 2024-01-08
    end: 2024-01-08
    completion: 100%
  - name: Build
    start: 2024-01-09
    end: 2024-01-19
    completion: 40
`

func TestRunGenerate(t *testing.T) {
	dir := t.TempDir()
	tasksFile := filepath.Join(dir, "tasks.yaml")
	require.NoError(t, os.WriteFile(tasksFile, []byte(tasksYAML), 0o644))

	tests := map[string]struct {
		args      func(out string) []string
		expRows   [][]string
		expSheet  string
		expStdout string
	}{
		"Generating without a source should use the built-in tasks.": {
			args: func(out string) []string {
				return []string{"sheetgantt", "--no-log", "generate", "--output", out}
			},
			expSheet:  "Project progress",
			expStdout: "6 tasks",
		},

		"Generating from a tasks file should write its tasks.": {
			args: func(out string) []string {
				return []string{"sheetgantt", "--no-log", "generate", "--tasks-file", tasksFile, "--sheet-name", "Plan", "--output", out}
			},
			expSheet:  "Plan",
			expStdout: "2 tasks",
			expRows: [][]string{
				{"Task", "Start date", "End date", "Duration (days)", "Completion"},
				{"Kick-off", "2024-01-08", "2024-01-08", "1", "100%"},
				{"Build", "2024-01-09", "2024-01-19", "11", "40%"},
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			out := filepath.Join(t.TempDir(), "report.xlsx")
			var stdout, stderr bytes.Buffer

			err := Run(context.Background(), test.args(out), strings.NewReader(""), &stdout, &stderr)
			require.NoError(err)

			_, err = os.Stat(out)
			require.NoError(err)
			assert.Contains(stdout.String(), "Report written to "+out)
			assert.Contains(stdout.String(), test.expStdout)

			f, err := excelize.OpenFile(out)
			require.NoError(err)
			defer f.Close()

			rows, err := f.GetRows(test.expSheet)
			require.NoError(err)
			if test.expRows != nil {
				assert.Equal(test.expRows, rows)
			}
		})
	}
}

func TestRunDefaultCommand(t *testing.T) {
	require := require.New(t)

	wd, wdErr := os.Getwd()
	require.NoError(wdErr)
	require.NoError(os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var stdout, stderr bytes.Buffer
	err := Run(context.Background(), []string{"sheetgantt", "--no-log"}, strings.NewReader(""), &stdout, &stderr)
	require.NoError(err)

	f, err := excelize.OpenFile("project-progress-gantt.xlsx")
	require.NoError(err)
	defer f.Close()

	rows, err := f.GetRows("Project progress")
	require.NoError(err)
	assert.Len(t, rows, 7)
	assert.True(t, strings.HasPrefix(stdout.String(), "Report written to project-progress-gantt.xlsx ("))
}

func TestRunList(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := Run(context.Background(), []string{"sheetgantt", "list", "--format", "json"}, strings.NewReader(""), &stdout, &stderr)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), `"name": "Requirements analysis"`)
	assert.Contains(t, stdout.String(), `"duration_days": 15`)
	assert.Empty(t, stderr.String())
}

func TestRunListEmpty(t *testing.T) {
	var stdout, stderr bytes.Buffer

	tasksFile := filepath.Join(t.TempDir(), "tasks.yaml")
	require.NoError(t, os.WriteFile(tasksFile, []byte("tasks: []\n"), 0o644))

	err := Run(context.Background(), []string{"sheetgantt", "list", "--no-validate", "--tasks-file", tasksFile}, strings.NewReader(""), &stdout, &stderr)
	require.NoError(t, err)

	assert.Equal(t, "No tasks found\n", stdout.String())
}

func TestRunErrors(t *testing.T) {
	tests := map[string]struct {
		args []string
	}{
		"Unknown commands should fail.": {
			args: []string{"sheetgantt", "unknown"},
		},

		"Using two task sources should fail.": {
			args: []string{"sheetgantt", "--no-log", "list", "--tasks-file", "a.yaml", "--tasks-db", "a.db"},
		},

		"A missing tasks file should fail.": {
			args: []string{"sheetgantt", "--no-log", "list", "--tasks-file", filepath.Join(t.TempDir(), "missing.yaml")},
		},

		"A non xlsx output should fail.": {
			args: []string{"sheetgantt", "--no-log", "generate", "--output", filepath.Join(t.TempDir(), "report.csv")},
		},

		"A missing font file should fail.": {
			args: []string{"sheetgantt", "--no-log", "generate", "--font", filepath.Join(t.TempDir(), "missing.ttf")},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := Run(context.Background(), test.args, strings.NewReader(""), &stdout, &stderr)
			assert.Error(t, err)
		})
	}
}

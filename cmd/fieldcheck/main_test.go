package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRules = `
age:
  type: int
  flags: [required, unsigned]
email:
  type: email
  label: E-mail
  flags: [required]
note:
  type: string
  drop: empty
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	rules := writeFile(t, dir, "rules.yaml", testRules)

	t.Run("prints sanitized document", func(t *testing.T) {
		data := writeFile(t, dir, "ok.json", `{"age":"-7","email":"a@example.com","note":""}`)
		var stdout, stderr bytes.Buffer

		code := run([]string{"-rules", rules, "-data", data}, nil, &stdout, &stderr)
		require.Equal(t, exitOK, code, stderr.String())
		assert.JSONEq(t, `{"age":7,"email":"a@example.com"}`, stdout.String())
	})

	t.Run("reads document from stdin", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		stdin := strings.NewReader(`{"age":3,"email":"b@example.com"}`)

		code := run([]string{"-rules", rules}, stdin, &stdout, &stderr)
		require.Equal(t, exitOK, code, stderr.String())
		assert.JSONEq(t, `{"age":3,"email":"b@example.com","note":null}`, stdout.String())
	})

	t.Run("prints error mapping", func(t *testing.T) {
		data := writeFile(t, dir, "bad.json", `{"age":"x"}`)
		var stdout, stderr bytes.Buffer

		code := run([]string{"-rules", rules, "-data", data}, nil, &stdout, &stderr)
		require.Equal(t, exitInvalid, code)

		var got struct {
			Valid  bool                         `json:"valid"`
			Errors map[string]map[string]string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		assert.False(t, got.Valid)
		assert.Equal(t, "TYPE", got.Errors["age"]["code"])
		assert.Equal(t, "REQUIRED", got.Errors["email"]["code"])
		assert.Equal(t, "E-mail is required", got.Errors["email"]["message"])
	})

	t.Run("raise mode reports on stderr", func(t *testing.T) {
		data := writeFile(t, dir, "raise.json", `{"age":1}`)
		var stdout, stderr bytes.Buffer

		code := run([]string{"-rules", rules, "-data", data, "-raise"}, nil, &stdout, &stderr)
		require.Equal(t, exitInvalid, code)
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "E-mail is required")
	})

	t.Run("json rule file", func(t *testing.T) {
		jsonRules := writeFile(t, dir, "rules.json", `{"id":{"type":"uuid","0":"required"}}`)
		data := writeFile(t, dir, "id.json", `{"id":"not-a-uuid"}`)
		var stdout, stderr bytes.Buffer

		code := run([]string{"-rules", jsonRules, "-data", data}, nil, &stdout, &stderr)
		assert.Equal(t, exitInvalid, code)
		assert.Contains(t, stdout.String(), "NOT_VALID")
	})

	t.Run("usage errors", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		assert.Equal(t, exitUsage, run(nil, nil, &stdout, &stderr))
		assert.Contains(t, stderr.String(), "-rules is required")

		stderr.Reset()
		assert.Equal(t, exitUsage, run([]string{"-rules", filepath.Join(dir, "missing.yaml")}, nil, &stdout, &stderr))
		assert.Contains(t, stderr.String(), "failed to load rules")

		broken := writeFile(t, dir, "broken.yaml", "age: {type: nope}")
		stderr.Reset()
		assert.Equal(t, exitUsage, run([]string{"-rules", broken}, strings.NewReader("{}"), &stdout, &stderr))
		assert.Contains(t, stderr.String(), "failed to load rules")

		stderr.Reset()
		assert.Equal(t, exitUsage, run([]string{"-rules", rules}, strings.NewReader("[1]"), &stdout, &stderr))
		assert.Contains(t, stderr.String(), "failed to read data")
	})
}

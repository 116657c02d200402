package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type runResult struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, stdin string, args ...string) runResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return runResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pgtext.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCheckText(t *testing.T) {
	r := runCLI(t, "", "check", "int2", " 12 ", "32768", "0.5")
	assert.Equal(t, 1, r.code)
	assert.Equal(t, "12\n"+
		"32768: too_big: Number must be less than or equal to 32767\n"+
		"0.5: not_whole: Number must be whole\n", r.stdout)
	assert.Empty(t, r.stderr)

	r = runCLI(t, "", "check", "daterange", "[2022-09-02,2022-10-03]")
	assert.Equal(t, 0, r.code)
	assert.Equal(t, "[2022-09-02,2022-10-03]\n", r.stdout)
}

func TestCheckJSON(t *testing.T) {
	r := runCLI(t, "", "--format", "json", "check", "bit(1)", "1", "101")
	assert.Equal(t, 1, r.code)

	var results []checkResult
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &results))
	assert.Equal(t, []checkResult{
		{Input: "1", Valid: true, Canonical: "1"},
		{Input: "101", Issue: "invalid_n_length", Message: "Bit string length must be exactly 1, received 3"},
	}, results)
}

func TestCheckYAML(t *testing.T) {
	r := runCLI(t, "", "-f", "yaml", "check", "int4[]", "{1, 2}")
	assert.Equal(t, 0, r.code)

	var results []checkResult
	require.NoError(t, yaml.Unmarshal([]byte(r.stdout), &results))
	assert.Equal(t, []checkResult{{Input: "{1, 2}", Valid: true, Canonical: "{1,2}"}}, results)
}

func TestCheckReadsStdin(t *testing.T) {
	r := runCLI(t, "1\n2\n", "check", "int8")
	assert.Equal(t, 0, r.code)
	assert.Equal(t, "1\n2\n", r.stdout)
}

func TestCheckUnknownType(t *testing.T) {
	r := runCLI(t, "", "check", "hstore", "a=>1")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stderr, "unknown type")
}

func TestConfigFile(t *testing.T) {
	path := writeConfig(t, `
server_version = "13.4"
format = "json"

[log]
level = "debug"
backend = "logrus"
`)

	r := runCLI(t, "", "--config", path, "check", "int4multirange", "{}")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stderr, "unknown type")

	r = runCLI(t, "", "--config", path, "--server-version", "14", "--format", "text", "check", "int4multirange", "{[1,3)}")
	assert.Equal(t, 0, r.code)
	assert.Equal(t, "{[1,3)}\n", r.stdout)
	assert.Contains(t, r.stderr, "Parse")
}

func TestConfigFileErrors(t *testing.T) {
	r := runCLI(t, "", "--config", writeConfig(t, `colour = "blue"`), "types")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stderr, "unknown keys colour")

	r = runCLI(t, "", "--config", writeConfig(t, `format = `), "types")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stderr, "read config")

	r = runCLI(t, "", "--format", "xml", "types")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stderr, `unknown format "xml"`)

	r = runCLI(t, "", "--log-level", "loud", "types")
	assert.Equal(t, 2, r.code)

	r = runCLI(t, "", "--log-backend", "syslog", "types")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stderr, "unknown log backend")
}

func TestLogBackends(t *testing.T) {
	for _, backend := range []string{"zerolog", "zap", "logrus", "log15", "kitlog"} {
		t.Run(backend, func(t *testing.T) {
			r := runCLI(t, "", "--log-backend", backend, "--log-level", "debug", "check", "uuid", "not-a-uuid")
			assert.Equal(t, 1, r.code)
			assert.Contains(t, r.stderr, "Parse")
			assert.Contains(t, r.stderr, "invalid_string")
		})
	}

	r := runCLI(t, "", "--log-backend", "zerolog", "--log-level", "none", "check", "uuid", "not-a-uuid")
	assert.Equal(t, 1, r.code)
	assert.Empty(t, r.stderr)
}

func TestTypes(t *testing.T) {
	r := runCLI(t, "", "types")
	assert.Equal(t, 0, r.code)
	assert.Contains(t, strings.Split(r.stdout, "\n"), "double precision")

	r = runCLI(t, "", "--server-version", "12", "--format", "json", "types")
	assert.Equal(t, 0, r.code)
	var names []string
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &names))
	assert.Contains(t, names, "int4range")
	assert.NotContains(t, names, "int4multirange")
}

func TestVersion(t *testing.T) {
	r := runCLI(t, "", "version")
	assert.Equal(t, 0, r.code)
	assert.Equal(t, "pgtext "+version+"\n", r.stdout)
}

func TestUsageError(t *testing.T) {
	r := runCLI(t, "", "frobnicate")
	assert.Equal(t, 2, r.code)
	assert.NotEmpty(t, r.stderr)
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocrud/beanlife/controllers"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRun_EnvironmentOverride(t *testing.T) {
	stdout, stderr, err := execute(t, "run", "--env", "Test")
	require.NoError(t, err)

	assert.Contains(t, stdout, "greeting: "+controllers.InjectedGreeting)
	assert.Contains(t, stdout, "environment: You are in Test Environment")

	// 生命周期标记写入日志
	for _, marker := range []string{"1. constructor", "3. beanName : myController", "10. postProcessAfter", "12. destroy"} {
		assert.Contains(t, stderr, marker)
	}
}

func TestRootDefaultsToRun(t *testing.T) {
	stdout, _, err := execute(t, "--env", "production")
	require.NoError(t, err)
	assert.Contains(t, stdout, "environment: You are in prod Environment")
}

func TestRun_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beanlife.yaml")
	content := "app:\n  environment: qa\nbean:\n  name: otherController\nlogging:\n  format: json\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	stdout, stderr, err := execute(t, "run", "--config", path)
	require.NoError(t, err)

	assert.Contains(t, stdout, "You are in qa Environment")
	assert.Contains(t, stderr, `"3. beanName : otherController"`)
	// 名称不是 myController 时不输出 postProcessAfter
	assert.NotContains(t, stderr, "10. postProcessAfter")
}

func TestRun_MissingExplicitConfig(t *testing.T) {
	_, _, err := execute(t, "run", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRun_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beanlife.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0o644))

	_, _, err := execute(t, "run", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Logging.Level")
}

func TestStages(t *testing.T) {
	stdout, _, err := execute(t, "stages")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, "1. constructor", lines[0])
	assert.Equal(t, "7. postProcessBefore", lines[5])
	assert.Equal(t, "inUse", lines[9])
	assert.Equal(t, "12. destroy", lines[11])
}

func TestRun_EnvironmentVariableKeepsText(t *testing.T) {
	for _, env := range []string{"T", "007"} {
		t.Run(env, func(t *testing.T) {
			t.Setenv("BEANLIFE_APP_ENVIRONMENT", env)

			stdout, _, err := execute(t, "run")
			require.NoError(t, err)
			assert.Contains(t, stdout, "environment: You are in "+env+" Environment")
		})
	}
}

package cli_test

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"taskman/internal/backend/httpapi"
	"taskman/internal/cli"
	"taskman/internal/commands"
	"taskman/internal/config"
	"taskman/internal/exitcode"
	"taskman/internal/service"
	"taskman/internal/testutil"
)

// testFactory creates a service factory that returns the given FakeService.
func testFactory(svc *testutil.FakeService) cli.ServiceFactory {
	return func(ctx context.Context, cfg *config.Config, log zerolog.Logger) (service.Service, error) {
		return svc, nil
	}
}

// run dispatches args with an isolated config dir. args[0] is the command.
func run(t *testing.T, d *cli.Dispatcher, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	full := append([]string{args[0], "--config", t.TempDir()}, args[1:]...)
	code = d.Run(context.Background(), full, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeService()))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"unknowncmd"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeService()))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"--quiet"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_HelpCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeService()))

	stdout, stderr, code := run(t, dispatcher, "help")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, "Usage:") {
		t.Error("expected help output to contain 'Usage:'")
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeService()))

	stdout, stderr, code := run(t, dispatcher, "version")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "taskman 0.1.0\n" {
		t.Errorf("expected 'taskman 0.1.0\\n', got %q", stdout)
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeService()))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"help", "--unknown"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -unknown\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_MissingFlagValue(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeService()))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"list", "--api"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: flag needs an argument: -api\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_ListUsesFactory(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("1", "Buy milk", service.StatusTodo)
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(svc))

	stdout, _, code := run(t, dispatcher, "ls")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	expected := "   1  [TODO]         Buy milk\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestDispatcher_APIFlagOverridesEnv(t *testing.T) {
	t.Setenv("TASKMAN_API_URL", "http://from-env:1")

	var got string
	factory := func(ctx context.Context, cfg *config.Config, log zerolog.Logger) (service.Service, error) {
		got = cfg.BaseURL()
		return testutil.NewFakeService(), nil
	}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	if _, _, code := run(t, dispatcher, "list"); code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if got != "http://from-env:1" {
		t.Errorf("expected env address, got %q", got)
	}

	if _, _, code := run(t, dispatcher, "list", "--api", "http://from-flag:2"); code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if got != "http://from-flag:2" {
		t.Errorf("expected flag address, got %q", got)
	}
}

func TestDispatcher_FactoryError(t *testing.T) {
	factory := func(ctx context.Context, cfg *config.Config, log zerolog.Logger) (service.Service, error) {
		return nil, errors.New("bad address")
	}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	_, stderr, code := run(t, dispatcher, "list")

	if code != exitcode.ConfigError {
		t.Errorf("expected exit code %d, got %d", exitcode.ConfigError, code)
	}
	if stderr != "error: bad address\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestDispatcher_DebugLogsToStderr(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.ListTasksErr = errors.New("connection refused")
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(svc))

	_, stderr, code := run(t, dispatcher, "list", "--debug")

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if !strings.Contains(stderr, "connection refused") {
		t.Errorf("expected logged cause in stderr, got %q", stderr)
	}
	if !strings.HasSuffix(stderr, "error: Failed to fetch tasks\n") {
		t.Errorf("expected failure message last, got %q", stderr)
	}
}

func TestDispatcher_BackendNotNeeded(t *testing.T) {
	factory := func(ctx context.Context, cfg *config.Config, log zerolog.Logger) (service.Service, error) {
		t.Error("factory should not be called for version")
		return nil, nil
	}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	if _, _, code := run(t, dispatcher, "version"); code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
}

// TestDispatcher_EndToEnd drives the CLI through the HTTP client against a
// fake REST server.
func TestDispatcher_EndToEnd(t *testing.T) {
	fake := testutil.NewFakeServer()
	next := 0
	fake.NewID = func() string {
		next++
		return strconv.Itoa(next)
	}
	srv := fake.Start(t)

	factory := func(ctx context.Context, cfg *config.Config, log zerolog.Logger) (service.Service, error) {
		return httpapi.New(cfg.BaseURL(), log)
	}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	steps := []struct {
		args []string
		out  string
	}{
		{[]string{"add", "Buy milk"}, "ok\n"},
		{[]string{"list", "--ids"}, "1\tTODO\tBuy milk\n"},
		{[]string{"done", "1"}, "ok\n"},
		{[]string{"list"}, "   1  [DONE]         Buy milk\n"},
		{[]string{"rm", "--id", "1"}, "ok\n"},
		{[]string{"list"}, "No tasks yet.\n"},
	}
	for _, step := range steps {
		args := append([]string{step.args[0], "--api", srv.URL}, step.args[1:]...)
		stdout, stderr, code := run(t, dispatcher, args...)
		if code != exitcode.Success {
			t.Fatalf("%v: expected exit code %d, got %d (stderr %q)", step.args, exitcode.Success, code, stderr)
		}
		if stdout != step.out {
			t.Errorf("%v: expected %q, got %q", step.args, step.out, stdout)
		}
	}

	if len(fake.Tasks()) != 0 {
		t.Errorf("expected server to be empty, got %+v", fake.Tasks())
	}
}

func TestDispatcher_EndToEndServerFailure(t *testing.T) {
	fake := testutil.NewFakeServer()
	fake.FailStatus = 500
	srv := fake.Start(t)

	factory := func(ctx context.Context, cfg *config.Config, log zerolog.Logger) (service.Service, error) {
		return httpapi.New(cfg.BaseURL(), log)
	}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	_, stderr, code := run(t, dispatcher, "list", "--api", srv.URL)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if stderr != "error: Failed to fetch tasks\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

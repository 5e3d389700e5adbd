package dispatcher

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"slices"
	"strings"
	"testing"

	"github.com/AntonioJCosta/kzsh/internal/adapters/tokenizer"
	"github.com/AntonioJCosta/kzsh/internal/core/domain/process"
	"github.com/AntonioJCosta/kzsh/internal/core/ports"
	"github.com/AntonioJCosta/kzsh/internal/core/testutil"
	"github.com/AntonioJCosta/kzsh/internal/repositories/aliastable"
	"github.com/AntonioJCosta/kzsh/internal/repositories/history"
	"github.com/google/go-cmp/cmp"
)

type harness struct {
	svc      *service
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	history  ports.HistoryLog
	aliases  ports.AliasTable
	env      *testutil.MapEnv
	launcher *testutil.MockProcessLauncher
	scripts  *testutil.MockScriptLoader
	cwd      string
}

func newHarness(t *testing.T, historyCapacity int) *harness {
	t.Helper()
	h := &harness{
		stdout:  &bytes.Buffer{},
		stderr:  &bytes.Buffer{},
		history: history.NewRingLog(historyCapacity),
		aliases: aliastable.NewAliasTable(aliastable.DefaultCapacity),
		env:     testutil.NewMapEnv("HOME", "/home/tester", "PATH", "/usr/bin"),
		launcher: &testutil.MockProcessLauncher{
			LaunchFunc: func(program string, argv []string) (process.Result, error) {
				return process.Result{}, &launchErr{program: program, err: exec.ErrNotFound}
			},
			LookPathFunc: func(program string) (string, error) {
				return "", exec.ErrNotFound
			},
		},
		scripts: &testutil.MockScriptLoader{Files: map[string][]string{}},
		cwd:     "/home/tester",
	}
	svc := NewService(Dependencies{
		Tokenizer: tokenizer.NewWordTokenizer(tokenizer.DefaultMaxLineBytes, tokenizer.DefaultMaxArgs),
		Aliases:   h.aliases,
		History:   h.history,
		Env:       h.env,
		Launcher:  h.launcher,
		Scripts:   h.scripts,
	}, Options{
		Stdout: h.stdout,
		Stderr: h.stderr,
		Banner: "kzsh-1.2.3",
	}).(*service)
	svc.getwd = func() (string, error) { return h.cwd, nil }
	svc.chdir = func(dir string) error {
		if strings.HasPrefix(dir, "/missing") {
			return &fs.PathError{Op: "chdir", Path: dir, Err: fs.ErrNotExist}
		}
		h.cwd = dir
		return nil
	}
	h.svc = svc
	return h
}

// launchErr mimics the launcher's error shape: the program name wrapping
// the OS reason.
type launchErr struct {
	program string
	err     error
}

func (e *launchErr) Error() string { return fmt.Sprintf("%s: %v", e.program, e.err) }
func (e *launchErr) Unwrap() error { return e.err }

func (h *harness) eval(t *testing.T, lines ...string) int {
	t.Helper()
	status := 0
	for _, line := range lines {
		var err error
		status, err = h.svc.Eval(line)
		if err != nil {
			t.Fatalf("Eval(%q) error = %v", line, err)
		}
	}
	return status
}

func (h *harness) historyLines() []string {
	var out []string
	for _, line := range h.history.All() {
		out = append(out, line)
	}
	return out
}

func (h *harness) resetOutput() {
	h.stdout.Reset()
	h.stderr.Reset()
}

func TestNewService_PanicsOnNilDependency(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewService() did not panic with nil dependencies")
		}
	}()
	NewService(Dependencies{}, Options{})
}

func TestEval_BlankLines(t *testing.T) {
	h := newHarness(t, 10)
	for _, line := range []string{"", "  ", "\n", "\r\n", " \t \n"} {
		if status := h.eval(t, line); status != 0 {
			t.Errorf("Eval(%q) = %d, want 0", line, status)
		}
	}
	if h.history.Len() != 0 {
		t.Errorf("history has %d entries after blank lines, want 0", h.history.Len())
	}
	if h.stdout.Len() != 0 || len(h.launcher.LaunchCalls) != 0 {
		t.Error("blank lines produced output or launched a process")
	}
}

func TestTrimLine(t *testing.T) {
	for _, line := range []string{"ls", "ls\n", "ls\r\n", "ls\r", "echo a b  \n", ""} {
		once := TrimLine(line)
		if strings.HasSuffix(once, "\n") || strings.HasSuffix(once, "\r") {
			t.Errorf("TrimLine(%q) = %q still ends in a terminator", line, once)
		}
		if twice := TrimLine(once); twice != once {
			t.Errorf("TrimLine not idempotent for %q: %q then %q", line, once, twice)
		}
	}
	if got := TrimLine("echo hi\r\n"); got != "echo hi" {
		t.Errorf("TrimLine() = %q, want %q", got, "echo hi")
	}
}

func TestEval_RecordsHistoryEvenForUnknownCommands(t *testing.T) {
	h := newHarness(t, 10)
	h.eval(t, "zzqx", "echo hi\n", "alias")

	want := []string{"zzqx", "echo hi", "alias"}
	if diff := cmp.Diff(want, h.historyLines()); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
}

func TestEval_HistoryEviction(t *testing.T) {
	const capacity = 5
	h := newHarness(t, capacity)
	for i := 1; i <= capacity+1; i++ {
		h.eval(t, fmt.Sprintf("true %d", i))
	}

	got := h.historyLines()
	if len(got) != capacity {
		t.Fatalf("history has %d entries, want %d", len(got), capacity)
	}
	if got[0] != "true 2" || got[capacity-1] != "true 6" {
		t.Errorf("history = %v, want oldest evicted and newest last", got)
	}
}

func TestEval_UnknownCommand(t *testing.T) {
	h := newHarness(t, 10)
	status := h.eval(t, "zzqx --flag")

	if status == 0 {
		t.Error("Eval(unknown) returned 0")
	}
	if status != StatusNotFound {
		t.Errorf("Eval(unknown) = %d, want %d", status, StatusNotFound)
	}
	if got := h.stdout.String(); got != "Unknown command: zzqx\n" {
		t.Errorf("stdout = %q", got)
	}
	if h.stderr.Len() != 0 {
		t.Errorf("stderr = %q, want empty", h.stderr.String())
	}
}

func TestEval_LaunchFailure(t *testing.T) {
	h := newHarness(t, 10)
	h.launcher.LaunchFunc = func(program string, argv []string) (process.Result, error) {
		return process.Result{}, &launchErr{program: program, err: fs.ErrPermission}
	}

	status := h.eval(t, "./script.sh")
	if status != StatusCannotExecute {
		t.Errorf("status = %d, want %d", status, StatusCannotExecute)
	}
	if got, want := h.stderr.String(), "kzsh: ./script.sh: permission denied\n"; got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
	if got := h.stdout.String(); got != "Unknown command: ./script.sh\n" {
		t.Errorf("stdout = %q", got)
	}
}

func TestEval_ExternalCommand(t *testing.T) {
	h := newHarness(t, 10)
	h.launcher.LaunchFunc = func(program string, argv []string) (process.Result, error) {
		switch program {
		case "grep":
			return process.Result{ExitCode: 1, TerminatedNormally: true}, nil
		case "sleep":
			return process.Result{ExitCode: process.AbnormalExit, Signal: "SIGINT"}, nil
		}
		return process.Result{TerminatedNormally: true}, nil
	}

	if got := h.eval(t, "ls -la /tmp"); got != 0 {
		t.Errorf("ls status = %d, want 0", got)
	}
	if got := h.eval(t, "grep nothing"); got != 1 {
		t.Errorf("grep status = %d, want 1", got)
	}
	if got := h.eval(t, "sleep 100"); got != process.AbnormalExit {
		t.Errorf("sleep status = %d, want %d", got, process.AbnormalExit)
	}

	want := [][]string{{"ls", "-la", "/tmp"}, {"grep", "nothing"}, {"sleep", "100"}}
	if diff := cmp.Diff(want, h.launcher.LaunchCalls); diff != "" {
		t.Errorf("launch calls mismatch (-want +got):\n%s", diff)
	}
}

func TestEval_AliasLifecycle(t *testing.T) {
	h := newHarness(t, 10)
	h.eval(t, "alias ll 'ls -la'")
	h.resetOutput()

	h.eval(t, "alias")
	if got := h.stdout.String(); got != "alias ll='ls -la'\n" {
		t.Errorf("alias listing = %q", got)
	}

	h.resetOutput()
	h.eval(t, "unalias ll", "alias")
	if got := h.stdout.String(); got != "" {
		t.Errorf("alias listing after unalias = %q, want empty", got)
	}
}

func TestEval_AliasShadowsBuiltin(t *testing.T) {
	h := newHarness(t, 10)
	h.launcher.LaunchFunc = func(string, []string) (process.Result, error) {
		return process.Result{TerminatedNormally: true}, nil
	}
	h.eval(t, "alias echo printf")
	h.resetOutput()

	h.eval(t, "echo hello")
	if diff := cmp.Diff([][]string{{"printf", "hello"}}, h.launcher.LaunchCalls); diff != "" {
		t.Errorf("launch calls mismatch (-want +got):\n%s", diff)
	}
	if h.stdout.Len() != 0 {
		t.Errorf("builtin echo ran: stdout = %q", h.stdout.String())
	}
}

func TestEval_MultiWordAliasStaysOneToken(t *testing.T) {
	h := newHarness(t, 10)
	h.eval(t, "alias ll 'ls -la'", "ll /tmp")

	want := [][]string{{"ls -la", "/tmp"}}
	if diff := cmp.Diff(want, h.launcher.LaunchCalls); diff != "" {
		t.Errorf("launch calls mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(h.stdout.String(), "Unknown command: ls -la\n") {
		t.Errorf("stdout = %q", h.stdout.String())
	}
}

func TestEval_AliasExpandingToMetaCommand(t *testing.T) {
	h := newHarness(t, 10)
	h.eval(t, "alias h history")
	h.resetOutput()

	h.eval(t, "h")
	if !strings.Contains(h.stdout.String(), "1: alias h history\n") {
		t.Errorf("expanded alias did not reach the history meta-command: %q", h.stdout.String())
	}
}

func TestEval_ExportEnvUnset(t *testing.T) {
	h := newHarness(t, 10)
	h.eval(t, "export FOO=bar=baz", "env")
	if !slices.Contains(strings.Split(h.stdout.String(), "\n"), "FOO=bar=baz") {
		t.Errorf("env output missing FOO: %q", h.stdout.String())
	}

	h.resetOutput()
	h.eval(t, "unset FOO", "env")
	if strings.Contains(h.stdout.String(), "FOO=") {
		t.Errorf("env output still has FOO: %q", h.stdout.String())
	}
}

func TestEval_EnvIsSorted(t *testing.T) {
	h := newHarness(t, 10)
	h.eval(t, "export B=2", "export A=1", "env")

	lines := strings.Split(strings.TrimSuffix(h.stdout.String(), "\n"), "\n")
	if !slices.IsSorted(lines) {
		t.Errorf("env output not sorted: %v", lines)
	}
}

func TestEval_MetaArity(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantLaunch []string
	}{
		{name: "export without equals is a no-op", line: "export FOO"},
		{name: "history with args is ignored", line: "history 5"},
		{name: "export with two args is ignored", line: "export A=1 B=2"},
		{name: "unset without args is ignored", line: "unset"},
		{name: "unalias without args is ignored", line: "unalias"},
		{name: "unalias with two args is ignored", line: "unalias a b"},
		{name: "env with args runs the program", line: "env -i", wantLaunch: []string{"env", "-i"}},
		{name: "alias with one arg only lists", line: "alias x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, 10)
			status := h.eval(t, tt.line)
			if tt.wantLaunch == nil {
				if status != 0 {
					t.Errorf("status = %d, want 0", status)
				}
				if h.stdout.Len() != 0 || h.stderr.Len() != 0 {
					t.Errorf("output = %q / %q, want none", h.stdout.String(), h.stderr.String())
				}
			}

			var want [][]string
			if tt.wantLaunch != nil {
				want = [][]string{tt.wantLaunch}
			}
			if diff := cmp.Diff(want, h.launcher.LaunchCalls); diff != "" {
				t.Errorf("launch calls mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEval_AliasTableFullIsSilent(t *testing.T) {
	h := newHarness(t, 10)
	h.svc.aliases = aliastable.NewAliasTable(1)
	h.eval(t, "alias a 1")
	h.resetOutput()

	if status := h.eval(t, "alias b 2"); status != 0 {
		t.Errorf("status = %d, want 0", status)
	}
	if got := h.stdout.String(); got != "alias a='1'\n" {
		t.Errorf("alias listing = %q", got)
	}
	if h.stderr.Len() != 0 {
		t.Errorf("stderr = %q, want empty", h.stderr.String())
	}
}

func TestEval_ExitRequest(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"exit", 0},
		{"exit 3", 3},
		{"exit abc", 0},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			h := newHarness(t, 10)
			status, err := h.svc.Eval(tt.line)
			req, ok := AsExitRequest(err)
			if !ok {
				t.Fatalf("Eval(%q) error = %v, want an exit request", tt.line, err)
			}
			if req.Code != tt.want || status != tt.want {
				t.Errorf("exit code = %d (status %d), want %d", req.Code, status, tt.want)
			}
			if len(h.launcher.LaunchCalls) != 0 {
				t.Error("exit reached the launcher")
			}
		})
	}
}

func TestAsExitRequest(t *testing.T) {
	if _, ok := AsExitRequest(errors.New("boom")); ok {
		t.Error("AsExitRequest() matched a plain error")
	}
	wrapped := fmt.Errorf("sourcing: %w", &ExitRequest{Code: 4})
	if req, ok := AsExitRequest(wrapped); !ok || req.Code != 4 {
		t.Errorf("AsExitRequest(wrapped) = %v, %v", req, ok)
	}
}

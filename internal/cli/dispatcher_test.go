package cli

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/portadev/porta-cli/internal/options"
)

type recordingHandler struct {
	store *options.Store
	err   error
	ran   *bool
}

func (h *recordingHandler) Run() error {
	*h.ran = true
	return h.err
}

type testEnv struct {
	stdout, stderr bytes.Buffer
	ran            bool
	store          *options.Store
}

func newTestDispatcher(t *testing.T, handlerErr error) (*Dispatcher, *testEnv) {
	t.Helper()
	env := &testEnv{}

	greet := &Spec{
		Name:  "greet",
		Flags: []Flag{{Key: "name", Usage: "who to greet"}},
	}
	help := &Spec{Name: "help"}

	registry := Registry{
		"greet": {Spec: greet, New: func(st *options.Store) Handler {
			env.store = st
			return &recordingHandler{store: st, err: handlerErr, ran: &env.ran}
		}},
		"help": {Spec: help, New: func(st *options.Store) Handler {
			env.store = st
			ran := false
			fmt.Fprintln(&env.stdout, "Commands:\n  greet\n  help")
			return &recordingHandler{store: st, ran: &ran}
		}},
	}

	defaults := map[string]any{"porta_dir": "/work/porta", "explain": false, "verbose": false, "name": "world"}
	settings := map[string]any{"name": "porta"}
	return NewDispatcher(registry, defaults, settings, &env.stdout, &env.stderr), env
}

func TestDispatch_RunsCommand(t *testing.T) {
	d, env := newTestDispatcher(t, nil)

	if code := d.Dispatch([]string{"greet", "--name=dev"}); code != 0 {
		t.Fatalf("code = %d, want 0", code)
	}
	if !env.ran {
		t.Error("handler did not run")
	}
	if got := env.store.String("name"); got != "dev" {
		t.Errorf("name = %q, want dev (flag beats settings)", got)
	}
}

func TestDispatch_SettingsOverrideDefaults(t *testing.T) {
	d, env := newTestDispatcher(t, nil)

	d.Dispatch([]string{"greet"})
	if got := env.store.String("name"); got != "porta" {
		t.Errorf("name = %q, want porta (settings beat defaults)", got)
	}
	if got := env.store.String("porta_dir"); got != "/work/porta" {
		t.Errorf("porta_dir = %q", got)
	}
}

func TestDispatch_CaseInsensitive(t *testing.T) {
	d, env := newTestDispatcher(t, nil)

	if code := d.Dispatch([]string{"GREET"}); code != 0 {
		t.Fatalf("code = %d, want 0", code)
	}
	if !env.ran {
		t.Error("case-folded name did not dispatch")
	}
}

func TestDispatch_UnknownCommandShowsHelp(t *testing.T) {
	d, env := newTestDispatcher(t, nil)

	if code := d.Dispatch([]string{"bogus"}); code != 0 {
		t.Fatalf("code = %d, want 0 (help fallback)", code)
	}
	if !strings.Contains(env.stdout.String(), "greet") {
		t.Errorf("catalogue not printed: %q", env.stdout.String())
	}
	if env.ran {
		t.Error("unknown name must not run a real command")
	}
}

func TestDispatch_NoArgsShowsHelp(t *testing.T) {
	d, env := newTestDispatcher(t, nil)

	if code := d.Dispatch(nil); code != 0 {
		t.Fatalf("code = %d, want 0", code)
	}
	if !strings.Contains(env.stdout.String(), "Commands:") {
		t.Errorf("catalogue not printed: %q", env.stdout.String())
	}
}

func TestDispatch_ParseErrorExitsTwo(t *testing.T) {
	d, env := newTestDispatcher(t, nil)

	if code := d.Dispatch([]string{"greet", "--bogus"}); code != 2 {
		t.Fatalf("code = %d, want 2", code)
	}
	if !strings.Contains(env.stderr.String(), "unknown flag") {
		t.Errorf("stderr = %q", env.stderr.String())
	}
	if env.ran {
		t.Error("handler must not run after a parse error")
	}
}

func TestDispatch_HandlerFailureExitsOne(t *testing.T) {
	d, env := newTestDispatcher(t, errors.New("step failed"))

	if code := d.Dispatch([]string{"greet"}); code != 1 {
		t.Fatalf("code = %d, want 1", code)
	}
	if !strings.Contains(env.stderr.String(), "step failed") {
		t.Errorf("stderr = %q", env.stderr.String())
	}
}

func TestDispatch_HandlerExitErrorPropagates(t *testing.T) {
	d, _ := newTestDispatcher(t, &ExitError{Code: 3})

	if code := d.Dispatch([]string{"greet"}); code != 3 {
		t.Fatalf("code = %d, want 3", code)
	}
}

func TestDispatch_HelpFlagExitsZero(t *testing.T) {
	d, env := newTestDispatcher(t, nil)

	if code := d.Dispatch([]string{"greet", "--help"}); code != 0 {
		t.Fatalf("code = %d, want 0", code)
	}
	if !strings.Contains(env.stdout.String(), "Usage: porta greet") {
		t.Errorf("stdout = %q", env.stdout.String())
	}
	if env.ran {
		t.Error("handler must not run when help was requested")
	}
}

package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
)

type fakePages struct {
	loggedIn bool

	calls []string
	ids   []string
}

func (f *fakePages) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}
func (f *fakePages) recordID(name, id string) error {
	f.calls = append(f.calls, name)
	f.ids = append(f.ids, id)
	return nil
}

func (f *fakePages) isLoggedIn() bool { return f.loggedIn }

func (f *fakePages) Login(context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakePages) Register(context.Context) error { return f.record("register") }
func (f *fakePages) Logout(context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakePages) WhoAmI(context.Context) error { return f.record("whoami") }

func (f *fakePages) Jobs(context.Context) error                   { return f.record("jobs") }
func (f *fakePages) Job(_ context.Context, id string) error       { return f.recordID("job", id) }
func (f *fakePages) AddJob(context.Context) error                 { return f.record("addjob") }
func (f *fakePages) EditJob(_ context.Context, id string) error   { return f.recordID("editjob", id) }
func (f *fakePages) DeleteJob(_ context.Context, id string) error { return f.recordID("deljob", id) }

func (f *fakePages) Categories(context.Context) error            { return f.record("categories") }
func (f *fakePages) Category(_ context.Context, id string) error { return f.recordID("cat", id) }
func (f *fakePages) AddCategory(context.Context) error           { return f.record("addcat") }
func (f *fakePages) EditCategory(_ context.Context, id string) error {
	return f.recordID("editcat", id)
}
func (f *fakePages) DeleteCategory(_ context.Context, id string) error {
	return f.recordID("delcat", id)
}

func (f *fakePages) Favourites(context.Context) error { return f.record("favs") }
func (f *fakePages) ToggleFavourite(_ context.Context, id string) error {
	return f.recordID("fav", id)
}

func (f *fakePages) Profile(context.Context) error          { return f.record("profile") }
func (f *fakePages) EditPersonalInfo(context.Context) error { return f.record("editinfo") }
func (f *fakePages) AddExperience(context.Context) error    { return f.record("addexp") }
func (f *fakePages) AddEducation(context.Context) error     { return f.record("addedu") }
func (f *fakePages) EditSkills(context.Context) error       { return f.record("skills") }
func (f *fakePages) EditLanguages(context.Context) error    { return f.record("languages") }
func (f *fakePages) EditOverview(context.Context) error     { return f.record("overview") }
func (f *fakePages) EditCVResume(context.Context) error     { return f.record("cv") }

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"jobs",
		"job 42",
		"fav 42",
		"favs",
		"profile",
		"foobar",
		"exit",
	}, "\n"))

	p := &fakePages{}
	var out bytes.Buffer
	runREPL(context.Background(), p, func() string { return "(s)" }, bufio.NewScanner(input), &out)

	want := []string{"login", "jobs", "job", "fav", "favs", "profile"}
	if len(p.calls) != len(want) {
		t.Fatalf("calls mismatch: got %v, want %v", p.calls, want)
	}
	for i := range want {
		if p.calls[i] != want[i] {
			t.Fatalf("calls mismatch: got %v, want %v", p.calls, want)
		}
	}
	if len(p.ids) != 2 || p.ids[0] != "42" || p.ids[1] != "42" {
		t.Fatalf("ids mismatch: %v", p.ids)
	}
	if !strings.Contains(out.String(), "Unknown command: foobar") {
		t.Fatalf("missing unknown-command notice: %q", out.String())
	}
	if !strings.Contains(out.String(), "Bye!") {
		t.Fatalf("missing goodbye: %q", out.String())
	}
}

func TestRunREPL_HelpDependsOnState(t *testing.T) {
	input := strings.NewReader("help\nexit\n")
	p := &fakePages{loggedIn: false}
	var out bytes.Buffer
	runREPL(context.Background(), p, func() string { return "" }, bufio.NewScanner(input), &out)
	if !strings.Contains(out.String(), helpSignedOut) {
		t.Fatalf("expected signed-out help, got %q", out.String())
	}

	input = strings.NewReader("help\nexit\n")
	p = &fakePages{loggedIn: true}
	out.Reset()
	runREPL(context.Background(), p, func() string { return "" }, bufio.NewScanner(input), &out)
	if !strings.Contains(out.String(), "logout") {
		t.Fatalf("expected signed-in help, got %q", out.String())
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	input := strings.NewReader("job\ndelcat\nquit\n")
	p := &fakePages{loggedIn: true}
	var out bytes.Buffer
	runREPL(context.Background(), p, func() string { return "" }, bufio.NewScanner(input), &out)

	if len(p.calls) != 0 {
		t.Fatalf("unexpected calls: %v", p.calls)
	}
	if !strings.Contains(out.String(), "usage: job <id>") {
		t.Fatalf("missing usage line: %q", out.String())
	}
}

func TestRunREPL_EOFEndsLoop(t *testing.T) {
	input := strings.NewReader("jobs\n")
	p := &fakePages{loggedIn: true}
	var out bytes.Buffer
	runREPL(context.Background(), p, func() string { return "" }, bufio.NewScanner(input), &out)
	if len(p.calls) != 1 || p.calls[0] != "jobs" {
		t.Fatalf("calls: %v", p.calls)
	}
}

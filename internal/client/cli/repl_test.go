package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	failOn   string

	calls []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	if name == f.failOn {
		return errors.New(name + " failed")
	}
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.loggedIn = true
	return f.record("register")
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Profile(ctx context.Context) error       { return f.record("profile") }
func (f *fakeExec) UpdateProfile(ctx context.Context) error { return f.record("update") }
func (f *fakeExec) CreateStore(ctx context.Context) error   { return f.record("createstore") }
func (f *fakeExec) AddCategory(ctx context.Context) error   { return f.record("addcategory") }
func (f *fakeExec) Categories(ctx context.Context) error    { return f.record("categories") }
func (f *fakeExec) Status(ctx context.Context) error        { return f.record("status") }
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	out := captureOutput(t)

	input := strings.Join([]string{
		"help",
		"register",
		"help",
		"",
		"createstore",
		"addcategory",
		"addcategory",
		"categories",
		"profile",
		"update",
		"status",
		"foobar",
		"logout",
		"exit",
		"login",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "(guest)" }, rdr(input))

	assert.Equal(t, []string{
		"register", "createstore", "addcategory", "addcategory", "categories",
		"profile", "update", "status", "logout",
	}, exec.calls, "commands after exit must not run")

	joined := strings.Join(*out, "\n")
	assert.Contains(t, joined, "Available commands: register, login, status, exit")
	assert.Contains(t, joined, "Available commands: profile, update, createstore")
	assert.Contains(t, joined, "Unknown command: foobar")
	assert.Contains(t, joined, "sf> (guest) > ")
	assert.Contains(t, joined, "Bye!")
}

func TestRunREPL_PrintsCommandErrors(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{failOn: "addcategory"}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("addcategory\nstatus\n"))

	assert.Equal(t, []string{"addcategory", "status"}, exec.calls)
	assert.Contains(t, *out, "Error: addcategory failed")
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	captureOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("status"))

	assert.Equal(t, []string{"status"}, exec.calls)
}

package cli

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	calls []string
}

func (f *fakeExec) record(s string) error {
	f.calls = append(f.calls, s)
	return nil
}

func (f *fakeExec) List(ctx context.Context, term string) error { return f.record("list:" + term) }
func (f *fakeExec) Show(ctx context.Context, id string) error   { return f.record("show:" + id) }
func (f *fakeExec) Add(ctx context.Context) error               { return f.record("add") }
func (f *fakeExec) Edit(ctx context.Context, id string) error   { return f.record("edit:" + id) }
func (f *fakeExec) Delete(ctx context.Context, id string) error { return f.record("delete:" + id) }
func (f *fakeExec) Login(ctx context.Context) error             { return f.record("login") }
func (f *fakeExec) Logout(ctx context.Context) error            { return f.record("logout") }
func (f *fakeExec) Export(ctx context.Context, path, term string) error {
	return f.record("export:" + path + ":" + term)
}

func silence(t *testing.T) *[]string {
	t.Helper()
	var printed []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		printed = append(printed, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &printed
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	printed := silence(t)

	input := strings.Join([]string{
		"help",
		"login",
		"list",
		"l soup",
		"search tomato soup",
		"show 42",
		"add",
		"edit 7",
		"delete 7",
		"export out.xlsx soup",
		"logout",
		"foobar",
		"exit",
		"list",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, rdr(input), false)

	require.Equal(t, []string{
		"login", "list:", "list:soup", "list:tomato soup", "show:42", "add",
		"edit:7", "delete:7", "export:out.xlsx:soup", "logout",
	}, exec.calls, "nothing runs after exit")
	require.Contains(t, *printed, "Unknown command: foobar")
	require.Contains(t, *printed, "Bye!")
}

func TestRunREPL_UsageErrorsAndEOF(t *testing.T) {
	printed := silence(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, rdr("show\nedit\ndelete 1 2\nsearch\nexport\n"), false)

	require.Empty(t, exec.calls)
	require.Equal(t, []string{
		"Usage: show <id>",
		"Usage: edit <id>",
		"Usage: delete <id>",
		"Usage: search <term>",
		"Usage: export <file.xlsx|file.csv> [term]",
	}, *printed)
}

func TestRunREPL_StopsWhenContextDone(t *testing.T) {
	silence(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, rdr("list\n"), false)
	require.Empty(t, exec.calls)
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/astroerik-coder/agrostock/internal/common"
	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	err   error
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return f.err
}
func (f *fakeExec) Register(context.Context) error { return f.record("register") }
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) Categories(context.Context) error  { return f.record("categories") }
func (f *fakeExec) List(context.Context) error        { return f.record("list") }
func (f *fakeExec) AddItem(context.Context) error     { return f.record("add") }
func (f *fakeExec) Profile(context.Context) error     { return f.record("profile") }
func (f *fakeExec) EditProfile(context.Context) error { return f.record("editprofile") }

func capturePrints(t *testing.T) *[]string {
	t.Helper()
	orig := printlnFn
	t.Cleanup(func() { printlnFn = orig })

	lines := &[]string{}
	printlnFn = func(a ...any) (int, error) {
		*lines = append(*lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	return lines
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	lines := capturePrints(t)

	input := strings.Join([]string{
		"help",
		"list",
		"login",
		"help",
		"",
		"categories",
		"l",
		"add",
		"profile",
		"editprofile",
		"foobar",
		"logout",
		"add",
		"exit",
		"register",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "(Ana)" }, rdr(input))

	assert.Equal(t, []string{"login", "categories", "list", "add", "profile", "editprofile", "logout"}, exec.calls)
	assert.Contains(t, *lines, "Comandos: register, login, exit")
	assert.Contains(t, *lines, "Comandos: categories, (l)ist, add, profile, editprofile, logout, exit")
	assert.Contains(t, *lines, "Comando desconocido: foobar")
	assert.Contains(t, *lines, "Inicia sesión primero (login)")
	assert.Contains(t, *lines, "agro (Ana)> ")
	assert.Equal(t, "¡Hasta luego!", (*lines)[len(*lines)-1])
}

func TestRunREPL_GuardedCommandsNeedLogin(t *testing.T) {
	capturePrints(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("categories\nlist\nadd\nprofile\neditprofile\nlogout\nquit\n"))

	assert.Empty(t, exec.calls)
}

func TestRunREPL_ErrorsArePrintedNotFatal(t *testing.T) {
	lines := capturePrints(t)

	exec := &fakeExec{err: common.Auth("Contraseña incorrecta")}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("register\nregister\n"))

	assert.Equal(t, []string{"register", "register"}, exec.calls)
	assert.Contains(t, *lines, "Error: Contraseña incorrecta")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	capturePrints(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("list"))

	assert.Equal(t, []string{"list"}, exec.calls)
}

func TestDescribeError(t *testing.T) {
	assert.Equal(t, "Error: Usuario no encontrado", describeError(common.NotFound("Usuario no encontrado")))
	assert.Equal(t, "Error: la operación tardó demasiado", describeError(fmt.Errorf("x: %w", context.DeadlineExceeded)))
	assert.Equal(t, "Error de almacenamiento: failed to load users: disk full",
		describeError(common.Storage("failed to load users", errors.New("disk full"))))
}

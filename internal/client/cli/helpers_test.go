package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/astroerik-coder/agrostock/internal/client/config"
	"github.com/astroerik-coder/agrostock/internal/client/models"
	"github.com/astroerik-coder/agrostock/internal/logging"
)

// stubInputs makes getSimpleText return answers in order and getPassword
// return password. Prompts are recorded.
func stubInputs(t *testing.T, password string, answers ...string) *[]string {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})

	prompts := &[]string{}
	getSimpleText = func(_ *bufio.Reader, prompt string, _ io.Writer) (string, error) {
		*prompts = append(*prompts, prompt)
		if len(answers) == 0 {
			return "", io.EOF
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	getPassword = func(_ *bufio.Reader, _ io.Writer) ([]byte, error) {
		return []byte(password), nil
	}
	return prompts
}

// ---- fake services ----

type fakeAuth struct {
	regName, regEmail, regPass string
	regErr                     error
	regHadDeadline             bool

	loginEmail, loginPass string
	loginRet              *models.Session
	loginErr              error

	logoutCalled bool
	logoutErr    error

	current    *models.Session
	currentErr error

	updSession        *models.Session
	updName, updEmail string
	updErr            error
}

func (f *fakeAuth) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	f.regName, f.regEmail, f.regPass = name, email, password
	_, f.regHadDeadline = ctx.Deadline()
	if f.regErr != nil {
		return nil, f.regErr
	}
	return &models.User{Name: name, Email: email, PasswordHash: "h"}, nil
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (*models.Session, error) {
	f.loginEmail, f.loginPass = email, password
	return f.loginRet, f.loginErr
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}

func (f *fakeAuth) CurrentSession(context.Context) (*models.Session, error) {
	return f.current, f.currentErr
}

func (f *fakeAuth) UpdateProfile(_ context.Context, s *models.Session, name, email string) (*models.Session, error) {
	f.updSession, f.updName, f.updEmail = s, name, email
	if f.updErr != nil {
		return nil, f.updErr
	}
	next := *s
	next.Name, next.Email = name, email
	return &next, nil
}

type fakeInventory struct {
	categories    []string
	categoriesErr error

	loadCategory string
	loadRet      []models.Item
	loadErr      error

	addCategory string
	addIn       models.NewItem
	addErr      error
}

func (f *fakeInventory) Categories(context.Context) ([]string, error) {
	if f.categories == nil {
		return models.Categories(), f.categoriesErr
	}
	return f.categories, f.categoriesErr
}

func (f *fakeInventory) LoadCategory(_ context.Context, category string) ([]models.Item, error) {
	f.loadCategory = category
	return f.loadRet, f.loadErr
}

func (f *fakeInventory) AddItem(_ context.Context, category string, in models.NewItem) (*models.Item, error) {
	f.addCategory, f.addIn = category, in
	if f.addErr != nil {
		return nil, f.addErr
	}
	return &models.Item{ID: "x1", Name: in.Name, Amount: in.Amount, Unit: in.Unit, Status: in.Status, Icon: models.DefaultIcon}, nil
}

func newTestApp(auth *fakeAuth, inv *fakeInventory) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &App{
		config:           &config.Config{OperationTimeout: 5 * time.Second},
		authService:      auth,
		inventoryService: inv,
		log:              logging.Nop(),
		reader:           bufio.NewReader(strings.NewReader("")),
		out:              out,
	}, out
}

func anaSession() *models.Session {
	return &models.Session{
		User:       models.User{Name: "Ana", Email: "ana@x.com", PasswordHash: "h"},
		LoggedInAt: time.Date(2026, 5, 4, 7, 30, 0, 0, time.UTC),
	}
}

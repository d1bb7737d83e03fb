package cli

import (
	"context"
	"fmt"

	"github.com/astroerik-coder/agrostock/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for name, email and password and creates the account.
// It does not log the new user in.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Nombre", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Correo electrónico", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	u, err := a.authService.Register(ctx, name, email, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Usuario %s registrado. Ahora puedes iniciar sesión.\n", u.Email)
	return nil
}

// Login prompts for credentials and, on success, keeps the returned session
// for the rest of the REPL.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Correo electrónico", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	s, err := a.authService.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	a.session = s
	fmt.Fprintf(a.out, "Bienvenido, %s\n", s.Name)
	return nil
}

// Logout removes the persisted session and forgets the in-memory one.
func (a *App) Logout(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.session = nil
	fmt.Fprintln(a.out, "Sesión cerrada")
	return nil
}

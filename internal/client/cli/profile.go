package cli

import (
	"context"
	"fmt"
	"time"
)

// Profile prints the logged-in user.
func (a *App) Profile(ctx context.Context) error {
	s := a.session
	fmt.Fprintf(a.out, "Nombre: %s\nCorreo: %s\n", s.Name, s.Email)
	if !s.LoggedInAt.IsZero() {
		fmt.Fprintf(a.out, "Sesión desde: %s\n", s.LoggedInAt.Local().Format(time.DateTime))
	}
	return nil
}

// EditProfile prompts for a new name and email; an empty answer keeps the
// current value.
func (a *App) EditProfile(ctx context.Context) error {
	s := a.session

	name, err := getSimpleText(a.reader, fmt.Sprintf("Nombre [%s]", s.Name), a.out)
	if err != nil {
		return err
	}
	if name == "" {
		name = s.Name
	}
	email, err := getSimpleText(a.reader, fmt.Sprintf("Correo electrónico [%s]", s.Email), a.out)
	if err != nil {
		return err
	}
	if email == "" {
		email = s.Email
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	next, err := a.authService.UpdateProfile(ctx, s, name, email)
	if err != nil {
		return err
	}

	a.session = next
	fmt.Fprintln(a.out, "Perfil actualizado")
	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/jobport/adminctl/internal/models"
	"github.com/jobport/adminctl/internal/session"
)

// Prompt seams for tests.
var (
	getLine     = promptLine
	getPassword = promptPassword
)

func (a *App) Login(ctx context.Context) error {
	if !a.navigate(session.RouteLogin) {
		return nil
	}

	email, err := getLine(a.reader, "Email", a.out)
	if err != nil {
		return a.fail(ctx, err)
	}
	password, err := getPassword(a.out)
	if err != nil {
		return a.fail(ctx, err)
	}

	if err := a.session.Login(ctx, models.AuthInput{Email: email, Password: password}); err != nil {
		return a.fail(ctx, err)
	}

	fmt.Fprintf(a.out, "Signed in as %s\n", a.session.User().Email)
	a.navigate(session.RouteHome)
	return nil
}

func (a *App) Register(ctx context.Context) error {
	if !a.navigate(session.RouteRegister) {
		return nil
	}

	email, err := getLine(a.reader, "Email", a.out)
	if err != nil {
		return a.fail(ctx, err)
	}
	password, err := getPassword(a.out)
	if err != nil {
		return a.fail(ctx, err)
	}

	if err := a.session.Register(ctx, models.AuthInput{Email: email, Password: password}); err != nil {
		return a.fail(ctx, err)
	}

	fmt.Fprintf(a.out, "Registered and signed in as %s\n", a.session.User().Email)
	a.navigate(session.RouteHome)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	route := a.session.Logout(ctx)
	a.route = route
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	if !a.navigate(session.RouteProfile) {
		return nil
	}
	u := a.session.User()
	if u == nil {
		fmt.Fprintln(a.out, "not signed in")
		return nil
	}
	fmt.Fprintf(a.out, "%s (%s)\n", u.Email, u.Role)
	return nil
}

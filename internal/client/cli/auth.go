package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) Register(ctx context.Context) error {
	fullName, err := a.prompt("Full name")
	if err != nil {
		return err
	}
	email, err := a.prompt("Email")
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return a.report(err)
	}

	profile, err := a.api.Register(ctx, fullName, email, password)
	if err != nil {
		return a.report(err)
	}

	a.user = &profile
	a.printf("Account created. Welcome, %s!\n", profile.FullName)
	return a.refresh(ctx)
}

func (a *App) Login(ctx context.Context) error {
	email, err := a.prompt("Email")
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return a.report(err)
	}

	profile, err := a.api.Login(ctx, email, password)
	if err != nil {
		return a.report(err)
	}

	a.user = &profile
	a.printf("Welcome back, %s!\n", profile.FullName)
	return a.refresh(ctx)
}

func (a *App) Logout(_ context.Context) error {
	a.api.Logout()
	a.user = nil
	a.shown = nil
	a.store.Clear()
	a.store.SetStories(nil)
	a.printf("Logged out\n")
	return nil
}

// WhoAmI prints the profile of the signed-in user as the server knows it.
func (a *App) WhoAmI(ctx context.Context) error {
	profile, err := a.api.GetUser(ctx)
	if err != nil {
		return a.report(err)
	}

	a.user = &profile
	var b strings.Builder
	fmt.Fprintf(&b, "%s <%s>\n", profile.FullName, profile.Email)
	if !profile.CreatedOn.IsZero() {
		fmt.Fprintf(&b, "member since %s\n", profile.CreatedOn.Local().Format(dateLayout))
	}
	a.printf("%s", b.String())
	return nil
}

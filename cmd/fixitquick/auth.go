package main

import (
	"fmt"

	"github.com/fixitquick/fixitquick"
)

// RegisterCmd creates a new local account and logs it in.
type RegisterCmd struct {
	Username string `arg:"" help:"Display name for the account."`
	Email    string `arg:"" help:"Email address for the account."`
	Password string `help:"Account password." required:"" short:"p"`
}

func (c *RegisterCmd) Run(deps *Dependencies) error {
	user, err := deps.Auth.Register(deps.Ctx, fixitquick.Registration{
		Username: c.Username,
		Email:    c.Email,
		Password: c.Password,
	})
	if err != nil {
		return fmt.Errorf("registration failed: %s", fixitquick.ErrorMessage(err))
	}

	fmt.Fprintf(deps.Stdout, "Welcome, %s! You are now logged in.\n", user.Username)
	return nil
}

// LoginCmd establishes a session for an existing account.
type LoginCmd struct {
	Email    string `arg:"" help:"Email address of the account."`
	Password string `help:"Account password." required:"" short:"p"`
}

func (c *LoginCmd) Run(deps *Dependencies) error {
	user, err := deps.Auth.Login(deps.Ctx, c.Email, c.Password)
	if err != nil {
		return fmt.Errorf("login failed: %s", fixitquick.ErrorMessage(err))
	}

	fmt.Fprintf(deps.Stdout, "Logged in as %s (%s)\n", user.Username, user.Email)
	return nil
}

// LogoutCmd clears the session.
type LogoutCmd struct{}

func (c *LogoutCmd) Run(deps *Dependencies) error {
	if err := deps.Auth.Logout(deps.Ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	fmt.Fprintln(deps.Stdout, "Logged out")
	return nil
}

// WhoamiCmd prints the logged-in user.
type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(deps *Dependencies) error {
	user, err := deps.Auth.CurrentUser(deps.Ctx)
	if err != nil {
		fmt.Fprintln(deps.Stdout, "Not logged in.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%s (%s)\n", user.Username, user.Email)
	fmt.Fprintf(deps.Stdout, "Member since %s\n", user.DateJoined.Format("2 Jan 2006"))
	return nil
}

// ProfileCmd updates the logged-in user's profile.
type ProfileCmd struct {
	Username string `help:"New display name."`
	Email    string `help:"New email address."`
}

func (c *ProfileCmd) Run(deps *Dependencies) error {
	if c.Username == "" && c.Email == "" {
		return fmt.Errorf("nothing to update. Pass --username or --email")
	}

	var upd fixitquick.UserUpdate
	if c.Username != "" {
		upd.Username = &c.Username
	}
	if c.Email != "" {
		upd.Email = &c.Email
	}

	user, err := deps.Auth.UpdateProfile(deps.Ctx, upd)
	if err != nil {
		return fmt.Errorf("profile update failed: %s", fixitquick.ErrorMessage(err))
	}

	fmt.Fprintf(deps.Stdout, "Profile updated: %s (%s)\n", user.Username, user.Email)
	return nil
}

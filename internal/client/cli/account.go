package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/api"
	"github.com/dmitrijs2005/storefront/internal/client/services"
)

// getSimpleText and getPassword are swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) ask(prompt string) (string, error) {
	return getSimpleText(a.reader, prompt, a.out)
}

// Register prompts for the account fields and creates the account. The new
// user becomes the cached session.
func (a *App) Register(ctx context.Context) error {
	req := &api.RegisterRequest{}
	var err error

	if req.FirstName, err = a.ask("First name"); err != nil {
		return err
	}
	if req.LastName, err = a.ask("Last name"); err != nil {
		return err
	}
	if req.Email, err = a.ask("Email"); err != nil {
		return err
	}
	if req.Password, err = getPassword("Password", a.out); err != nil {
		return err
	}
	if req.ContactNumber, err = a.ask("Contact number"); err != nil {
		return err
	}
	picture, err := a.ask("Profile picture data URI (empty to skip)")
	if err != nil {
		return err
	}
	req.ProfilePicture = optional(picture)

	userID, err := a.accountService.Register(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered, user ID %s\n", userID)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := a.ask("Email")
	if err != nil {
		return err
	}
	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}

	userID, err := a.accountService.Login(ctx, email, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged in, user ID %s\n", userID)
	return nil
}

func (a *App) Profile(ctx context.Context) error {
	p, err := a.accountService.Profile(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "User ID:  %s\n", p.UserID)
	fmt.Fprintf(a.out, "Email:    %s\n", p.Email)
	fmt.Fprintf(a.out, "Name:     %s %s\n", p.FirstName, p.LastName)
	fmt.Fprintf(a.out, "Contact:  %s\n", p.ContactNumber)
	if p.ProfilePicture != "" {
		fmt.Fprintf(a.out, "Picture:  %d bytes\n", len(p.ProfilePicture))
	}
	fmt.Fprintf(a.out, "Created:  %s\n", p.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

// UpdateProfile prompts for every field; an empty answer leaves it as is.
// After a password change the session is cleared and the user has to log in
// again.
func (a *App) UpdateProfile(ctx context.Context) error {
	var changes services.ProfileChanges

	prompts := []struct {
		prompt string
		dst    **string
	}{
		{"First name (empty to keep)", &changes.FirstName},
		{"Last name (empty to keep)", &changes.LastName},
		{"Contact number (empty to keep)", &changes.ContactNumber},
		{"Profile picture data URI (empty to keep)", &changes.ProfilePicture},
	}
	for _, p := range prompts {
		v, err := a.ask(p.prompt)
		if err != nil {
			return err
		}
		*p.dst = optional(v)
	}

	password, err := getPassword("New password (empty to keep)", a.out)
	if err != nil {
		return err
	}
	changes.Password = optional(password)

	rotated, err := a.accountService.UpdateProfile(ctx, changes)
	if err != nil {
		return err
	}

	if rotated {
		fmt.Fprintln(a.out, "Password changed. Please log in again.")
		return nil
	}
	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.accountService.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) Status(ctx context.Context) error {
	online := "online"
	if err := a.accountService.Ping(ctx); err != nil {
		online = "offline"
	}

	s, err := a.accountService.Session(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Server:   %s\n", online)
	fmt.Fprintf(a.out, "User ID:  %s\n", orDash(s.UserID))
	fmt.Fprintf(a.out, "Email:    %s\n", orDash(s.Email))
	fmt.Fprintf(a.out, "Store ID: %s\n", orDash(s.StoreID))
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

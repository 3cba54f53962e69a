package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mvberkel/tripdiary/internal/client/models"
)

// Profile shows the signed-in user's profile, marking it as a cached copy
// when the server could not be reached.
func (a *App) Profile(ctx context.Context) error {
	profile, fromServer, err := a.authService.Profile(ctx)
	if err != nil {
		fmt.Println("Could not load profile:", err.Error())
		return err
	}

	if !fromServer {
		fmt.Println("(showing locally cached profile, server unreachable)")
	}
	printProfile(profile)
	return nil
}

func printProfile(p *models.Profile) {
	fmt.Println("Email:     ", p.Email)
	fmt.Println("Name:      ", p.Name)
	fmt.Println("Pronouns:  ", p.Pronouns)
	fmt.Println("Bio:       ", p.Bio)
	fmt.Println("Cover:     ", p.CoverURL)
	fmt.Println("Avatar:    ", p.AvatarURL)
	fmt.Println("Favourites:", strings.Join(p.Favourites, ", "))
}

// EditProfile walks through the profile fields one by one. An empty answer
// keeps the stored value, a "-" clears it. The password re-confirms the
// account before the server applies anything.
func (a *App) EditProfile(ctx context.Context) error {
	upd := &models.ProfileUpdate{}
	var err error

	if upd.Name, err = GetOptionalText(a.reader, "Name", os.Stdout); err != nil {
		return err
	}
	if upd.Pronouns, err = GetOptionalText(a.reader, "Pronouns", os.Stdout); err != nil {
		return err
	}
	if upd.Bio, err = GetOptionalText(a.reader, "Bio", os.Stdout); err != nil {
		return err
	}
	if upd.CoverURL, err = GetOptionalText(a.reader, "Cover image URL", os.Stdout); err != nil {
		return err
	}
	if upd.AvatarURL, err = GetOptionalText(a.reader, "Avatar image URL", os.Stdout); err != nil {
		return err
	}
	if upd.Favourites, err = GetCommaList(a.reader, "Favourite places", os.Stdout); err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Confirm password")
	if err != nil {
		return err
	}

	profile, err := a.authService.SaveProfile(ctx, password, upd)
	if err != nil {
		fmt.Println("Could not save profile:", err.Error())
		return err
	}

	fmt.Println("Profile saved.")
	printProfile(profile)
	return nil
}

// ChangePassword asks for the old and new password and changes it on the
// server; the local shadow follows so offline login keeps working.
func (a *App) ChangePassword(ctx context.Context) error {
	oldPassword, err := getPassword(os.Stdout, "Current password")
	if err != nil {
		return err
	}
	newPassword, err := getPassword(os.Stdout, "New password")
	if err != nil {
		return err
	}

	if err := a.authService.ChangePassword(ctx, oldPassword, newPassword); err != nil {
		fmt.Println("Could not change password:", err.Error())
		return err
	}
	fmt.Println("Password changed.")
	return nil
}

// DeleteAccount removes the account on the server and forgets the local
// shadow after an explicit confirmation.
func (a *App) DeleteAccount(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "Delete your account? This cannot be undone. Type 'yes' to confirm", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "yes" {
		fmt.Println("Cancelled.")
		return nil
	}

	password, err := getPassword(os.Stdout, "Confirm password")
	if err != nil {
		return err
	}

	if err := a.authService.DeleteAccount(ctx, password); err != nil {
		fmt.Println("Could not delete account:", err.Error())
		return err
	}

	a.email = ""
	fmt.Println("Account deleted.")
	return nil
}

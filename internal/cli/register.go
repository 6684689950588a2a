package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/YOUSSEF-MOKNIA/EduHupApp/internal/api"
	"github.com/YOUSSEF-MOKNIA/EduHupApp/internal/common"
	"github.com/YOUSSEF-MOKNIA/EduHupApp/internal/session"
)

// readFile is a test seam for attaching a profile picture.
var readFile = os.ReadFile

// Register walks the user through the registration form. Password and
// confirmation must match before anything is sent; a mismatch surfaces the
// local validation message and never reaches the backend. Success prints the
// backend's message and lands on the login screen without authenticating.
func (a *App) Register(ctx context.Context) error {
	firstName, err := getSimpleText(a.reader, "First name", a.out)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Last name", a.out)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	picture, err := a.promptProfilePicture()
	if err != nil {
		return err
	}

	msg, err := a.session.Register(ctx, session.RegistrationData{
		FirstName:       firstName,
		LastName:        lastName,
		Username:        username,
		Email:           email,
		Password:        string(password),
		ConfirmPassword: string(confirm),
		ProfilePicture:  picture,
	})
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintln(a.out, msg)
	return nil
}

func (a *App) promptProfilePicture() (*api.Attachment, error) {
	path, err := getSimpleText(a.reader, "Profile picture path (optional, Enter to skip)", a.out)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, nil
	}

	data, err := readFile(path)
	if err != nil {
		fmt.Fprintf(a.out, "Could not read %s: %v\n", path, err)
		return nil, err
	}
	return &api.Attachment{Filename: filepath.Base(path), Data: data}, nil
}

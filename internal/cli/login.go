package cli

import (
	"context"
	"fmt"

	"github.com/YOUSSEF-MOKNIA/EduHupApp/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for an identifier (email or username) and a password, then
// hands both to the session controller. A rejected login prints the fixed
// invalid-credentials message inline; the form stays available for
// resubmission. On success the controller navigates to the dashboard.
func (a *App) Login(ctx context.Context) error {
	identifier, err := getSimpleText(a.reader, "Email or username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, identifier, password); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	return nil
}

func (a *App) renderLoginIntro() {
	fmt.Fprintln(a.out, "Please log in. Commands: login, register.")
}

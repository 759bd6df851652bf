package cmd

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/renato0307/shed/internal/domain"
)

// Replaced in tests
var (
	stdinIsTerminal = func() bool {
		fd := os.Stdin.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
	promptPassword    = runPasswordPrompt
	promptNewPassword = runNewPasswordPrompt
)

// readPassword returns the flag value, or asks on the terminal when it is empty
func readPassword(flag, email string, confirm bool) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if !stdinIsTerminal() {
		return "", &domain.ValidationError{Field: "password", Reason: "pass --password or set SHED_PASSWORD when not on a terminal"}
	}

	var (
		password string
		err      error
	)
	if confirm {
		password, err = promptNewPassword(email)
	} else {
		password, err = promptPassword(email)
	}
	if errors.Is(err, huh.ErrUserAborted) {
		return "", errors.New("password prompt cancelled")
	}
	return password, err
}

func runPasswordPrompt(email string) (string, error) {
	var password string
	err := huh.NewInput().
		Title("Password").
		Description(email).
		EchoMode(huh.EchoModePassword).
		Validate(requirePassword).
		Value(&password).
		Run()
	return password, err
}

func runNewPasswordPrompt(email string) (string, error) {
	var password, confirmation string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Choose a password").
				Description(email).
				EchoMode(huh.EchoModePassword).
				Validate(requirePassword).
				Value(&password),
			huh.NewInput().
				Title("Repeat it").
				EchoMode(huh.EchoModePassword).
				Validate(func(s string) error {
					if s != password {
						return errors.New("passwords do not match")
					}
					return nil
				}).
				Value(&confirmation),
		),
	)
	if err := form.Run(); err != nil {
		return "", err
	}
	return password, nil
}

func requirePassword(s string) error {
	if s == "" {
		return errors.New("password is required")
	}
	return nil
}

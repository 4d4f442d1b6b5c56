package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/lfarias/accounts"
)

func runMenu(svc accounts.Service) error {
	in := bufio.NewReader(os.Stdin)
	for {
		fmt.Println("\n=== Account Manager ===")
		fmt.Printf("Registered accounts: %d\n", svc.Count())
		fmt.Println("\n1 - Log in")
		fmt.Println("2 - Create account")
		fmt.Println("3 - Quit")

		choice, err := prompt(in, "Choice: ")
		if err != nil {
			fmt.Println()
			return nil
		}

		switch choice {
		case "1":
			login(in, svc)
		case "2":
			createAccount(in, svc)
		case "3":
			fmt.Println("Bye.")
			return nil
		default:
			fmt.Println("Invalid choice. Enter 1, 2 or 3.")
		}
	}
}

// createAccount collects the registration fields once, then loops on the
// typed errors returned by the service, re-prompting only the field that
// failed. A duplicate email aborts back to the menu.
func createAccount(in *bufio.Reader, svc accounts.Service) {
	fmt.Println("\n=== Create Account ===")

	req := accounts.RegisterRequest{}
	var err error
	if req.FirstName, err = prompt(in, "First name: "); err != nil {
		return
	}
	if req.LastName, err = prompt(in, "Last name: "); err != nil {
		return
	}
	if req.Email, err = prompt(in, "Email: "); err != nil {
		return
	}
	if req.Password, err = promptSecret(in, "Choose a password: "); err != nil {
		return
	}
	if req.PasswordConfirmation, err = promptSecret(in, "Confirm the password: "); err != nil {
		return
	}

	for {
		acc, err := svc.Register(req)
		if err == nil {
			fmt.Printf("Account created, %s!\n", acc.FullName)
			return
		}

		var weak *accounts.WeakPasswordError
		switch {
		case errors.Is(err, accounts.ErrInvalidName):
			fmt.Println("The first name cannot be empty or contain spaces.")
			if req.FirstName, err = prompt(in, "First name only: "); err != nil {
				return
			}
		case errors.Is(err, accounts.ErrInvalidEmail):
			fmt.Println("Invalid email. Use a format like user@example.com")
			if req.Email, err = prompt(in, "Email: "); err != nil {
				return
			}
		case errors.Is(err, accounts.ErrDuplicateEmail):
			fmt.Println("An account with that email already exists.")
			return
		case errors.As(err, &weak):
			fmt.Println("Weak password: " + strings.Join(weak.Violations, ", "))
			if req.Password, err = promptSecret(in, "Try another password: "); err != nil {
				return
			}
			if req.PasswordConfirmation, err = promptSecret(in, "Confirm the password: "); err != nil {
				return
			}
		case errors.Is(err, accounts.ErrPasswordMismatch):
			fmt.Println("Confirmation does not match.")
			if req.PasswordConfirmation, err = promptSecret(in, "Confirm the password: "); err != nil {
				return
			}
		default:
			fmt.Println("Could not create the account:", err)
			return
		}
	}
}

func login(in *bufio.Reader, svc accounts.Service) {
	fmt.Println("\n=== Log In ===")

	email, err := prompt(in, "Email: ")
	if err != nil {
		return
	}
	password, err := promptSecret(in, "Password: ")
	if err != nil {
		return
	}

	acc, err := svc.Authenticate(email, password)
	if err != nil {
		fmt.Println("Email or password incorrect.")
		return
	}

	fmt.Printf("Welcome, %s!\n", acc.FullName)
	panel(in, svc, acc)
}

func panel(in *bufio.Reader, svc accounts.Service, acc *accounts.Account) {
	for {
		fmt.Printf("\n=== %s ===\n", acc.FullName)
		fmt.Println("1 - Change password")
		fmt.Println("2 - Delete account")
		fmt.Println("3 - Log out")

		choice, err := prompt(in, "Choice: ")
		if err != nil {
			return
		}

		switch choice {
		case "1":
			changePassword(in, svc, acc)
		case "2":
			confirm, err := prompt(in, "Are you sure? Type YES to delete: ")
			if err != nil {
				return
			}
			if confirm != "YES" {
				continue
			}
			if err := svc.DeleteAccount(acc); err != nil {
				fmt.Println("Could not delete the account:", err)
				continue
			}
			fmt.Println("Account deleted.")
			return
		case "3":
			fmt.Println("Logging out...")
			return
		default:
			fmt.Println("Invalid choice.")
		}
	}
}

func changePassword(in *bufio.Reader, svc accounts.Service, acc *accounts.Account) {
	fmt.Println("\n=== Change Password ===")

	current, err := promptSecret(in, "Current password: ")
	if err != nil {
		return
	}
	newPass, err := promptSecret(in, "New password: ")
	if err != nil {
		return
	}
	confirm, err := promptSecret(in, "Confirm new password: ")
	if err != nil {
		return
	}

	for {
		err := svc.ChangePassword(acc, current, newPass, confirm)
		if err == nil {
			fmt.Println("Password updated.")
			return
		}

		var weak *accounts.WeakPasswordError
		switch {
		case errors.Is(err, accounts.ErrInvalidCredentials):
			fmt.Println("Current password is incorrect.")
			return
		case errors.As(err, &weak):
			fmt.Println("Weak password: " + strings.Join(weak.Violations, ", "))
			if newPass, err = promptSecret(in, "Try another password: "); err != nil {
				return
			}
			if confirm, err = promptSecret(in, "Confirm new password: "); err != nil {
				return
			}
		case errors.Is(err, accounts.ErrPasswordMismatch):
			fmt.Println("Confirmation does not match. Cancelling.")
			return
		default:
			fmt.Println("Could not change the password:", err)
			return
		}
	}
}

func prompt(in *bufio.Reader, label string) (string, error) {
	fmt.Print(label)
	line, err := in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptSecret reads a password without echo when stdin is a terminal, and
// falls back to a plain line read otherwise (pipes, tests).
func promptSecret(in *bufio.Reader, label string) (string, error) {
	fmt.Print(label)
	if term.IsTerminal(int(os.Stdin.Fd())) {
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	line, err := in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

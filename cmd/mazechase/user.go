package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage accounts",
	Long: `Register or verify accounts in the configured credential store
without starting the game. Passwords are read from the terminal without
echo, or from the first line of stdin when it is not a terminal.`,
}

var userRegisterCmd = &cobra.Command{
	Use:   "register <username>",
	Short: "Create an account",
	Example: `  mazechase user register alice
  mazechase user register alice --auth-store sqlite`,
	Args: cobra.ExactArgs(1),
	RunE: runUserRegister,
}

var userVerifyCmd = &cobra.Command{
	Use:   "verify <username>",
	Short: "Check a username and password",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserVerify,
}

func init() {
	userCmd.AddCommand(userRegisterCmd)
	userCmd.AddCommand(userVerifyCmd)
}

func runUserRegister(cmd *cobra.Command, args []string) error {
	e, err := setup(false)
	if err != nil {
		return err
	}
	defer e.Close()

	store := e.openScores()
	if store != nil {
		defer store.Close()
	}
	svc, err := e.openAuth(cmd.Context(), store)
	if err != nil {
		return err
	}
	defer svc.Close()

	stdin := bufio.NewReader(os.Stdin)
	password, err := readPassword(stdin, "Password: ")
	if err != nil {
		return err
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		again, err := readPassword(stdin, "Repeat password: ")
		if err != nil {
			return err
		}
		if again != password {
			return errors.New("passwords do not match")
		}
	}

	if err := svc.Register(cmd.Context(), args[0], password); err != nil {
		return err
	}
	fmt.Printf("Registered %s.\n", strings.TrimSpace(args[0]))
	return nil
}

func runUserVerify(cmd *cobra.Command, args []string) error {
	e, err := setup(false)
	if err != nil {
		return err
	}
	defer e.Close()

	store := e.openScores()
	if store != nil {
		defer store.Close()
	}
	svc, err := e.openAuth(cmd.Context(), store)
	if err != nil {
		return err
	}
	defer svc.Close()

	password, err := readPassword(bufio.NewReader(os.Stdin), "Password: ")
	if err != nil {
		return err
	}
	if err := svc.Verify(cmd.Context(), args[0], password); err != nil {
		return err
	}
	fmt.Println("Credentials OK.")
	return nil
}

// readPassword prompts on stderr and reads without echo from a terminal,
// or reads one line from stdin otherwise.
func readPassword(stdin *bufio.Reader, prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, prompt)
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(b), nil
	}

	line, err := stdin.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

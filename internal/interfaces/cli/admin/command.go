// Package admin bootstraps console accounts from the terminal. The
// first SuperAdmin has to come from somewhere before the HTTP surface
// can be used.
package admin

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	admindomain "helperdesk/internal/domain/admin"
	"helperdesk/internal/infrastructure/auth"
	"helperdesk/internal/infrastructure/config"
	"helperdesk/internal/infrastructure/database"
	"helperdesk/internal/infrastructure/repository"
	"helperdesk/internal/shared/authorization"
	"helperdesk/internal/shared/logger"
)

var (
	env      string
	username string
	rank     string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Console account tools",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newCreateCommand())

	return cmd
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a console account",
		Long:  `Create a console account directly in the database, prompting for the password on the terminal.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username for the new account (required)")
	cmd.Flags().StringVarP(&rank, "rank", "r", "SuperAdmin", "Rank for the new account")
	cmd.MarkFlagRequired("username")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	parsedRank, err := authorization.ParseRank(rank)
	if err != nil {
		return err
	}

	password, err := promptPassword()
	if err != nil {
		return err
	}
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	account, err := admindomain.NewAccount(username, hash, parsedRank)
	if err != nil {
		return err
	}

	repo := repository.NewAdminAccountRepository(db)
	if err := repo.Save(cmd.Context(), account); err != nil {
		return err
	}

	fmt.Printf("created account %q with rank %s (id %d)\n", username, parsedRank, account.ID())
	return nil
}

func promptPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Fprint(os.Stderr, "Confirm password: ")
	confirm, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password confirmation: %w", err)
	}

	if string(password) != string(confirm) {
		return "", fmt.Errorf("passwords do not match")
	}
	return string(password), nil
}

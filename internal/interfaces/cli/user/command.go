// Package user holds operator commands for managing accounts outside the
// HTTP API, such as bootstrapping the first superuser.
package user

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"issuetracker/internal/application/user/usecases"
	"issuetracker/internal/infrastructure/auth"
	"issuetracker/internal/infrastructure/config"
	"issuetracker/internal/infrastructure/database"
	"issuetracker/internal/infrastructure/repository"
	"issuetracker/internal/shared/logger"
)

var (
	env          string
	email        string
	firstName    string
	lastName     string
	capabilities []string
	passwordEnv  string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Account administration",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.AddCommand(newCreateCommand())

	return cmd
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account with an explicit capability set",
		Example: `  tracker user create --email admin@example.com --name Admin --capability superuser --capability staff
  TRACKER_NEW_PASSWORD=secret tracker user create --email pm@example.com --name Pat --capability project_manager`,
		RunE: runCreate,
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&firstName, "name", "", "First name (required)")
	cmd.Flags().StringVar(&lastName, "last-name", "", "Last name")
	cmd.Flags().StringSliceVarP(&capabilities, "capability", "c", []string{"staff"}, "Capability to grant (staff, superuser, submitter, project_manager); repeatable")
	cmd.Flags().StringVar(&passwordEnv, "password-env", "TRACKER_NEW_PASSWORD", "Environment variable holding the password; prompts when unset")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger().Named("cli.user")

	password, err := readPassword(cmd.InOrStdin(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	uc := usecases.NewCreateUserUseCase(
		repository.NewUserRepository(database.Get()),
		auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		cfg.Auth.Password.MinLength,
		log,
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	created, err := uc.Execute(ctx, usecases.CreateUserCommand{
		Email:        email,
		Name:         firstName,
		LastName:     lastName,
		Password:     password,
		Capabilities: capabilities,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created user %d (%s) with capabilities [%s]\n",
		created.ID(), created.Email().String(), strings.Join(created.Capabilities().Strings(), ", "))
	return nil
}

// readPassword takes the password from the configured environment variable,
// then from a no-echo terminal prompt, then from the first line of stdin.
func readPassword(in io.Reader, out io.Writer) (string, error) {
	if passwordEnv != "" {
		if pw := os.Getenv(passwordEnv); pw != "" {
			return pw, nil
		}
	}

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(out, "Password: ")
		first, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Fprint(out, "Confirm password: ")
		second, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		if string(first) != string(second) {
			return "", fmt.Errorf("passwords do not match")
		}
		return string(first), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

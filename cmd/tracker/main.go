package main

import (
	"os"

	"github.com/spf13/cobra"

	"issuetracker/internal/interfaces/cli/migrate"
	"issuetracker/internal/interfaces/cli/server"
	"issuetracker/internal/interfaces/cli/user"
)

// @title						Issue Tracker API
// @version					1.0
// @description				Multi-tenant issue tracker: projects, tickets, comments, history and attachments.
// @BasePath					/
// @securityDefinitions.apikey	Bearer
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and the access token.
func main() {
	rootCmd := &cobra.Command{
		Use:   "tracker",
		Short: "Issue tracker server and administration tools",
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		user.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

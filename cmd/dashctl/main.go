package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/noah-isme/sma-dashboard-api/internal/models"
	"github.com/noah-isme/sma-dashboard-api/internal/repository"
	"github.com/noah-isme/sma-dashboard-api/internal/seed"
	"github.com/noah-isme/sma-dashboard-api/internal/service"
	"github.com/noah-isme/sma-dashboard-api/pkg/config"
	"github.com/noah-isme/sma-dashboard-api/pkg/database"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dashctl",
		Short:         "Operator tooling for the SMA dashboard API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newMigrateCommand())
	cmd.AddCommand(newSeedCommand())
	cmd.AddCommand(newTokenCommand())
	return cmd
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the records, audit and export tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			db, err := database.NewPostgres(cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := database.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
			return nil
		},
	}
}

func newSeedCommand() *cobra.Command {
	var overwrite bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the demo records into Postgres",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			db, err := database.NewPostgres(cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := database.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			written, err := seed.Apply(cmd.Context(), repository.NewRecordRepository(db), time.Now().UTC(), overwrite)
			if err != nil {
				return err
			}
			printSeedSummary(cmd, written)
			return nil
		},
	}
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Reset resources that already hold records")
	return cmd
}

func printSeedSummary(cmd *cobra.Command, written map[string]int) {
	slugs := make([]string, 0, len(written))
	for slug := range written {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	for _, slug := range slugs {
		if written[slug] == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "%-20s skipped\n", slug)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-20s %d rows\n", slug, written[slug])
	}
}

func newTokenCommand() *cobra.Command {
	var identity service.TokenIdentity
	var role string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token for local testing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			identity.Role = models.UserRole(role)
			if !identity.Role.Valid() {
				return fmt.Errorf("unknown role %q", role)
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			tokens := service.NewTokenService(service.TokenConfig{
				Secret:     cfg.JWT.Secret,
				Issuer:     cfg.JWT.Issuer,
				Expiration: cfg.JWT.Expiration,
			})
			token, expiresAt, err := tokens.Issue(identity)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", expiresAt.Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().StringVar(&identity.UserID, "user", "", "Subject user id")
	cmd.Flags().StringVar(&role, "role", string(models.RoleHRAdmin), "Dashboard role")
	cmd.Flags().StringVar(&identity.Email, "email", "", "Email claim")
	cmd.Flags().StringVar(&identity.FullName, "name", "", "Display name claim")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/naka-gawa/pr-changelog/internal/config"
	"github.com/naka-gawa/pr-changelog/internal/domain"
	"github.com/naka-gawa/pr-changelog/internal/gateway"
	"github.com/naka-gawa/pr-changelog/internal/usecase"
	"github.com/spf13/cobra"
)

// tokenEnvVars are checked in order; the first non-empty value is used.
var tokenEnvVars = []string{"GITHUB_PERSONAL_TOKEN", "GITHUB_TOKEN"}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Writes a markdown changelog of pull requests to <date>.md",
	Long: `Searches the pull requests created by the given users relative to --date,
groups them under the labels of the config file and writes the result to
<date>.md. When the config file cannot be read, all pull requests are listed
without grouping.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Default: discard all logs.
		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		logger := log.New(io.Discard, "", log.LstdFlags)
		if verbose {
			logger.SetOutput(cmd.ErrOrStderr())
		}

		users, _ := cmd.Flags().GetStringSlice("user")
		date, _ := cmd.Flags().GetString("date")
		sign, _ := cmd.Flags().GetString("sign")
		configPath, _ := cmd.Flags().GetString("config-path")
		transport, _ := cmd.Flags().GetString("transport")
		outputDir, _ := cmd.Flags().GetString("output-dir")

		filter, err := domain.NewDateFilter(sign, date)
		if err != nil {
			return err
		}

		// The token is optional; unauthenticated searches have a lower rate limit.
		token := lookupToken(os.Getenv)
		if token == "" {
			logger.Println("No GitHub token found, searching unauthenticated.")
		}

		githubGateway, err := gateway.NewGitHubGateway(token, transport, logger)
		if err != nil {
			return fmt.Errorf("failed to create GitHub gateway: %w", err)
		}
		reporter := usecase.NewReporter(usecase.NewAggregator(githubGateway, logger), config.Load, logger, cmd.ErrOrStderr())

		report, err := reporter.Generate(ctx, usecase.ReportRequest{
			Users:      users,
			Filter:     filter,
			ConfigPath: configPath,
		})
		if err != nil {
			return fmt.Errorf("failed to generate report: %w", err)
		}

		path, err := report.Save(outputDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s to %s\n", report.Stats, path)
		return nil
	},
}

func lookupToken(getenv func(string) string) string {
	for _, key := range tokenEnvVars {
		if v := getenv(key); v != "" {
			return v
		}
	}
	return ""
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringSliceP("user", "u", nil, "GitHub user names to report on (repeatable)")
	reportCmd.Flags().StringP("date", "d", "", "Date to compare the creation date against (YYYY-MM-DD, required)")
	reportCmd.Flags().StringP("sign", "s", ">", "Comparison sign for --date: >, <, =, >= or <=")
	reportCmd.Flags().StringP("config-path", "c", "config.json", "Path to the label config file (.json, .yaml or .toml)")
	reportCmd.Flags().String("transport", gateway.TransportREST, "GitHub API used for searching: rest or graphql")
	reportCmd.Flags().StringP("output-dir", "o", ".", "Directory the report is written to")
	reportCmd.MarkFlagRequired("date")
}

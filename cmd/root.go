// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/orgstats/org-stats/internal/domain"
	"github.com/orgstats/org-stats/internal/gateway"
	"github.com/orgstats/org-stats/internal/input"
	"github.com/orgstats/org-stats/internal/report"
	"github.com/orgstats/org-stats/internal/usecase"
)

// newFetcher builds the GitHub gateway; swapped out in tests.
var newFetcher = gateway.NewGitHubGateway

var rootCmd = &cobra.Command{
	Use:   "org-stats [account ...]",
	Short: "Counts repositories and total stars for GitHub organizations.",
	Long: `org-stats aggregates, per GitHub organization or user account, the number
of repositories and the sum of their star counts, and prints a summary table
sorted by total stars.

Accounts are given as positional arguments, or read from a tab-delimited file
of account names and display labels with --file. Accounts that share a display
label are summed into a single row.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringP("file", "f", "", "Tab-delimited file of account names and display labels")
	rootCmd.Flags().String("token", "", "GitHub personal access token (defaults to GITHUB_TOKEN)")
	rootCmd.Flags().IntP("concurrency", "c", 1, "Number of accounts to fetch in parallel")
	rootCmd.Flags().Bool("json", false, "Emit the sorted rows as JSON instead of a table")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	// Set up the logger from the verbose flag. Default: discard all logs.
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := log.New(io.Discard, "", log.LstdFlags)
	if verbose {
		logger.SetOutput(os.Stderr)
	}

	file, _ := cmd.Flags().GetString("file")
	token, _ := cmd.Flags().GetString("token")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	asJSON, _ := cmd.Flags().GetBool("json")
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}

	// Exactly one source of targets must be supplied. This is the only class
	// of error that aborts the run; it is caught before any network activity.
	var targets []domain.Target
	switch {
	case file != "" && len(args) > 0:
		return errors.New("specify either account names or --file, not both")
	case file != "":
		var err error
		targets, err = input.FromFile(file)
		if err != nil {
			return err
		}
	case len(args) > 0:
		targets = input.FromArgs(args)
	default:
		return errors.New("must specify either account names or --file")
	}
	if len(targets) == 0 {
		return errors.New("no accounts specified")
	}

	// Inject dependencies and run the main business logic. Per-target fetch
	// failures go to the diagnostic logger and degrade that row to zero; they
	// do not fail the run.
	githubGateway := newFetcher(token, logger)
	diag := log.New(os.Stderr, "", 0)
	aggregator := usecase.NewAggregator(githubGateway, logger, diag)

	rows, err := aggregator.Aggregate(cmd.Context(), targets, concurrency)
	if err != nil {
		return fmt.Errorf("failed to aggregate stats: %w", err)
	}

	if asJSON {
		jsonData, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results to JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	} else {
		report.Render(cmd.OutOrStdout(), rows)
	}

	if len(rows) > 0 {
		summary := report.Summarize(rows)
		logger.Printf("Stars per label: mean %.1f, median %.1f, max %.0f",
			summary.MeanStars, summary.MedianStars, summary.MaxStars)
	}
	return nil
}

// Package main provides the trendfinder CLI entry point.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"trendfinder/internal/config"
	"trendfinder/internal/display"
	"trendfinder/internal/trend"
	"trendfinder/internal/youtube"
	"trendfinder/pkg/browser"
)

const queryTimeout = 30 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// getAPIURL returns the API base URL (overridable for testing).
func getAPIURL() string {
	if url := os.Getenv("TRENDFINDER_API_URL"); url != "" {
		return url
	}
	return ""
}

// setupLogger configures the global zerolog logger on stderr.
func setupLogger(verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}).Level(level).With().Timestamp().Logger()
}

// newRootCmd creates the root command for the trendfinder CLI.
func newRootCmd() *cobra.Command {
	var (
		maxResults int
		minScore   float64
		windowDays int
		openTop    bool
		verbose    bool
	)

	rootCmd := &cobra.Command{
		Use:     "trendfinder [keyword]",
		Short:   "Find trending YouTube videos for a keyword",
		Long:    "Trendfinder searches YouTube for recently published videos matching a keyword and ranks them by view velocity.",
		Version: resolveVersionFromBuild(),
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(verbose)

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("max-results") {
				cfg.MaxResults = maxResults
			}
			if cmd.Flags().Changed("min-score") {
				cfg.MinTrendingScore = minScore
			}
			if cmd.Flags().Changed("window") {
				cfg.TrendingWindowDays = windowDays
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if cfg.APIKey == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "Error: no YouTube API key configured.")
				fmt.Fprintln(cmd.OutOrStdout(), "Set YOUTUBE_API_KEY in the environment or in a .env file.")
				return nil
			}

			keyword := ""
			if len(args) == 1 {
				keyword = strings.TrimSpace(args[0])
			} else {
				keyword, err = promptKeyword(cmd)
				if err != nil {
					return err
				}
			}

			if keyword == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "No keyword entered.")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\nSearching for %q...\n", keyword)

			results := findTrendingVideos(cfg, keyword)

			formatter := display.NewTerminalFormatter()
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatResults(results))

			if openTop && len(results) > 0 {
				if err := browser.Open(results[0].URL); err != nil {
					log.Warn().Err(err).Msg("could not open browser")
				}
			}

			return nil
		},
	}

	rootCmd.SetVersionTemplate("trendfinder version {{.Version}}\n")

	rootCmd.Flags().IntVarP(&maxResults, "max-results", "n", 50, "Maximum number of videos to fetch")
	rootCmd.Flags().Float64Var(&minScore, "min-score", 1000, "Minimum trending score to list a video")
	rootCmd.Flags().IntVarP(&windowDays, "window", "w", 14, "Trending window in days")
	rootCmd.Flags().BoolVarP(&openTop, "open", "o", false, "Open the top-ranked video in the browser")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return rootCmd
}

// promptKeyword reads the search keyword interactively.
func promptKeyword(cmd *cobra.Command) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), "Enter a search keyword: ")

	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read keyword: %w", err)
		}
		return "", nil
	}

	return strings.TrimSpace(scanner.Text()), nil
}

// findTrendingVideos runs the two-stage query and ranks the candidates.
// A failed query is logged and rendered as an empty result list; the user
// is never shown a crash for a flaky API call.
func findTrendingVideos(cfg *config.Config, keyword string) []trend.ScoredVideo {
	opts := []youtube.ClientOption{youtube.WithTrendingWindow(cfg.TrendingWindowDays)}
	if url := getAPIURL(); url != "" {
		opts = append(opts, youtube.WithBaseURL(url))
	}
	client := youtube.NewClient(cfg.APIKey, opts...)

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	videos, err := client.SearchVideos(ctx, keyword, cfg.MaxResults)
	if err != nil {
		log.Error().Err(err).Str("keyword", keyword).Msg("video search failed")
		videos = nil
	}

	ranker := trend.NewRanker(trend.WithWindow(cfg.TrendingWindowDays))
	return ranker.Rank(videos, cfg.MinTrendingScore)
}

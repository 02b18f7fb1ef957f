package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zhubert/simshare/internal/config"
	"github.com/zhubert/simshare/internal/logger"
)

var skipConfirm bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the debug log and forget recently opened simulations",
	Long: `Removes the debug log, clears the recently opened simulations and shows the
welcome screen again on next launch. Theme and notification settings are kept.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	return runCleanWith(cfg, os.Stdin, cmd.OutOrStdout(), logger.ClearLogs)
}

// runCleanWith allows injecting the config, input, output and log remover
// for testing
func runCleanWith(cfg *config.Config, input io.Reader, out io.Writer, clearLogs func() (int, error)) error {
	recentCount := len(cfg.GetRecentSimulations())

	fmt.Fprintln(out, "This will clean:")
	if recentCount > 0 {
		fmt.Fprintf(out, "  - %d recently opened simulation(s)\n", recentCount)
	}
	if cfg.HasSeenWelcome() {
		fmt.Fprintln(out, "  - The welcome screen flag")
	}
	fmt.Fprintf(out, "  - The debug log %s\n", logger.DefaultLogPath)

	if !skipConfirm {
		if !confirm(input, out, "Continue?") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	cfg.ClearHistory()
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("error saving config: %w", err)
	}

	logsCleared, err := clearLogs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error clearing logs: %v\n", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Cleaned:")
	if recentCount > 0 {
		fmt.Fprintf(out, "  - %d recent simulation(s) forgotten\n", recentCount)
	}
	if logsCleared > 0 {
		fmt.Fprintf(out, "  - %d log file(s) removed\n", logsCleared)
	}
	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, out io.Writer, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

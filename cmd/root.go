package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/zhubert/simshare/internal/app"
	"github.com/zhubert/simshare/internal/catalog"
	"github.com/zhubert/simshare/internal/config"
	"github.com/zhubert/simshare/internal/logger"
)

var (
	debugMode             bool
	quietMode             bool
	simulationID          string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "simshare",
	Short: "Browse, discuss and share structural simulation results",
	Long: `simshare is a terminal app for browsing structural-engineering simulation
results, discussing them with colleagues in a chat panel and sharing them
with friends.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.Flags().StringVar(&simulationID, "sim", "", "Open the simulation with this id on start")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("simshare %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("simshare %s\n", version)
}

// newModel builds the app model, opening simID when it is set.
func newModel(cfg *config.Config, cat *catalog.Catalog, simID string) (*app.Model, error) {
	m := app.New(cfg, cat, version)
	if simID != "" {
		if err := m.OpenSimulation(simID); err != nil {
			return nil, fmt.Errorf("error opening simulation: %w", err)
		}
	}
	return m, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	defer logger.Close()

	m, err := newModel(cfg, catalog.Default(), simulationID)
	if err != nil {
		return err
	}
	logger.WithComponent("cmd").Info("starting", "version", version, "sim", simulationID)

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}

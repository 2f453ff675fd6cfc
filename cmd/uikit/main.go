package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"uikit/internal/catalog"
	"uikit/internal/config"
	"uikit/internal/descriptor"
	"uikit/internal/page"
)

var (
	rootCmd = &cobra.Command{
		Use:   "uikit",
		Short: "Component catalog and API reference tooling",
	}
	dbPath  string
	cfgPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "uikit.db", "Path to the local catalog database (SQLite)")
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "uikit.yaml", "Path to the config file")

	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(renderCmd)
}

func loadConfig() *config.Config {
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	if level, err := zerolog.ParseLevel(cfg.Log.Level); err == nil {
		zerolog.SetGlobalLevel(level)
	}
	return cfg
}

func openStore() *catalog.Store {
	store, err := catalog.NewStore(dbPath)
	if err != nil {
		log.Fatal().Err(err).Str("db", dbPath).Msg("Failed to open catalog database")
	}
	return store
}

// loadRegistry prefers the synced database and falls back to reading the
// catalog directory when the database has no types yet.
func loadRegistry(ctx context.Context, cfg *config.Config) *descriptor.Registry {
	store := openStore()
	defer store.Close()

	reg, err := store.LoadRegistry(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load catalog database")
	}
	if reg.Len() > 0 {
		return reg
	}

	log.Debug().Str("dir", cfg.Catalog.Dir).Msg("Catalog database empty, reading catalog directory")
	reg, err = catalog.LoadDir(cfg.Catalog.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load catalog directory")
	}
	return reg
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Load the catalog directory and cache it in the local database",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		ctx := cmd.Context()

		reg, err := catalog.LoadDir(cfg.Catalog.Dir)
		if err != nil {
			log.Fatal().Err(err).Str("dir", cfg.Catalog.Dir).Msg("Failed to load catalog")
		}

		store := openStore()
		defer store.Close()

		if err := store.SaveRegistry(ctx, reg); err != nil {
			log.Fatal().Err(err).Msg("Failed to save catalog")
		}
		log.Info().Int("types", reg.Len()).Str("db", dbPath).Msg("Catalog synced")
	},
}

var (
	listNameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	listSummaryStyle = lipgloss.NewStyle().Faint(true)
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the documented component types",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		reg := loadRegistry(cmd.Context(), cfg)

		for _, name := range reg.Names() {
			d, _ := reg.Resolve(name)
			line := listNameStyle.Render(name)
			if d.Summary != "" {
				line += "  " + listSummaryStyle.Render(d.Summary)
			}
			fmt.Println(line)
		}
	},
}

var renderStdout bool

func init() {
	renderCmd.Flags().BoolVar(&renderStdout, "stdout", false, "Print the page instead of writing it to the output dir")
}

var renderCmd = &cobra.Command{
	Use:   "render <TypeName>",
	Short: "Render the API reference page for a component type",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		reg := loadRegistry(cmd.Context(), cfg)
		name := args[0]

		d, ok := reg.Resolve(name)
		var content string
		if !ok {
			// Absence is a regular outcome: the not-found page is rendered,
			// the command still succeeds.
			log.Warn().Str("type", name).Msg("Type not found in catalog")
			content = page.RenderNotFound(name)
		} else {
			content = page.RenderPage(d)
		}

		if renderStdout {
			fmt.Print(content)
			return
		}

		if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
			log.Fatal().Err(err).Msg("Failed to create output dir")
		}
		out := filepath.Join(cfg.Output.Dir, name+".md")
		if err := os.WriteFile(out, []byte(content), 0644); err != nil {
			log.Fatal().Err(err).Msg("Failed to write page")
		}
		log.Info().Str("page", out).Msg("Page written")
	},
}

package app

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jtd-117/bitbooks/internal/config"
	"github.com/jtd-117/bitbooks/internal/library"
	"github.com/jtd-117/bitbooks/internal/seed"
	"github.com/jtd-117/bitbooks/internal/tui"
	"github.com/jtd-117/bitbooks/internal/util"
)

var (
	cfg *config.Config

	appVersion = "dev"

	flagNoColor       bool
	flagNoInteractive bool
	flagConfig        string
	flagSeed          string
	flagSort          string
)

// SetVersion records the build version injected from main.
func SetVersion(v string) {
	appVersion = v
}

var rootCmd = &cobra.Command{
	Use:   "bitbooks",
	Short: "Track your personal reading list in the terminal",
	Long: `bitbooks tracks the books you own and whether you have read them.

A session holds the collection in memory: add books, toggle read status,
delete entries, and sort by title, author, page count, or insertion time.
The collection dies with the session. Seed it at startup with --seed or
defaults.seed_file in the config.

Run 'bitbooks' in a terminal for the interactive tracker. With stdin piped
(or --no-interactive), bitbooks reads script commands instead — one per
line, 'help' lists them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSession,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/bitbooks/config.yml)")
	rootCmd.Flags().StringVar(&flagSeed, "seed", "", "YAML book list to load at startup")
	rootCmd.Flags().StringVar(&flagSort, "sort", "", "Initial sort criterion (added, title, author, pages)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if flagConfig != "" {
			os.Setenv("BITBOOKS_CONFIG", flagConfig)
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		util.InitColor(flagNoColor || cfg.UI.NoColor)
		return nil
	}

	rootCmd.AddCommand(newVersionCmd())
}

func runSession(cmd *cobra.Command, args []string) error {
	col := library.New()

	seedPath := flagSeed
	if seedPath == "" {
		seedPath = cfg.Defaults.SeedFile
	}
	if seedPath != "" {
		entries, err := seed.Load(config.ExpandHome(seedPath))
		if err != nil {
			return err
		}
		for _, e := range entries {
			if _, added, err := col.Add(e.Input()); err != nil {
				warn("Skipping seed entry %q: %v", e.Title, err)
			} else if !added {
				warn("Skipping duplicate seed entry %q", e.Title)
			}
		}
	}

	sortName := flagSort
	if sortName == "" {
		sortName = cfg.Defaults.Sort
	}
	criterion := library.ByAdded
	if sortName != "" {
		c, err := library.ParseCriterion(sortName)
		if err != nil {
			return err
		}
		criterion = c
	}
	col.SortBy(criterion)

	if tui.ShouldUseTUI(cmd) {
		if err := tui.RunTracker(col, criterion); err != nil {
			return err
		}
		ok("%d book(s) tracked this session", col.Len())
		return nil
	}

	return runScript(col, os.Stdin, os.Stdout)
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

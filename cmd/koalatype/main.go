// Package main provides the CLI entrypoint for koalatype.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mqzpt/koalatype/internal/config"
	"github.com/mqzpt/koalatype/internal/model"
	"github.com/mqzpt/koalatype/internal/tui"
	"github.com/mqzpt/koalatype/internal/wordpack"
)

const (
	defaultPack     = "english-1000"
	defaultWords    = 30
	defaultDuration = 30 * time.Second
	defaultCaps     = 0.0
	defaultPunct    = 0.0
	defaultPunctSet = ".,!?;:"
)

var (
	testPack     string
	testWords    int
	testDuration time.Duration
	testSeed     int64
	testCaps     float64
	testPunct    float64
	testPunctSet string

	packsAddFrom  string
	packsAddForce bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "koalatype",
		Short:         "Terminal typing speed test",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTestCmd,
	}

	rootCmd.Flags().StringVar(&testPack, "pack", defaultPack, "word pack to draw words from")
	rootCmd.Flags().IntVar(&testWords, "words", defaultWords, "words per test")
	rootCmd.Flags().DurationVar(&testDuration, "duration", defaultDuration, "test length")
	rootCmd.Flags().Int64Var(&testSeed, "seed", 0, "random seed for a repeatable prompt")
	rootCmd.Flags().Float64Var(&testCaps, "caps", defaultCaps, "probability of capitalized first letter (0-1)")
	rootCmd.Flags().Float64Var(&testPunct, "punct", defaultPunct, "punctuation probability per word (0-1)")
	rootCmd.Flags().StringVar(&testPunctSet, "punct-set", defaultPunctSet, "punctuation set")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newPacksCmd())

	return rootCmd
}

func runTestCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "pack", &testPack, fileCfg.Test.Pack)
	applyIntConfig(cmd, "words", &testWords, fileCfg.Test.Words)
	if err := applyDurationConfig(cmd, "duration", &testDuration, fileCfg.Test.Duration); err != nil {
		return err
	}
	applyFloatConfig(cmd, "caps", &testCaps, fileCfg.Test.CapsPct)
	applyFloatConfig(cmd, "punct", &testPunct, fileCfg.Test.PunctPct)
	applyStringConfig(cmd, "punct-set", &testPunctSet, fileCfg.Test.PunctSet)

	cfg := model.Config{
		Pack:     testPack,
		Words:    testWords,
		Duration: testDuration,
		CapsPct:  testCaps,
		PunctPct: testPunct,
		PunctSet: testPunctSet,
	}
	if cmd.Flags().Changed("seed") {
		seed := testSeed
		cfg.Seed = &seed
	}

	if err := validateConfig(cfg); err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("koalatype needs an interactive terminal")
	}

	packs, err := wordpack.All(config.DefaultPackDir())
	if err != nil {
		return fmt.Errorf("failed to load word packs: %w", err)
	}
	pack, err := wordpack.Find(packs, cfg.Pack)
	if err != nil {
		return err
	}

	m, err := tui.NewModel(cfg, pack)
	if err != nil {
		return fmt.Errorf("failed to generate prompt: %w", err)
	}
	program := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	final, ok := finalModel.(*tui.Model)
	if !ok {
		return nil
	}
	return printResults(cmd, final)
}

// printResults echoes the last finished run to stdout so the numbers survive
// the alternate screen being torn down. A run aborted before any finish
// prints nothing.
func printResults(cmd *cobra.Command, m *tui.Model) error {
	result, ok := m.LastResult()
	if !ok {
		return nil
	}
	out := cmd.OutOrStdout()
	lines := []string{
		"Results:",
		fmt.Sprintf("- WPM: %.1f", result.WPM),
		fmt.Sprintf("- Accuracy: %.1f%%", result.Accuracy),
		fmt.Sprintf("- Correct words: %d/%d", result.Correct, result.Total),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newPacksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "packs",
		Short: "List word packs",
		Args:  cobra.NoArgs,
		RunE:  runPacksCmd,
	}
	cmd.AddCommand(newPacksAddCmd())
	return cmd
}

func runPacksCmd(cmd *cobra.Command, _ []string) error {
	packs, err := wordpack.All(config.DefaultPackDir())
	if err != nil {
		return fmt.Errorf("failed to load word packs: %w", err)
	}
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintln(out, "Available word packs:"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	for _, pack := range packs {
		if _, err := fmt.Fprintf(out, "- %s: %s\n", pack.Name, pack.Description); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newPacksAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a word pack from a file or URL",
		Args:  cobra.ExactArgs(1),
		RunE:  runPacksAddCmd,
	}
	cmd.Flags().StringVar(&packsAddFrom, "from", "", "path or URL of a word list")
	cmd.Flags().BoolVar(&packsAddForce, "force", false, "overwrite an existing pack")
	return cmd
}

func runPacksAddCmd(_ *cobra.Command, args []string) error {
	if packsAddFrom == "" {
		return fmt.Errorf("--from is required")
	}
	pack, err := wordpack.Import(context.Background(), args[0], packsAddFrom, config.DefaultPackDir(), packsAddForce)
	if err != nil {
		return err
	}
	logErrf("Added pack %q (%d words)\n", pack.Name, len(pack.Words))
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyDurationConfig(cmd *cobra.Command, name string, target *time.Duration, value *string) error {
	if value == nil {
		return nil
	}
	if cmd.Flags().Changed(name) {
		return nil
	}
	parsed, err := time.ParseDuration(*value)
	if err != nil {
		return fmt.Errorf("invalid %s in config: %w", name, err)
	}
	*target = parsed
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# koalatype configuration
# Uncomment a value to enable it. CLI flags override config values.

[test]
# pack = %q     # Word pack (run: koalatype packs)
# words = %d              # Words per test
# duration = "30s"        # Test length
# caps = %.2f             # Probability of capitalized first letter (0-1)
# punct = %.2f            # Punctuation probability per word (0-1)
# punct-set = %q     # Punctuation set
`,
		defaultPack,
		defaultWords,
		defaultCaps,
		defaultPunct,
		defaultPunctSet,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("--duration must be > 0")
	}
	if cfg.CapsPct < 0 || cfg.CapsPct > 1 {
		return fmt.Errorf("--caps must be between 0 and 1")
	}
	if cfg.PunctPct < 0 || cfg.PunctPct > 1 {
		return fmt.Errorf("--punct must be between 0 and 1")
	}
	if cfg.PunctSet == "" {
		return fmt.Errorf("--punct-set must not be empty")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

// Package main provides the CLI entrypoint for typt.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ebalder/typt/internal/config"
	"github.com/ebalder/typt/internal/game"
	"github.com/ebalder/typt/internal/textgen"
	"github.com/ebalder/typt/internal/tui"
	"github.com/ebalder/typt/internal/wordlist"
)

const (
	defaultLang   = "en"
	defaultLength = 150
)

var (
	practiceLang      string
	practiceLength    int
	practiceUppercase bool
	practiceSpecial   bool
	practiceText      string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typt",
		Short:         "Terminal typing-speed trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practiceLang, "lang", defaultLang, "language code (default: en)")
	rootCmd.Flags().IntVar(&practiceLength, "length", defaultLength, "approximate length of generated text")
	rootCmd.Flags().BoolVar(&practiceUppercase, "uppercase", false, "generate capitalized and uppercase words")
	rootCmd.Flags().BoolVar(&practiceSpecial, "special-chars", false, "generate commas, hyphens, and sentence punctuation")
	rootCmd.Flags().StringVar(&practiceText, "text", "", "practice this literal text instead of generating one")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLangsCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "lang", &practiceLang, fileCfg.Practice.Lang)
	applyIntConfig(cmd, "length", &practiceLength, fileCfg.Practice.Length)
	applyBoolConfig(cmd, "uppercase", &practiceUppercase, fileCfg.Practice.Uppercase)
	applyBoolConfig(cmd, "special-chars", &practiceSpecial, fileCfg.Practice.SpecialChars)

	cfg := game.Config{
		Text:         practiceText,
		ApproxLength: practiceLength,
		Uppercase:    practiceUppercase,
		SpecialChars: practiceSpecial,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("typt requires an interactive terminal")
	}

	var src game.TextSource
	if cfg.Text == "" {
		wordPath := config.DefaultWordListPath(practiceLang)
		words, err := wordlist.Load(wordPath, practiceLang)
		if err != nil {
			return wordListLoadError(practiceLang, wordPath, err)
		}
		gen, err := textgen.New(words, nil)
		if err != nil {
			return fmt.Errorf("failed to build generator: %w", err)
		}
		src = func(length int, uppercase, special bool) string {
			return gen.Paragraph(textgen.Options{
				ApproxLength: length,
				Uppercase:    uppercase,
				SpecialChars: special,
			})
		}
	}

	model := tui.NewModel(func() *game.Game {
		return game.New(cfg, src)
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
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

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List available wordlist languages",
		Args:  cobra.NoArgs,
		RunE:  runLangsCmd,
	}
}

func runLangsCmd(cmd *cobra.Command, _ []string) error {
	wordlistDir := config.DefaultWordListDir()
	entries, err := os.ReadDir(wordlistDir)
	if err != nil {
		if os.IsNotExist(err) {
			logErrf("No wordlists found. Put one word per line in %s/<code>.txt\n", wordlistDir)
			return fmt.Errorf("wordlist directory does not exist")
		}
		return fmt.Errorf("failed to read wordlist directory: %w", err)
	}
	langs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".txt") {
			continue
		}
		langs = append(langs, strings.TrimSuffix(name, ".txt"))
	}
	if len(langs) == 0 {
		logErrf("No wordlists found. Put one word per line in %s/<code>.txt\n", wordlistDir)
		return fmt.Errorf("no wordlists found")
	}
	sort.Strings(langs)
	for _, lang := range langs {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), lang); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
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

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typt configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# lang = %q              # Language code
# length = %d           # Approximate length of generated text
# uppercase = false      # Generate capitalized and uppercase words
# special-chars = false  # Generate commas, hyphens, and punctuation
`,
		defaultLang,
		defaultLength,
	)
}

func validateConfig(cfg game.Config) error {
	if cfg.Text != "" {
		return nil
	}
	if cfg.ApproxLength <= 0 {
		return fmt.Errorf("--length must be > 0")
	}
	if practiceLang == "" {
		return fmt.Errorf("--lang must not be empty")
	}
	return nil
}

func wordListLoadError(lang, path string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to load word list: %v", err),
		fmt.Sprintf("expected word list at: %s", path),
		fmt.Sprintf("language %q not found", lang),
		"Run: typt langs",
		"Add one: put one lowercase word per line in that file",
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

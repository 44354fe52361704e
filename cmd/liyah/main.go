// Package main provides the CLI entrypoint for liyah.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/LaduClassic/liyahs-learning-jour/internal/config"
	"github.com/LaduClassic/liyahs-learning-jour/internal/generator"
	"github.com/LaduClassic/liyahs-learning-jour/internal/logging"
	"github.com/LaduClassic/liyahs-learning-jour/internal/model"
	"github.com/LaduClassic/liyahs-learning-jour/internal/stats"
	"github.com/LaduClassic/liyahs-learning-jour/internal/statsui"
	"github.com/LaduClassic/liyahs-learning-jour/internal/store"
	"github.com/LaduClassic/liyahs-learning-jour/internal/tui"
	"github.com/LaduClassic/liyahs-learning-jour/internal/wordlist"
)

const (
	defaultOperator   = "addition"
	defaultDifficulty = "easy"
	defaultQuestions  = 10
	defaultSpellWords = 5
	defaultSpellMode  = tui.SpellOrder
	defaultLogLevel   = "warn"
	defaultQuizCount  = 10
)

var (
	practiceOp         string
	practiceDifficulty string
	practiceQuestions  int
	practiceFocusWeak  bool

	spellWords int
	spellMode  string

	logLevel string
	seed     int64

	robotLevel int
	robotCmds  string

	lettersMode  string
	lettersCount int
	planetsCount int

	progressPlain bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "liyah",
		Short:         "Learning games for the terminal",
		Long:          "Math flashcards, Arabic spelling and letters, quizzes on Islamic studies and the planets, and a robot coding game.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practiceOp, "op", defaultOperator, "operator: addition, subtraction, multiplication, division (or add, sub, mul, div)")
	rootCmd.Flags().StringVar(&practiceDifficulty, "difficulty", defaultDifficulty, "easy, medium or hard")
	rootCmd.Flags().IntVar(&practiceQuestions, "questions", defaultQuestions, "problems per round")
	rootCmd.Flags().BoolVar(&practiceFocusWeak, "focus-weak", false, "practice the operator with the lowest accuracy")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultLogLevel, "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	if err := rootCmd.PersistentFlags().MarkHidden("seed"); err != nil {
		logErrf("failed to hide seed flag: %v\n", err)
	}

	rootCmd.AddCommand(newSpellCmd())
	rootCmd.AddCommand(newQuizCmd())
	rootCmd.AddCommand(newLettersCmd())
	rootCmd.AddCommand(newPlanetsCmd())
	rootCmd.AddCommand(newRobotCmd())
	rootCmd.AddCommand(newWordsCmd())
	rootCmd.AddCommand(newProgressCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// resolveConfig merges the config file under the flags, installs the logger
// and validates the result.
func resolveConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "op", &practiceOp, fileCfg.Practice.Operator)
	applyStringConfig(cmd, "difficulty", &practiceDifficulty, fileCfg.Practice.Difficulty)
	applyIntConfig(cmd, "questions", &practiceQuestions, fileCfg.Practice.Questions)
	applyBoolConfig(cmd, "focus-weak", &practiceFocusWeak, fileCfg.Practice.FocusWeak)
	applyIntConfig(cmd, "words", &spellWords, fileCfg.Spelling.Words)
	applyStringConfig(cmd, "mode", &spellMode, fileCfg.Spelling.Mode)
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level)

	logging.Setup(os.Stderr, logLevel)

	op, err := model.ParseOperator(practiceOp)
	if err != nil {
		return model.Config{}, fmt.Errorf("--op: %w", err)
	}
	cfg := model.Config{
		Operator:   op,
		Difficulty: model.Difficulty(strings.ToLower(strings.TrimSpace(practiceDifficulty))),
		Questions:  practiceQuestions,
		FocusWeak:  practiceFocusWeak,
		SpellWords: spellWords,
		SpellMode:  strings.ToLower(strings.TrimSpace(spellMode)),
		LogLevel:   logging.LevelName(logLevel),
	}
	if err := config.Validate(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func newGenerator() *generator.Generator {
	if seed != 0 {
		return generator.NewWithSeed(seed)
	}
	return generator.New()
}

func openStore() (*store.Store, func(), error) {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db: %w", err)
	}
	closeFn := func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}
	return st, closeFn, nil
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	m := tui.NewModel(cfg, st, newGenerator())
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newSpellCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spell",
		Short: "Arabic spelling puzzle",
		Args:  cobra.NoArgs,
		RunE:  runSpellCmd,
	}
	cmd.Flags().IntVar(&spellWords, "words", defaultSpellWords, "words per round (0 for all)")
	cmd.Flags().StringVar(&spellMode, "mode", defaultSpellMode, "order (arrange letters) or write (type the word)")
	return cmd
}

func runSpellCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	words, err := st.CurrentWords(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load words: %w", err)
	}
	m := tui.NewSpellModel(words, cfg.SpellWords, cfg.SpellMode, st, newGenerator())
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Manage the spelling word list",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "import FILE",
		Short: "Replace the word list with a .txt file of arabic|phonetic|meaning lines (- reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE:  runWordsImportCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print the current word list",
		Args:  cobra.NoArgs,
		RunE:  runWordsListCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Go back to the built-in word list",
		Args:  cobra.NoArgs,
		RunE:  runWordsResetCmd,
	})
	return cmd
}

func runWordsImportCmd(cmd *cobra.Command, args []string) error {
	if _, err := resolveConfig(cmd); err != nil {
		return err
	}
	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	ctx := context.Background()
	path := args[0]
	var words []model.SpellingWord
	if path == "-" {
		words, err = st.ImportWords(ctx, cmd.InOrStdin())
	} else {
		words, err = wordlist.LoadFile(path)
		if err == nil {
			err = st.SaveCustomWords(ctx, words)
		}
	}
	switch {
	case errors.Is(err, wordlist.ErrUnsupportedFile):
		return fmt.Errorf("%s: please choose a .txt file", path)
	case errors.Is(err, wordlist.ErrNoValidWords):
		return fmt.Errorf("no valid words found; use the format: arabic|phonetic|meaning")
	case err != nil:
		return fmt.Errorf("failed to import words: %w", err)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d words\n", len(words))
	return err
}

func runWordsListCmd(cmd *cobra.Command, _ []string) error {
	if _, err := resolveConfig(cmd); err != nil {
		return err
	}
	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	words, err := st.CurrentWords(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load words: %w", err)
	}
	out := cmd.OutOrStdout()
	for _, w := range words {
		if _, err := fmt.Fprintf(out, "%s|%s|%s\n", w.Script, w.Phonetic, w.Meaning); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func runWordsResetCmd(cmd *cobra.Command, _ []string) error {
	if _, err := resolveConfig(cmd); err != nil {
		return err
	}
	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	if err := st.ResetCustomWords(context.Background()); err != nil {
		return fmt.Errorf("failed to reset words: %w", err)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Using the %d built-in words\n", len(wordlist.Defaults()))
	return err
}

func newProgressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show learning progress",
		Args:  cobra.NoArgs,
		RunE:  runProgressCmd,
	}
	cmd.Flags().BoolVar(&progressPlain, "plain", false, "print a text report instead of the dashboard")
	return cmd
}

func runProgressCmd(cmd *cobra.Command, _ []string) error {
	if _, err := resolveConfig(cmd); err != nil {
		return err
	}
	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	interactive := cmd.OutOrStdout() == os.Stdout && term.IsTerminal(int(os.Stdout.Fd()))
	if progressPlain || !interactive {
		rec, err := st.LoadProgress(context.Background(), stats.NewRecord())
		if err != nil {
			return fmt.Errorf("failed to load progress: %w", err)
		}
		return stats.RenderReport(cmd.OutOrStdout(), rec, stats.TerminalWidth())
	}

	m := statsui.NewModel(st)
	defer m.Close()
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run progress TUI: %w", err)
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
	return fmt.Sprintf(`# liyah configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# op = %q          # addition, subtraction, multiplication or division
# difficulty = %q      # easy, medium or hard
# questions = %d          # Problems per round (1-100)
# focus-weak = false      # Practice the operator with the lowest accuracy

[spelling]
# words = %d               # Words per round (0 for all)
# mode = %q          # order (arrange letters) or write (type the word)

[log]
# level = %q           # debug, info, warn or error
`,
		defaultOperator,
		defaultDifficulty,
		defaultQuestions,
		defaultSpellWords,
		defaultSpellMode,
		defaultLogLevel,
	)
}

func sessionTimes(startedAt time.Time) (time.Time, time.Time) {
	endedAt := time.Now()
	if startedAt.IsZero() {
		startedAt = endedAt
	}
	return startedAt, endedAt
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

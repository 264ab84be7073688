package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/bootquiz/internal/boot"
	"github.com/san-kum/bootquiz/internal/config"
	"github.com/san-kum/bootquiz/internal/quiz"
	"github.com/san-kum/bootquiz/internal/rain"
	"github.com/san-kum/bootquiz/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile    string
	theme         string
	bank          string
	questionsFile string
	passFraction  float64
	bootDelayMs   int
	intervalMs    int
	cellSize      int
	seed          int64
	logFile       string
	// odds
	runs int
	// config init
	force bool
)

// main registers the commands and flags and runs the quiz when no subcommand is given.
func main() {
	defaults := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:          "bootquiz",
		Short:        "terminal boot sequence and quiz over a character rain",
		SilenceUsage: true,
		RunE:         runQuiz,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&theme, "theme", defaults.Theme, "color theme")
	pf.StringVar(&bank, "bank", defaults.Bank, "built-in question bank")
	pf.StringVar(&questionsFile, "questions", "", "question file (yaml), overrides --bank")
	pf.Float64Var(&passFraction, "pass", defaults.PassFraction, "share of correct answers needed to pass")
	pf.IntVar(&bootDelayMs, "boot-delay", defaults.Boot.DelayMs, "delay between boot lines (ms)")
	pf.IntVar(&intervalMs, "interval", defaults.Rain.IntervalMs, "rain frame interval (ms)")
	pf.IntVar(&cellSize, "cell", defaults.Rain.CellSize, "rain cell size (px)")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	pf.StringVar(&logFile, "log", "", "write debug log to file")

	rainCmd := &cobra.Command{
		Use:   "rain",
		Short: "show the character rain only",
		RunE:  runRain,
	}

	bootCmd := &cobra.Command{
		Use:   "boot",
		Short: "print the boot sequence to stdout",
		RunE:  runBoot,
	}

	banksCmd := &cobra.Command{
		Use:   "banks",
		Short: "list built-in question banks",
		RunE:  listBanks,
	}

	checkCmd := &cobra.Command{
		Use:   "check [file]",
		Short: "validate a question file",
		Args:  cobra.ExactArgs(1),
		RunE:  checkQuestions,
	}

	oddsCmd := &cobra.Command{
		Use:   "odds",
		Short: "score distribution for random guessing",
		RunE:  guessOdds,
	}
	oddsCmd.Flags().IntVar(&runs, "runs", 10000, "number of simulated sessions")

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list color themes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range viz.ThemeNames() {
				fmt.Println(name)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(rainCmd, bootCmd, banksCmd, checkCmd, oddsCmd, themesCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig merges the config file (if any) with flags; flags win when set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if configFile == "" || flags.Changed("theme") {
		cfg.Theme = theme
	}
	if configFile == "" || flags.Changed("bank") {
		cfg.Bank = bank
	}
	if flags.Changed("questions") {
		cfg.QuestionsFile = questionsFile
	}
	if configFile == "" || flags.Changed("pass") {
		cfg.PassFraction = passFraction
	}
	if configFile == "" || flags.Changed("boot-delay") {
		cfg.Boot.DelayMs = bootDelayMs
	}
	if configFile == "" || flags.Changed("interval") {
		cfg.Rain.IntervalMs = intervalMs
	}
	if configFile == "" || flags.Changed("cell") {
		cfg.Rain.CellSize = cellSize
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newRand(cfg *config.Config) *rand.Rand {
	s := uint64(cfg.Seed)
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(s, s>>1|1))
}

func rainOptions(cfg *config.Config) []rain.Option {
	return append(cfg.RainOptions(), rain.WithSource(newRand(cfg)))
}

// setupLog sends the standard logger to logFile; the TUI owns stdout.
func setupLog() (*log.Logger, func(), error) {
	if logFile == "" {
		return nil, func() {}, nil
	}
	f, err := tea.LogToFile(logFile, "bootquiz")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log: %w", err)
	}
	return log.Default(), func() { f.Close() }, nil
}

func runQuiz(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	questions, err := cfg.Questions()
	if err != nil {
		return err
	}
	logger, closeLog, err := setupLog()
	if err != nil {
		return err
	}
	defer closeLog()

	return viz.Run(viz.Options{
		Questions:    questions,
		PassFraction: cfg.PassFraction,
		BootLines:    cfg.Boot.Lines,
		BootDelay:    cfg.BootDelay(),
		RainInterval: cfg.RainInterval(),
		CellSize:     cfg.Rain.CellSize,
		RainOptions:  rainOptions(cfg),
		Theme:        cfg.Theme,
		Logger:       logger,
	})
}

func runRain(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return viz.RunRain(cfg.Theme, cfg.Rain.CellSize, cfg.RainInterval(), rainOptions(cfg)...)
}

func runBoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	seq := boot.New(func() { fmt.Println() })
	err = boot.Run(ctx, seq, cfg.Boot.Lines, cfg.BootDelay(), func(line string) {
		fmt.Println(line)
	})
	if errors.Is(err, context.Canceled) {
		fmt.Printf("\nboot interrupted after %d/%d lines\n", seq.Revealed(), seq.Total())
		return nil
	}
	return err
}

func listBanks(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BANK\tQUESTIONS\tFIRST")
	for _, name := range config.ListBanks() {
		qs := config.GetBank(name)
		fmt.Fprintf(w, "%s\t%d\t%s\n", name, len(qs), qs[0].Prompt)
	}
	return w.Flush()
}

func checkQuestions(cmd *cobra.Command, args []string) error {
	qs, err := quiz.LoadQuestions(args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tOPTIONS\tANSWER\tPROMPT")
	for i, q := range qs {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", i+1, len(q.Options), q.Options[q.Answer], q.Prompt)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d questions ok, pass mark %d\n", len(qs), quiz.Threshold(len(qs), quiz.DefaultPassFraction))
	return nil
}

func guessOdds(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if runs <= 0 {
		return fmt.Errorf("runs must be positive, got %d", runs)
	}
	questions, err := cfg.Questions()
	if err != nil {
		return err
	}

	rng := newRand(cfg)
	counts, err := quiz.GuessDistribution(questions, runs, rng.IntN, quiz.WithPassFraction(cfg.PassFraction))
	if err != nil {
		return err
	}

	data := make([]float64, len(counts))
	for i, n := range counts {
		data[i] = float64(n) / float64(runs) * 100
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("runs (%) by score"),
	)
	fmt.Println(graph)
	fmt.Println()

	threshold := quiz.Threshold(len(questions), cfg.PassFraction)
	fmt.Printf("questions: %d\n", len(questions))
	fmt.Printf("pass mark: %d\n", threshold)
	fmt.Printf("runs: %d\n", runs)
	fmt.Printf("pass rate: %.2f%%\n", quiz.PassRate(counts, threshold)*100)
	fmt.Println(strings.Repeat("-", 24))
	for score, n := range counts {
		fmt.Printf("  %2d  %6d\n", score, n)
	}
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "bootquiz.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

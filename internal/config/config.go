package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/bootquiz/internal/boot"
	"github.com/san-kum/bootquiz/internal/quiz"
	"github.com/san-kum/bootquiz/internal/rain"
)

const (
	DefaultTheme        = "matrix"
	DefaultBank         = "web"
	DefaultBootDelayMs  = 600
	DefaultRainInterval = 40
	// Pixel size of one terminal cell on the rain surface.
	DefaultCellSize = rain.DefaultCellSize
)

var ErrUnknownBank = errors.New("config: unknown question bank")

type Config struct {
	Theme         string     `yaml:"theme"`
	Bank          string     `yaml:"bank"`
	QuestionsFile string     `yaml:"questions_file,omitempty"`
	PassFraction  float64    `yaml:"pass_fraction"`
	Seed          int64      `yaml:"seed,omitempty"`
	Boot          BootConfig `yaml:"boot"`
	Rain          RainConfig `yaml:"rain"`
}

type BootConfig struct {
	Lines   []string `yaml:"lines"`
	DelayMs int      `yaml:"delay_ms"`
}

type RainConfig struct {
	IntervalMs  int     `yaml:"interval_ms"`
	CellSize    int     `yaml:"cell_size"`
	Fade        float64 `yaml:"fade"`
	ResetChance float64 `yaml:"reset_chance"`
	Alphabet    string  `yaml:"alphabet"`
}

func DefaultConfig() *Config {
	lines := make([]string, len(boot.DefaultScript))
	copy(lines, boot.DefaultScript)
	return &Config{
		Theme:        DefaultTheme,
		Bank:         DefaultBank,
		PassFraction: quiz.DefaultPassFraction,
		Boot: BootConfig{
			Lines:   lines,
			DelayMs: DefaultBootDelayMs,
		},
		Rain: RainConfig{
			IntervalMs:  DefaultRainInterval,
			CellSize:    DefaultCellSize,
			Fade:        rain.DefaultFade,
			ResetChance: rain.DefaultResetChance,
			Alphabet:    rain.DefaultAlphabet,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values the components would refuse at construction.
func (c *Config) Validate() error {
	if c.PassFraction <= 0 || c.PassFraction > 1 {
		return quiz.ErrPassFraction
	}
	if c.Rain.CellSize <= 0 {
		return rain.ErrCellSize
	}
	if c.Boot.DelayMs < 0 {
		return fmt.Errorf("config: boot delay must not be negative, got %d", c.Boot.DelayMs)
	}
	if c.Rain.IntervalMs <= 0 {
		return fmt.Errorf("config: rain interval must be positive, got %d", c.Rain.IntervalMs)
	}
	if c.QuestionsFile == "" && GetBank(c.Bank) == nil {
		return fmt.Errorf("%w: %s (available: %v)", ErrUnknownBank, c.Bank, ListBanks())
	}
	return nil
}

func (c *Config) BootDelay() time.Duration {
	return time.Duration(c.Boot.DelayMs) * time.Millisecond
}

func (c *Config) RainInterval() time.Duration {
	return time.Duration(c.Rain.IntervalMs) * time.Millisecond
}

// Questions resolves the question set: the questions file if one is set,
// otherwise the named bank.
func (c *Config) Questions() ([]quiz.Question, error) {
	if c.QuestionsFile != "" {
		return quiz.LoadQuestions(c.QuestionsFile)
	}
	qs := GetBank(c.Bank)
	if qs == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBank, c.Bank)
	}
	return qs, nil
}

// RainOptions translates the rain section into rain options.
func (c *Config) RainOptions() []rain.Option {
	return []rain.Option{
		rain.WithAlphabet(c.Rain.Alphabet),
		rain.WithFade(c.Rain.Fade),
		rain.WithResetChance(c.Rain.ResetChance),
	}
}

package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/firefly/hangman/internal/wordbank"
)

const (
	// DefaultBookID is the OpenLibrary work used when none is given
	DefaultBookID = "OL31390631M"

	// DefaultCacheDir holds cached dictionaries
	DefaultCacheDir = ".medialab"

	// DefaultEndpoint is the OpenLibrary API root
	DefaultEndpoint = "https://openlibrary.org"

	// DefaultTimeout bounds the description fetch
	DefaultTimeout = 2 * time.Minute

	// DefaultRateLimit is the outbound request rate in requests per second
	DefaultRateLimit = 1.0

	// DefaultLives is the number of wrong guesses a player survives
	DefaultLives = 6

	// DefaultMinWordLength is the shortest word taken from a description
	DefaultMinWordLength = wordbank.MinWordLength
)

// Environment variables read by Parse
const (
	EnvBookID   = "HANGMAN_BOOK_ID"
	EnvCacheDir = "HANGMAN_CACHE_DIR"
	EnvEndpoint = "HANGMAN_ENDPOINT"
)

var wordPattern = regexp.MustCompile(`^\w+$`)

// Config holds all configuration for the game
type Config struct {
	BookID        string        `toml:"book_id"`
	CacheDir      string        `toml:"cache_dir"`
	Endpoint      string        `toml:"endpoint"`
	Word          string        `toml:"word"` // empty picks a random dictionary word
	Timeout       time.Duration `toml:"timeout"`
	RateLimit     float64       `toml:"rate_limit"` // 0 means no limit
	Lives         int           `toml:"lives"`
	MinWordLength int           `toml:"min_word_length"`
	Verbose       bool          `toml:"verbose"`

	ConfigFile string `toml:"-"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		BookID:        DefaultBookID,
		CacheDir:      DefaultCacheDir,
		Endpoint:      DefaultEndpoint,
		Timeout:       DefaultTimeout,
		RateLimit:     DefaultRateLimit,
		Lives:         DefaultLives,
		MinWordLength: DefaultMinWordLength,
	}
}

// LoadDotEnv loads variables from a .env file into the process environment.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Parse builds the configuration from defaults, the environment, an optional
// TOML file and command line flags, each overriding the previous one.
func Parse(args []string, getenv func(string) string) (*Config, error) {
	flags := Default()

	flagSet := flag.NewFlagSet("hangman", flag.ContinueOnError)
	flagSet.StringVar(&flags.ConfigFile, "config", "", "Path to TOML configuration file")
	flagSet.StringVar(&flags.BookID, "book", flags.BookID, "OpenLibrary work id used to build the dictionary")
	flagSet.StringVar(&flags.CacheDir, "cache-dir", flags.CacheDir, "Directory holding cached dictionaries")
	flagSet.StringVar(&flags.Endpoint, "endpoint", flags.Endpoint, "OpenLibrary API root")
	flagSet.StringVar(&flags.Word, "word", "", "Secret word (random dictionary word if empty)")
	flagSet.DurationVar(&flags.Timeout, "timeout", flags.Timeout, "Timeout for fetching the description")
	flagSet.Float64Var(&flags.RateLimit, "rate-limit", flags.RateLimit, "Requests per second (0 = no limit)")
	flagSet.IntVar(&flags.Lives, "lives", flags.Lives, "Number of lives")
	flagSet.IntVar(&flags.MinWordLength, "min-word-length", flags.MinWordLength, "Shortest word taken from the description")
	flagSet.BoolVar(&flags.Verbose, "verbose", false, "Enable verbose logging")

	if err := flagSet.Parse(args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	config := Default()
	config.applyEnv(getenv)

	if flags.ConfigFile != "" {
		if _, err := toml.DecodeFile(flags.ConfigFile, config); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		config.ConfigFile = flags.ConfigFile
	}

	// Only flags given on the command line override lower layers
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "book":
			config.BookID = flags.BookID
		case "cache-dir":
			config.CacheDir = flags.CacheDir
		case "endpoint":
			config.Endpoint = flags.Endpoint
		case "word":
			config.Word = flags.Word
		case "timeout":
			config.Timeout = flags.Timeout
		case "rate-limit":
			config.RateLimit = flags.RateLimit
		case "lives":
			config.Lives = flags.Lives
		case "min-word-length":
			config.MinWordLength = flags.MinWordLength
		case "verbose":
			config.Verbose = flags.Verbose
		}
	})

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// applyEnv copies non-empty environment values into the config
func (c *Config) applyEnv(getenv func(string) string) {
	if getenv == nil {
		return
	}
	if v := getenv(EnvBookID); v != "" {
		c.BookID = v
	}
	if v := getenv(EnvCacheDir); v != "" {
		c.CacheDir = v
	}
	if v := getenv(EnvEndpoint); v != "" {
		c.Endpoint = v
	}
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	if c.BookID == "" {
		return fmt.Errorf("--book is required")
	}

	if c.CacheDir == "" {
		return fmt.Errorf("--cache-dir is required")
	}

	if c.Endpoint == "" {
		return fmt.Errorf("--endpoint is required")
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("--timeout must be positive")
	}

	if c.RateLimit < 0 {
		return fmt.Errorf("--rate-limit must be non-negative (0 = no limit)")
	}

	if c.Lives <= 0 {
		return fmt.Errorf("--lives must be positive")
	}

	// Shorter words would never pass dictionary validation
	if c.MinWordLength < wordbank.MinWordLength {
		return fmt.Errorf("--min-word-length must be at least %d", wordbank.MinWordLength)
	}

	if c.Word != "" {
		if !wordPattern.MatchString(c.Word) {
			return fmt.Errorf("--word must contain only letters, digits or underscores")
		}
		if utf8.RuneCountInString(c.Word) < c.MinWordLength {
			return fmt.Errorf("--word must have at least %d characters", c.MinWordLength)
		}
	}

	return nil
}

package main

import (
	"flag"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/zephyrtronium/calculator"
	"github.com/zephyrtronium/calculator/internal/config"
)

func main() {
	var (
		cfgname, verb, prompt, level string
		legacy, tolerant, rightpow   bool
		echo                         bool
	)
	flag.StringVar(&cfgname, "config", "", "configuration file (.toml, .yaml, or .yml)")
	flag.StringVar(&verb, "fmt", "%v", "result formatting verb")
	flag.StringVar(&prompt, "prompt", "", "prompt printed before each line in interactive mode")
	flag.StringVar(&level, "log-level", "warn", "log level (debug, info, warn, error)")
	flag.BoolVar(&legacy, "legacy", false, "substitute constant names anywhere in the input, to six places")
	flag.BoolVar(&tolerant, "tolerant", false, "tolerate unbalanced parentheses")
	flag.BoolVar(&rightpow, "right-pow", false, "make ^ right-associative")
	flag.BoolVar(&echo, "echo", false, "print postfix forms")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().
		Level(zerolog.WarnLevel)

	cfg := config.Default()
	if cfgname != "" {
		c, err := config.Load(cfgname)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to load config")
		}
		cfg = c
	}
	// Flags given explicitly override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fmt":
			cfg.Format = verb
		case "prompt":
			cfg.Prompt = prompt
		case "log-level":
			cfg.LogLevel = level
		case "legacy":
			cfg.Legacy = legacy
		case "tolerant":
			cfg.Tolerant = tolerant
		case "right-pow":
			cfg.RightPow = rightpow
		}
	})
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}
	logger = logger.Level(cfg.Level())

	s := session{
		eng:    calculator.New(cfg.Options(logger)...),
		out:    os.Stdout,
		log:    logger,
		verb:   cfg.Format,
		prompt: cfg.Prompt,
		echo:   echo,
	}

	if flag.NArg() > 0 {
		ok := true
		for _, arg := range flag.Args() {
			if !s.eval(arg) {
				ok = false
			}
		}
		if !ok {
			os.Exit(1)
		}
		return
	}

	s.interactive = isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	logger.Debug().Bool("interactive", s.interactive).Msg("reading stdin")
	if err := s.run(os.Stdin); err != nil {
		logger.Fatal().Err(err).Msg("failed to read input")
	}
}

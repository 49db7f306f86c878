package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const usageText = `go-life [flags] <height> <width> [<comma separated coordinates of alive cells like: <row>-<col>,<row>-<col>>]

Coordinates are 1-indexed; row 1 is printed at the bottom.
`

var errUsage = errors.New("invalid arguments")

// patternList collects repeated -pattern flags
type patternList []string

func (p *patternList) String() string { return strings.Join(*p, ",") }

func (p *patternList) Set(v string) error {
	*p = append(*p, v)
	return nil
}

// cliOptions holds the parsed command line before it is merged with the config file.
type cliOptions struct {
	configPath  string
	tick        time.Duration
	generations int
	parallel    bool
	random      float64
	seed        int64
	patterns    patternList
	positional  []string
	set         map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*cliOptions, error) {
	opts := &cliOptions{set: map[string]bool{}}

	fs := flag.NewFlagSet("go-life", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usageText)
		fs.PrintDefaults()
	}
	fs.StringVar(&opts.configPath, "config", "config.json", "path to a JSON config file; missing file means defaults")
	fs.DurationVar(&opts.tick, "tick", 0, "delay between generations (overrides config)")
	fs.IntVar(&opts.generations, "generations", 0, "stop after this many generations, 0 runs until interrupted")
	fs.BoolVar(&opts.parallel, "parallel", false, "scan rows concurrently")
	fs.Float64Var(&opts.random, "random", 0, "fill the grid randomly with this density")
	fs.Int64Var(&opts.seed, "seed", 1, "seed for -random")
	fs.Var(&opts.patterns, "pattern", "seed pattern name[@row-col], repeatable; one of "+strings.Join(model.PatternNames(), ", "))

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	opts.positional = fs.Args()
	return opts, nil
}

// buildRun merges the command line over the config file and assembles the initial generation.
func buildRun(opts *cliOptions) (utils.Config, model.AliveSet, error) {
	config, err := utils.LoadConfigOrDefault(opts.configPath)
	if err != nil {
		return config, nil, err
	}

	cells := model.NewAliveSet()
	switch len(opts.positional) {
	case 0:
		if config.Height == 0 && config.Width == 0 {
			return config, nil, errors.Wrap(errUsage, "height and width are required")
		}
	case 2, 3:
		if config.Height, err = parseDimension("height", opts.positional[0]); err != nil {
			return config, nil, err
		}
		if config.Width, err = parseDimension("width", opts.positional[1]); err != nil {
			return config, nil, err
		}
		if len(opts.positional) == 3 {
			if cells, err = model.ParseAliveSet(opts.positional[2]); err != nil {
				return config, nil, err
			}
		}
	default:
		return config, nil, errors.Wrapf(errUsage, "unexpected arguments %q", opts.positional)
	}

	if opts.set["tick"] {
		config.TickInterval.Duration = opts.tick
	}
	if opts.set["generations"] {
		config.MaxGenerations = opts.generations
	}
	if opts.set["parallel"] {
		config.Parallel = opts.parallel
	}
	if opts.set["random"] {
		config.RandomDensity = opts.random
	}
	if opts.set["seed"] {
		config.Seed = opts.seed
	}
	if err = config.Validate(); err != nil {
		return config, nil, err
	}

	for _, arg := range opts.patterns {
		pattern, err := model.ParsePattern(arg)
		if err != nil {
			return config, nil, err
		}
		cells = cells.Union(pattern)
	}
	if config.RandomDensity > 0 {
		rng := rand.New(rand.NewSource(config.Seed))
		cells = cells.Union(model.RandomAliveSet(config.Height, config.Width, config.RandomDensity, rng))
	}

	if _, err = model.ToDense(config.Height, config.Width, cells); err != nil {
		return config, nil, err
	}
	return config, cells, nil
}

func parseDimension(name, text string) (int, error) {
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, errors.Wrapf(errUsage, "%s %q is not a number", name, text)
	}
	return n, nil
}

// run executes the program and returns its exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "go-life: ", log.LstdFlags)

	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	config, initial, err := buildRun(opts)
	if errors.Is(err, errUsage) {
		fmt.Fprintf(stderr, "%v\n\n%s", err, usageText)
		return 2
	}
	if err != nil {
		logger.Printf("%v", err)
		return 1
	}

	result, err := newGame(config, stdout, logger).run(ctx, initial)
	if err != nil {
		logger.Printf("%v", err)
		return 1
	}
	logger.Printf("stopped after %d generations: %s (%d alive)", result.Generations, result.Reason, result.Final.Len())
	return 0
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

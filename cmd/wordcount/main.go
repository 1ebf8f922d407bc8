// Command wordcount counts how often each word occurs in a set of text files
// using an ohash table, and prints one line per distinct word.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/theflywheel/ohash/internal/wordcount"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		layout     bool
		flags      = defaultConfig()
	)

	cmd := &cobra.Command{
		Use:   "wordcount [files...]",
		Short: "Count word occurrences with an open-addressing hash table",
		Long: "Read the given text files, strip punctuation, lowercase every word and\n" +
			"count occurrences in a double-hashing table. Files may also be listed\n" +
			"in the [input] section of the config file.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := defaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = loadConfig(configPath); err != nil {
					return err
				}
			}
			applyFlags(cmd, &cfg, flags)
			if len(args) > 0 {
				cfg.Input.Files = args
			}

			log, err := newLogger(cfg.Log.Level)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			counter, err := run(cmd.Context(), cfg, cmd.OutOrStdout(), log)
			if err != nil {
				return err
			}
			if layout {
				fmt.Fprintln(cmd.OutOrStdout(), counter.Table().Layout())
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "TOML config file")
	f.IntVar(&flags.Table.Size, "size", flags.Table.Size, "initial table size")
	f.Float64Var(&flags.Table.MaxLoadFactor, "max-load-factor", flags.Table.MaxLoadFactor, "load factor that triggers growth")
	f.StringVar(&flags.Input.Encoder, "encoder", flags.Input.Encoder, "key encoder: base27 or xxhash")
	f.BoolVar(&flags.Input.ReduceKeys, "reduce-keys", false, "reduce keys modulo the current table size")
	f.BoolVar(&flags.Input.Presize, "presize", false, "size the table from the number of words")
	f.IntVar(&flags.Input.Workers, "workers", flags.Input.Workers, "files read in parallel")
	f.BoolVar(&layout, "layout", false, "also print the raw slot layout")
	f.StringVar(&flags.Log.Level, "log-level", flags.Log.Level, "log level")
	return cmd
}

// applyFlags copies the flags the user set over cfg.
func applyFlags(cmd *cobra.Command, cfg *Config, flags Config) {
	set := cmd.Flags().Changed
	if set("size") {
		cfg.Table.Size = flags.Table.Size
	}
	if set("max-load-factor") {
		cfg.Table.MaxLoadFactor = flags.Table.MaxLoadFactor
	}
	if set("encoder") {
		cfg.Input.Encoder = flags.Input.Encoder
	}
	if set("reduce-keys") {
		cfg.Input.ReduceKeys = flags.Input.ReduceKeys
	}
	if set("presize") {
		cfg.Input.Presize = flags.Input.Presize
	}
	if set("workers") {
		cfg.Input.Workers = flags.Input.Workers
	}
	if set("log-level") {
		cfg.Log.Level = flags.Log.Level
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "log level %q", level)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// readFiles loads every file concurrently and returns the contents in the
// order given.
func readFiles(ctx context.Context, files []string, workers int) ([]string, error) {
	texts := make([]string, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, workers))
	for i, name := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b, err := os.ReadFile(name)
			if err != nil {
				return errors.Wrapf(err, "read %s", name)
			}
			texts[i] = string(b)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return texts, nil
}

// run counts the words of every input file and writes the report to out.
func run(ctx context.Context, cfg Config, out io.Writer, log *zap.Logger) (*wordcount.Counter, error) {
	if len(cfg.Input.Files) == 0 {
		return nil, errors.New("no input files")
	}
	enc, err := wordcount.EncoderByName(cfg.Input.Encoder)
	if err != nil {
		return nil, err
	}

	texts, err := readFiles(ctx, cfg.Input.Files, cfg.Input.Workers)
	if err != nil {
		return nil, err
	}
	var words []string
	for _, text := range texts {
		words = append(words, wordcount.Tokenize(text)...)
	}

	opts := wordcount.Options{
		Table:      cfg.Table,
		Encoder:    enc,
		ReduceKeys: cfg.Input.ReduceKeys,
		Logger:     log,
	}
	if cfg.Input.Presize {
		opts.Presize = len(words)
	}
	counter, err := wordcount.NewCounter(opts)
	if err != nil {
		return nil, err
	}
	// The table has a single owner: words are fed in file order.
	if err := counter.AddAll(words); err != nil {
		return nil, err
	}

	log.Info("counted words",
		zap.Int("files", len(cfg.Input.Files)),
		zap.Int("words", len(words)),
		zap.Int("distinct", counter.Distinct()),
		zap.Int("collisions", counter.Collisions()),
		zap.Int("table_size", counter.Table().Cap()),
		zap.Float64("load_factor", counter.Table().LoadFactor()))

	return counter, counter.WriteReport(out)
}

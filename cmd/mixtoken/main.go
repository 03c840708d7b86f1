package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/liuminhaw/mixtoken/internal/lemmatizer"
	"github.com/liuminhaw/mixtoken/internal/lexicon"
	"github.com/liuminhaw/mixtoken/internal/tokenizer"
	"github.com/liuminhaw/mixtoken/internal/validator"
	flag "github.com/spf13/pflag"
)

type options struct {
	lexicon    string
	simplified bool
	lemmatize  bool
	lemmatizer string
	cacheFile  string
	verbose    bool
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "mixtoken:", err)
		}
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, []string, error) {
	var opts options

	fs := flag.NewFlagSet("mixtoken", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: mixtoken [flags] [text ...]")
		fmt.Fprintln(stderr, "Tokenizes each argument, or each stdin line when no argument is given.")
		fs.PrintDefaults()
	}
	fs.StringVar(&opts.lexicon, "lexicon", os.Getenv("MIXTOKEN_LEXICON"), "Path to the CC-CEDICT dictionary file (.u8 or .gz)")
	fs.BoolVar(&opts.simplified, "simplified", false, "Render Chinese tokens in Simplified script")
	fs.BoolVar(&opts.lemmatize, "lemmatize", false, "Output lemmas instead of tokens")
	fs.StringVar(&opts.lemmatizer, "lemmatizer", lemmatizer.EngineGolem, "English lemmatizer engine (golem|snowball)")
	fs.StringVar(&opts.cacheFile, "cache-file", "", "JSON file the lemma cache is loaded from and saved to")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Log progress to stderr")

	if err := fs.Parse(args); err != nil {
		return options{}, nil, err
	}

	v := validator.New()
	v.Check(opts.lexicon != "", "lexicon", "must be provided")
	v.Check(
		validator.PermittedValue(opts.lemmatizer, lemmatizer.Engines...),
		"lemmatizer",
		"must be one of 'golem' or 'snowball'",
	)
	if !v.Valid() {
		for key, msg := range v.Errors {
			return options{}, nil, fmt.Errorf("--%s %s", key, msg)
		}
	}

	return opts, fs.Args(), nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, texts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	dict, err := lexicon.LoadFile(opts.lexicon)
	if err != nil {
		return err
	}
	logger.Info("lexicon loaded", slog.Int("entries", dict.Len()), slog.Int("skipped", dict.Skipped()))

	lem, err := lemmatizer.New(opts.lemmatizer)
	if err != nil {
		return err
	}

	lemmaCache := tokenizer.MapCache{}
	if opts.cacheFile != "" {
		lemmaCache, err = loadCacheFile(opts.cacheFile)
		if err != nil {
			return err
		}
		logger.Info("lemma cache loaded", slog.Int("entries", len(lemmaCache)))
	}

	tok := tokenizer.New(dict, lem, tokenizer.Options{
		LemmaCache: lemmaCache,
		Simplified: opts.simplified,
		Logger:     logger,
	})

	process := func(text string) error {
		if !validator.ValidUTF8(text) {
			logger.Warn("input is not valid UTF-8", slog.String("text", text))
		}

		var out []string
		if opts.lemmatize {
			out = tok.Lemmatize(text)
		} else {
			out = tok.Tokenize(text)
		}

		js, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(stdout, "%s\n", js)
		return err
	}

	if len(texts) > 0 {
		for _, text := range texts {
			if err := process(text); err != nil {
				return err
			}
		}
	} else {
		scanner := bufio.NewScanner(stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			if err := process(scanner.Text()); err != nil {
				return err
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read input: %w", err)
		}
	}

	if opts.cacheFile != "" {
		if err := saveCacheFile(opts.cacheFile, lemmaCache); err != nil {
			return err
		}
		logger.Info("lemma cache saved", slog.Int("entries", len(lemmaCache)))
	}

	return nil
}

// loadCacheFile reads a token -> lemma JSON object. A missing file is an
// empty cache.
func loadCacheFile(path string) (tokenizer.MapCache, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return tokenizer.MapCache{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read lemma cache: %w", err)
	}

	lemmas := tokenizer.MapCache{}
	if len(strings.TrimSpace(string(b))) == 0 {
		return lemmas, nil
	}
	if err := json.Unmarshal(b, &lemmas); err != nil {
		return nil, fmt.Errorf("decode lemma cache %s: %w", path, err)
	}
	return lemmas, nil
}

func saveCacheFile(path string, lemmas tokenizer.MapCache) error {
	js, err := json.MarshalIndent(lemmas, "", "  ")
	if err != nil {
		return err
	}

	// Write next to the target first so a failed run keeps the old file.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(js, '\n'), 0o644); err != nil {
		return fmt.Errorf("write lemma cache: %w", err)
	}
	return os.Rename(tmp, path)
}

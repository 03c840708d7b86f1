package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	_ "github.com/lib/pq"
	"github.com/liuminhaw/mixtoken/internal/cache"
	"github.com/liuminhaw/mixtoken/internal/data"
	"github.com/liuminhaw/mixtoken/internal/lemmatizer"
	"github.com/liuminhaw/mixtoken/internal/lexicon"
	"github.com/liuminhaw/mixtoken/internal/platform"
	"github.com/liuminhaw/mixtoken/internal/tokenizer"
	"github.com/liuminhaw/mixtoken/internal/validator"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const version = "1.0.0"

type application struct {
	config      config
	logger      *slog.Logger
	models      *data.Models
	lexiconSize int
	memCache    *cache.Memory
	redisCache  *cache.Redis
	traditional *tokenizer.Tokenizer
	simplified  *tokenizer.Tokenizer
	done        chan struct{}
	wg          sync.WaitGroup
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	registerFlags()
	displayVersion := flag.Bool("version", false, "Display version and exit")
	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	configFile, _ := flag.CommandLine.GetString("config")
	cfg, err := configSetup(viper.New(), configFile)
	if err != nil {
		logger.Error("Error loading configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	v := validator.New()
	if validateConfig(v, cfg); !v.Valid() {
		logger.Error("Invalid configuration", slog.Any("errors", v.Errors))
		os.Exit(1)
	}

	// The dictionary is loaded once and shared read-only by every tokenizer.
	dict, err := lexicon.LoadFile(cfg.lexicon.file)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
	logger.Info("lexicon loaded",
		slog.String("file", cfg.lexicon.file),
		slog.Int("entries", dict.Len()),
		slog.Int("skipped", dict.Skipped()),
	)

	var lex tokenizer.Lexicon = dict
	if cfg.lexicon.engine == engineJieba {
		jieba, err := openJieba(cfg, dict)
		if err != nil {
			logger.Error(err.Error())
			os.Exit(1)
		}
		defer jieba.Close()
		lex = jieba
	}

	lem, err := lemmatizer.New(cfg.lemmatizer.engine)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	if cfg.db.dsnParameter != "" {
		store, err := platform.NewParameterStore()
		if err != nil {
			logger.Error(err.Error())
			os.Exit(1)
		}
		cfg.db.dsn, err = store.Get(cfg.db.dsnParameter)
		if err != nil {
			logger.Error("Error reading database DSN parameter", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	app := &application{
		config:      cfg,
		logger:      logger,
		lexiconSize: dict.Len(),
		done:        make(chan struct{}),
	}

	if cfg.db.dsn != "" {
		db, err := openDB(cfg)
		if err != nil {
			logger.Error(err.Error())
			os.Exit(1)
		}
		defer db.Close()
		logger.Info("database connection pool established")

		models := data.NewModels(db)
		app.models = &models
	}

	lemmaCache, err := app.openLemmaCache()
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
	if app.redisCache != nil {
		defer app.redisCache.Close()
	}

	app.traditional = tokenizer.New(lex, lem, tokenizer.Options{
		LemmaCache: lemmaCache,
		Logger:     logger,
	})
	app.simplified = tokenizer.New(lex, lem, tokenizer.Options{
		LemmaCache: lemmaCache,
		Simplified: true,
		Logger:     logger,
	})

	err = app.serve()
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func openJieba(cfg config, dict *lexicon.Dictionary) (*lexicon.Jieba, error) {
	var paths []string
	if cfg.lexicon.jiebaDictDir != "" {
		var err error
		paths, err = lexicon.JiebaDictPaths(cfg.lexicon.jiebaDictDir)
		if err != nil {
			return nil, err
		}
	}

	opts := []lexicon.JiebaOption{lexicon.WithHMM(true)}
	if cfg.lexicon.convert {
		toSimplified, toTraditional, err := lexicon.NewConverters()
		if err != nil {
			return nil, err
		}
		opts = append(opts, lexicon.WithConverters(toSimplified, toTraditional))
	}

	return lexicon.NewJieba(dict, paths, opts...), nil
}

// openDB returns a sql.DB connection pool
func openDB(cfg config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.db.dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.db.maxOpenConns)
	db.SetMaxIdleConns(cfg.db.maxIdleConns)
	db.SetConnMaxIdleTime(cfg.db.maxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

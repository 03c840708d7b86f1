package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/liuminhaw/mixtoken/internal/lemmatizer"
	"github.com/liuminhaw/mixtoken/internal/validator"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var defaultConfigFile = "mixtoken.toml"

const (
	engineCedict = "cedict"
	engineJieba  = "jieba"

	cacheNone   = "none"
	cacheMemory = "memory"
	cacheRedis  = "redis"
)

type config struct {
	port    int
	env     string
	limiter struct {
		rps     float64
		burst   int
		enabled bool
	}
	lexicon struct {
		file         string
		engine       string
		jiebaDictDir string
		convert      bool
	}
	tokenizer struct {
		simplified    bool
		maxTextLength int
	}
	lemmatizer struct {
		engine string
	}
	cache struct {
		backend       string
		flushInterval time.Duration
		redis         struct {
			addr     string
			password string
			db       int
			key      string
		}
	}
	db struct {
		dsn          string
		dsnParameter string
		maxOpenConns int
		maxIdleConns int
		maxIdleTime  time.Duration
	}
}

func registerFlags() {
	flag.String("config", "", "Path to the configuration file")
	flag.Int("port", 4000, "API server port")
	flag.String("env", "development", "Environment (development|staging|production)")
	flag.Float64("limiter-rps", 20, "Max requests per second limit")
	flag.Int("limiter-burst", 40, "Max burst size for rate limiter")
	flag.Bool("limiter-enabled", true, "Enable rate limiting")

	flag.String("lexicon", "", "Path to the CC-CEDICT dictionary file (.u8 or .gz)")
	flag.String("lexicon-engine", engineCedict, "Chinese word breaking engine (cedict|jieba)")
	flag.String("jieba-dict-dir", "", "Directory holding the jieba dictionary files")
	flag.Bool("lexicon-convert", false, "Use OpenCC conversion for jieba words missing from the dictionary")
	flag.Bool("simplified", false, "Render Chinese tokens in Simplified script by default")
	flag.Int("max-text-length", 10000, "Maximum number of characters accepted per request")
	flag.String("lemmatizer", lemmatizer.EngineGolem, "English lemmatizer engine (golem|snowball)")

	flag.String("cache-backend", cacheMemory, "Lemma cache backend (none|memory|redis)")
	flag.Duration("cache-flush-interval", time.Minute, "How often new lemmas are written to the database")
	flag.String("redis-addr", "localhost:6379", "Redis address")
	flag.String("redis-password", "", "Redis password")
	flag.Int("redis-db", 0, "Redis database number")

	flag.String("db-dsn", "", "PostgreSQL DSN for lemma cache persistence")
	flag.String("db-dsn-parameter", "", "AWS SSM parameter holding the PostgreSQL DSN")
	flag.Int("db-max-open-conns", 25, "Maximum number of open connections to the database")
	flag.Int("db-max-idle-conns", 25, "Maximum number of idle connections to the database")
	flag.Duration("db-max-idle-time", 15*time.Minute, "Maximum amount of time a connection may be idle")
}

func configSetup(conf *viper.Viper, configFile string) (config, error) {
	conf.SetDefault("server.port", 4000)
	conf.SetDefault("server.env", "development")
	conf.SetDefault("server.limiter.rps", 20.0)
	conf.SetDefault("server.limiter.burst", 40)
	conf.SetDefault("server.limiter.enabled", true)
	conf.SetDefault("lexicon.engine", engineCedict)
	conf.SetDefault("lexicon.convert", false)
	conf.SetDefault("tokenizer.simplified", false)
	conf.SetDefault("tokenizer.maxTextLength", 10000)
	conf.SetDefault("lemmatizer.engine", lemmatizer.EngineGolem)
	conf.SetDefault("cache.backend", cacheMemory)
	conf.SetDefault("cache.flushInterval", time.Minute)
	conf.SetDefault("cache.redis.addr", "localhost:6379")
	conf.SetDefault("cache.redis.db", 0)
	conf.SetDefault("cache.redis.key", "mixtoken:lemmas")
	conf.SetDefault("database.maxOpenConns", 25)
	conf.SetDefault("database.maxIdleConns", 25)
	conf.SetDefault("database.maxIdleTime", 15*time.Minute)

	if configFile != "" {
		conf.SetConfigFile(configFile)
	} else {
		conf.SetConfigName(defaultConfigFile)
		conf.SetConfigType("toml")
		conf.AddConfigPath("/etc/mixtoken/")
		conf.AddConfigPath("$HOME/.mixtoken/")
		conf.AddConfigPath(".")
	}

	if err := conf.ReadInConfig(); err != nil {
		// Running on defaults and flags alone is fine unless a file was
		// asked for explicitly.
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return config{}, fmt.Errorf("read config: %w", err)
		}
	}

	conf.BindPFlag("server.port", flag.Lookup("port"))
	conf.BindPFlag("server.env", flag.Lookup("env"))
	conf.BindPFlag("server.limiter.rps", flag.Lookup("limiter-rps"))
	conf.BindPFlag("server.limiter.burst", flag.Lookup("limiter-burst"))
	conf.BindPFlag("server.limiter.enabled", flag.Lookup("limiter-enabled"))
	conf.BindPFlag("lexicon.file", flag.Lookup("lexicon"))
	conf.BindPFlag("lexicon.engine", flag.Lookup("lexicon-engine"))
	conf.BindPFlag("lexicon.jiebaDictDir", flag.Lookup("jieba-dict-dir"))
	conf.BindPFlag("lexicon.convert", flag.Lookup("lexicon-convert"))
	conf.BindPFlag("tokenizer.simplified", flag.Lookup("simplified"))
	conf.BindPFlag("tokenizer.maxTextLength", flag.Lookup("max-text-length"))
	conf.BindPFlag("lemmatizer.engine", flag.Lookup("lemmatizer"))
	conf.BindPFlag("cache.backend", flag.Lookup("cache-backend"))
	conf.BindPFlag("cache.flushInterval", flag.Lookup("cache-flush-interval"))
	conf.BindPFlag("cache.redis.addr", flag.Lookup("redis-addr"))
	conf.BindPFlag("cache.redis.password", flag.Lookup("redis-password"))
	conf.BindPFlag("cache.redis.db", flag.Lookup("redis-db"))
	conf.BindPFlag("database.dsn", flag.Lookup("db-dsn"))
	conf.BindPFlag("database.dsnParameter", flag.Lookup("db-dsn-parameter"))
	conf.BindPFlag("database.maxOpenConns", flag.Lookup("db-max-open-conns"))
	conf.BindPFlag("database.maxIdleConns", flag.Lookup("db-max-idle-conns"))
	conf.BindPFlag("database.maxIdleTime", flag.Lookup("db-max-idle-time"))

	var cfg config
	cfg.port = conf.GetInt("server.port")
	cfg.env = conf.GetString("server.env")
	cfg.limiter.rps = conf.GetFloat64("server.limiter.rps")
	cfg.limiter.burst = conf.GetInt("server.limiter.burst")
	cfg.limiter.enabled = conf.GetBool("server.limiter.enabled")
	cfg.lexicon.file = conf.GetString("lexicon.file")
	cfg.lexicon.engine = conf.GetString("lexicon.engine")
	cfg.lexicon.jiebaDictDir = conf.GetString("lexicon.jiebaDictDir")
	cfg.lexicon.convert = conf.GetBool("lexicon.convert")
	cfg.tokenizer.simplified = conf.GetBool("tokenizer.simplified")
	cfg.tokenizer.maxTextLength = conf.GetInt("tokenizer.maxTextLength")
	cfg.lemmatizer.engine = conf.GetString("lemmatizer.engine")
	cfg.cache.backend = conf.GetString("cache.backend")
	cfg.cache.flushInterval = conf.GetDuration("cache.flushInterval")
	cfg.cache.redis.addr = conf.GetString("cache.redis.addr")
	cfg.cache.redis.password = conf.GetString("cache.redis.password")
	cfg.cache.redis.db = conf.GetInt("cache.redis.db")
	cfg.cache.redis.key = conf.GetString("cache.redis.key")
	cfg.db.dsn = conf.GetString("database.dsn")
	cfg.db.dsnParameter = conf.GetString("database.dsnParameter")
	cfg.db.maxOpenConns = conf.GetInt("database.maxOpenConns")
	cfg.db.maxIdleConns = conf.GetInt("database.maxIdleConns")
	cfg.db.maxIdleTime = conf.GetDuration("database.maxIdleTime")

	return cfg, nil
}

func validateConfig(v *validator.Validator, cfg config) {
	v.Check(cfg.port > 0 && cfg.port <= 65535, "server.port", "must be between 1 and 65535")
	v.Check(
		validator.PermittedValue(cfg.env, "development", "staging", "production"),
		"server.env",
		"must be one of 'development', 'staging' or 'production'",
	)
	v.Check(cfg.lexicon.file != "", "lexicon.file", "must be provided")
	v.Check(
		validator.PermittedValue(cfg.lexicon.engine, engineCedict, engineJieba),
		"lexicon.engine",
		"must be one of 'cedict' or 'jieba'",
	)
	v.Check(cfg.tokenizer.maxTextLength > 0, "tokenizer.maxTextLength", "must be greater than zero")
	v.Check(
		validator.PermittedValue(cfg.lemmatizer.engine, lemmatizer.Engines...),
		"lemmatizer.engine",
		"must be one of 'golem' or 'snowball'",
	)
	v.Check(
		validator.PermittedValue(cfg.cache.backend, cacheNone, cacheMemory, cacheRedis),
		"cache.backend",
		"must be one of 'none', 'memory' or 'redis'",
	)
	if cfg.cache.backend == cacheRedis {
		v.Check(cfg.cache.redis.addr != "", "cache.redis.addr", "must be provided")
	}
	if cfg.db.dsn != "" || cfg.db.dsnParameter != "" {
		v.Check(cfg.cache.backend == cacheMemory, "database.dsn", "persistence needs the 'memory' cache backend")
		v.Check(cfg.cache.flushInterval > 0, "cache.flushInterval", "must be greater than zero")
	}
}

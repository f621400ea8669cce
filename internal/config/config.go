package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Archive ArchiveConfig `mapstructure:"archive" yaml:"archive"`
	Fetch   FetchConfig   `mapstructure:"fetch" yaml:"fetch"`
	Feed    FeedConfig    `mapstructure:"feed" yaml:"feed"`
	Store   StoreConfig   `mapstructure:"store" yaml:"store"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`

	Port string `mapstructure:"port" yaml:"port"`
}

type ArchiveConfig struct {
	// Dir is the archive root; feed.xml, index.html and the audio
	// directory all live beneath it.
	Dir      string `mapstructure:"dir" yaml:"dir"`
	AudioDir string `mapstructure:"audio_dir" yaml:"audio_dir"`
	BaseURL  string `mapstructure:"base_url" yaml:"base_url"`
}

type FetchConfig struct {
	// Workers > 1 enables the bounded-concurrency pool. The default of 1
	// keeps the strictly sequential behavior.
	Workers int `mapstructure:"workers" yaml:"workers"`
	// TimeoutSeconds applies per entry; 0 means no timeout.
	TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	ManifestPath   string `mapstructure:"manifest_path" yaml:"manifest_path"`
	UserAgent      string `mapstructure:"user_agent" yaml:"user_agent"`
}

type FeedConfig struct {
	Path      string `mapstructure:"path" yaml:"path"`
	IndexPath string `mapstructure:"index_path" yaml:"index_path"`
	Author    string `mapstructure:"author" yaml:"author"`
	Image     string `mapstructure:"image" yaml:"image"`
}

type StoreConfig struct {
	SQLitePath string `mapstructure:"sqlite_path" yaml:"sqlite_path"`
}

type LogConfig struct {
	Path          string `mapstructure:"path" yaml:"path"`
	Level         string `mapstructure:"level" yaml:"level"`
	IncludeStdout bool   `mapstructure:"include_stdout" yaml:"include_stdout"`
}

func Load(path string) (*Config, error) {

	v := viper.New()

	// Set Defaults
	v.SetDefault("port", "8080")
	v.SetDefault("archive.dir", ".")
	v.SetDefault("archive.audio_dir", "audio")
	v.SetDefault("archive.base_url", "https://manuelcorpas.github.io/podcast")
	v.SetDefault("fetch.workers", 1)
	v.SetDefault("fetch.timeout_seconds", 0)
	v.SetDefault("fetch.user_agent", "podarc/1.0")
	v.SetDefault("feed.path", "feed.xml")
	v.SetDefault("feed.index_path", "index.html")
	v.SetDefault("feed.author", "Manuel Corpas")
	v.SetDefault("feed.image", "https://corpasfoo.files.wordpress.com/2017/06/podcast.jpg?fit=3000%2C3000")
	v.SetDefault("store.sqlite_path", "podarc.db")
	v.SetDefault("log.path", "podarc.log")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.include_stdout", true)

	// The config file is optional: the defaults describe the real archive
	// layout, so a bare checkout works without one.
	if path == "" {
		path = "config.yaml"
	}
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	} else if path != "config.yaml" {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	// Support Environment Variables
	v.SetEnvPrefix("PODARC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Archive.Dir == "" {
		c.Archive.Dir = "."
	}

	if c.Archive.AudioDir == "" {
		c.Archive.AudioDir = "audio"
	}

	if c.Fetch.Workers <= 0 {
		c.Fetch.Workers = 1
	}

	if c.Fetch.TimeoutSeconds < 0 {
		return fmt.Errorf("fetch.timeout_seconds must not be negative, got %d", c.Fetch.TimeoutSeconds)
	}

	c.Archive.BaseURL = strings.TrimRight(c.Archive.BaseURL, "/")

	return nil
}

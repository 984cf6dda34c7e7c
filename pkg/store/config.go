package store

import (
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	DefaultPath  = "~/.tidy.db"
	DefaultTabs  = "~/.tidy/window.yaml"
	DefaultTheme = "light"
)

// Config carries the settings shared by the store, the tab source and the CLI.
type Config interface {
	BasePath() string
	TabsPath() string
	DefaultTheme() string
	LogLevel() string
	LogJSON() bool
}

// LoadConfig reads a .tidy config file from $TIDY_CONFIG_PATH, the working
// directory or $HOME, with TIDY_* environment overrides.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", DefaultPath)
	v.SetDefault("tabs", DefaultTabs)
	v.SetDefault("theme", DefaultTheme)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetConfigName(".tidy") // .yaml is implicit
	v.SetEnvPrefix("TIDY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("TIDY_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, err
	}
	tabs, err := homedir.Expand(v.GetString("tabs"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path:     path,
		Tabs:     tabs,
		Theme:    v.GetString("theme"),
		Level:    v.GetString("log.level"),
		JSONLogs: v.GetBool("log.json"),
	}, nil
}

type fileConfig struct {
	Path     string `json:"path"`
	Tabs     string `json:"tabs"`
	Theme    string `json:"theme"`
	Level    string `json:"logLevel"`
	JSONLogs bool   `json:"logJson"`
}

func (f *fileConfig) BasePath() string { return f.Path }

func (f *fileConfig) TabsPath() string { return f.Tabs }

func (f *fileConfig) DefaultTheme() string {
	if f.Theme == "" {
		return DefaultTheme
	}
	return f.Theme
}

func (f *fileConfig) LogLevel() string { return f.Level }

func (f *fileConfig) LogJSON() bool { return f.JSONLogs }

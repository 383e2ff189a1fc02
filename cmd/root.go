package cmd

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	appName   = "interview-panel"
	envPrefix = "INTERVIEW_PANEL"
)

type Config struct {
	API     *APIConfig     `mapstructure:"api"`
	Session *SessionConfig `mapstructure:"session"`
	AI      *AIConfig      `mapstructure:"ai"`
}

type APIConfig struct {
	BaseURL   string `mapstructure:"base-url"`
	AuthURL   string `mapstructure:"auth-url"`
	UserAgent string `mapstructure:"user-agent"`
}

type SessionConfig struct {
	// Backend is one of file, redis or memory.
	Backend     string        `mapstructure:"backend"`
	File        string        `mapstructure:"file"`
	RedisURL    string        `mapstructure:"redis-url"`
	RedisPrefix string        `mapstructure:"redis-prefix"`
	TTL         time.Duration `mapstructure:"ttl"`
}

type AIConfig struct {
	// Provider is remote (backend endpoint) or gemini.
	Provider  string        `mapstructure:"provider"`
	Endpoint  string        `mapstructure:"endpoint"`
	Questions int           `mapstructure:"questions"`
	Gemini    *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey       string `mapstructure:"api-key"`
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   appName,
		Short: "interview-panel is a terminal client for managing candidates, interviews and results",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is interview-panel.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored notifications")
	rootCmd.PersistentFlags().Bool("ephemeral", false, "keep the session in memory for this run only")
	rootCmd.PersistentFlags().String("api-url", "", "base URL of the interviews backend")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))
	viper.BindPFlag("ephemeral", rootCmd.PersistentFlags().Lookup("ephemeral"))
	viper.BindPFlag("api.base-url", rootCmd.PersistentFlags().Lookup("api-url"))

	setDefaults(viper.GetViper())

	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base-url", "http://localhost:8080")
	v.SetDefault("api.auth-url", "")
	v.SetDefault("api.user-agent", "")
	v.SetDefault("session.backend", sessionFile)
	v.SetDefault("session.file", "")
	v.SetDefault("session.redis-url", "")
	v.SetDefault("session.redis-prefix", "")
	v.SetDefault("session.ttl", 0)
	v.SetDefault("ai.provider", providerRemote)
	v.SetDefault("ai.endpoint", "")
	v.SetDefault("ai.questions", 10)
	v.SetDefault("ai.gemini.api-key", "")
	v.SetDefault("ai.gemini.api-key-file", "")
	v.SetDefault("ai.gemini.model", "")
	v.SetDefault("ai.gemini.max-log-length", 0)
}

func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if err := readConfig(viper.GetViper(), cfgFile); err != nil {
		log.Fatal(err)
	}
}

// readConfig loads path, or interview-panel.yaml from the current directory.
// Without an explicit path a missing file is not an error.
func readConfig(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		return v.ReadInConfig()
	}

	v.AddConfigPath(".")
	if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
	}
	v.SetConfigName(appName)
	v.SetConfigType("yaml")

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return err
}

func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName), nil
}

func getConfig(v *viper.Viper) (*Config, error) {
	var config *Config
	err := v.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

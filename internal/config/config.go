package config

import (
	"flag"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var once sync.Once
var logger *zap.SugaredLogger
var loggerOnce sync.Once

// isTestRun returns true if the current process is a Go test binary.
func isTestRun() bool {
	return flag.Lookup("test.v") != nil || filepath.Ext(os.Args[0]) == ".test"
}

func initConfig() {
	once.Do(func() {
		viper.SetDefault("weatherapi.base_url", "https://api.weatherapi.com/v1")
		viper.SetDefault("http.timeout", "10s")

		root, err := getProjectRoot()
		if err != nil {
			GetLogger().Errorw("Error finding project root", "error", err)
		}
		viper.SetConfigType("yaml")

		viper.SetConfigName("config")
		viper.AddConfigPath(root)
		if err = viper.ReadInConfig(); err != nil {
			GetLogger().Errorw("Error reading config file: %v", err)
		}

		if isTestRun() {
			viper.SetConfigName("config_test")
			viper.AddConfigPath(root)
			if err = viper.MergeInConfig(); err != nil {
				GetLogger().Errorw("Error reading config file", "error", err)
			}
		}
	})
}

func getProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

func GetWeatherAPIBaseURL() string {
	initConfig()
	return viper.GetString("weatherapi.base_url")
}

// GetWeatherAPIKey reads the credential from the environment on every call.
// A missing key is a per-invocation runtime condition, not a startup failure.
func GetWeatherAPIKey() string {
	_ = godotenv.Load()
	return os.Getenv("WEATHERAPI_KEY")
}

// GetHTTPTimeout returns the outbound HTTP client timeout as a time.Duration.
// Defaults to 10s if not set or invalid.
func GetHTTPTimeout() time.Duration {
	initConfig()
	durStr := viper.GetString("http.timeout")
	if durStr == "" {
		durStr = "10s"
	}
	dur, err := time.ParseDuration(durStr)
	if err != nil {
		return 10 * time.Second
	}
	return dur
}

// ReloadConfigForTest resets the config singleton and reloads Viper config. Use only in tests.
func ReloadConfigForTest() {
	once = sync.Once{}
	initConfig()
}

func GetLogger() *zap.SugaredLogger {
	loggerOnce.Do(func() {
		l, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		logger = l.Sugar()
	})
	return logger
}

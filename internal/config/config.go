package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	appName         = "sidequest"
	storePathKey    = "store.path"
	exportFormatKey = "export.format"

	// DefaultExportFormat is used when neither config nor --format says
	// otherwise.
	DefaultExportFormat = "json"
)

// Config carries everything the commands need to run.
type Config struct {
	// StorePath is the journal file location.
	StorePath string
	// ExportFormat is the default format for the export command.
	ExportFormat string
}

// Load resolves configuration from config.toml in the sidequest directory
// under the OS user config dir, overridable with SIDEQUEST_* environment
// variables (SIDEQUEST_STORE_PATH, SIDEQUEST_EXPORT_FORMAT). A missing
// config file means defaults.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")

	dir, err := os.UserConfigDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve user config directory: %w", err)
	}
	appDir := filepath.Join(dir, appName)
	v.AddConfigPath(appDir)

	v.SetDefault(storePathKey, filepath.Join(appDir, appName+".json"))
	v.SetDefault(exportFormatKey, DefaultExportFormat)

	v.SetEnvPrefix(strings.ToUpper(appName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	return Config{
		StorePath:    v.GetString(storePathKey),
		ExportFormat: v.GetString(exportFormatKey),
	}, nil
}

package application

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	// AppName is the application name used for the binary and help output
	AppName = "gpm"

	// ConfigFileName is the name of the configuration file in the home directory
	ConfigFileName = ".gpm"

	// ConfigBackupSuffix is appended to the configuration path while saving
	ConfigBackupSuffix = ".new"

	// ConfigEnvVar overrides the configuration file location
	ConfigEnvVar = "GPM_CONFIG"
)

var (
	once    sync.Once
	homeDir string
	errHome error
)

// GetHomeDirectory returns the user home directory.
// The lookup runs once per process; a failure is sticky.
func GetHomeDirectory() (string, error) {
	once.Do(lazyLoad)

	if errHome != nil {
		return "", errHome
	}

	return homeDir, nil
}

// GetConfigPath returns the configuration file path.
// GPM_CONFIG takes precedence over ~/.gpm.
func GetConfigPath() (string, error) {
	if p := os.Getenv(ConfigEnvVar); p != "" {
		return filepath.Abs(p)
	}

	home, err := GetHomeDirectory()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ConfigFileName), nil
}

// BackupPath returns the temporary path used while writing the configuration.
func BackupPath(configPath string) string {
	return configPath + ConfigBackupSuffix
}

func lazyLoad() {
	dir, err := os.UserHomeDir()
	if err != nil {
		errHome = fmt.Errorf("home directory cannot be reached: %w", err)

		return
	}

	homeDir = dir
}

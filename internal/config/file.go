package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	appName    = "ibox"
	configFile = "config.yaml"
)

// Mutex for thread-safe file operations
var fileMutex sync.Mutex

// GetConfigDir returns the OS-appropriate configuration directory for the application.
// This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/ibox or $HOME/.config/ibox
//   - macOS: $HOME/.config/ibox (following XDG convention on macOS)
//   - Windows: %LOCALAPPDATA%\ibox
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetConfigPath returns the full path to the configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// Load reads the defaults file at path; an empty path means the default
// location. A missing file yields NewFile(), so --save-config can create it.
func Load(path string) (*File, error) {
	if path == "" {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return nil, &Error{Field: "config", Value: "", Message: "cannot locate config file", Err: err}
		}
	}

	fileMutex.Lock()
	defer fileMutex.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewFile(), nil
		}
		return nil, &Error{Field: "config", Value: path, Message: "failed to read config file", Err: err}
	}

	file := NewFile()
	if err := yaml.Unmarshal(data, file); err != nil {
		return nil, &Error{Field: "config", Value: path, Message: "failed to parse config file", Err: err}
	}

	// A file without a version key is treated as version 1
	if file.Version == 0 {
		file.Version = 1
	}
	if file.Version != 1 {
		return nil, &Error{Field: "config", Value: path, Message: fmt.Sprintf("unsupported config version %d (expected 1)", file.Version)}
	}
	if file.Presets == nil {
		file.Presets = make(map[string]string)
	}
	if _, err := BuiltinPresets().WithCustom(file.Presets); err != nil {
		return nil, err
	}

	return file, nil
}

// Apply records command-line overrides in the file, validating them strictly.
// It is used when saving defaults, so a bad value is an error rather than
// a silent fallback.
func (f *File) Apply(o Overrides) error {
	if o.Border != nil {
		presets, err := BuiltinPresets().WithCustom(f.Presets)
		if err != nil {
			return err
		}
		if _, err := presets.Resolve(*o.Border); err != nil {
			return err
		}
		f.Border = *o.Border
	}
	if o.Length != nil {
		n, ok := ParseLength(*o.Length, 0)
		if !ok {
			return &Error{Field: "length", Value: *o.Length, Message: "must be a non-negative integer"}
		}
		f.Length = &n
	}
	if o.Center != nil {
		f.Center = *o.Center
	}
	if o.IgnoreUnknownKeys != nil {
		f.IgnoreUnknownKeys = *o.IgnoreUnknownKeys
	}
	if o.Position != nil {
		return &Error{Field: "position", Value: *o.Position, Message: "a fixed position cannot be saved as a default"}
	}
	return nil
}

// Save writes the file to path (the default location when empty).
// Performs an atomic write to prevent corruption on crash.
func (f *File) Save(path string) (string, error) {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if path == "" {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return "", fmt.Errorf("failed to get config path: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(f)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# ibox configuration file
# Defaults for border, length and placement; command-line flags win.
#
# Location: ` + path + `

`)
	data = append(header, data...)

	// Write to temporary file first (atomic write)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to save config file: %w", err)
	}

	return path, nil
}

// LengthString renders the configured length for display.
func (f *File) LengthString() string {
	if f.Length == nil {
		return "default"
	}
	return strconv.Itoa(*f.Length)
}

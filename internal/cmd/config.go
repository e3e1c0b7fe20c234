package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// ConfigPath returns the path of the file containing arguments that are
// prepended to every command line.
func ConfigPath() (string, error) {
	path, err := xdg.ConfigFile(filepath.Join("echo", "globals.conf"))
	if err != nil {
		return "", fmt.Errorf("failed to resolve globals config path: %w", err)
	}

	return path, nil
}

// LoadGlobalsConfig returns the arguments from the globals config file.
func LoadGlobalsConfig() ([]string, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	return loadArgs(path)
}

func loadArgs(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// return no error when the file doesn't exist
			return nil, nil
		}

		return nil, fmt.Errorf("failed to read globals config file: %w", err)
	}

	return strings.Fields(string(b)), nil
}

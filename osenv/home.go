// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package osenv

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"
)

// ConfigFileName is the name of the cvm configuration file.
const ConfigFileName = "config.yaml"

var (
	cvmHomeMu sync.Mutex
	cvmHome   string
)

// SetCvmHome sets the cvm home directory and returns the previous value.
// An empty value restores the environment-derived default.
func SetCvmHome(newCvmHome string) string {
	cvmHomeMu.Lock()
	defer cvmHomeMu.Unlock()

	old := cvmHome
	cvmHome = newCvmHome
	return old
}

// CvmHome returns the explicitly set cvm home directory, if any.
func CvmHome() string {
	cvmHomeMu.Lock()
	defer cvmHomeMu.Unlock()
	return cvmHome
}

// CvmHomeDir returns the directory holding the cvm configuration:
// the value given to SetCvmHome, else $CVM_HOME, else
// $XDG_CONFIG_HOME/cvm.
func CvmHomeDir() string {
	if dir := CvmHome(); dir != "" {
		return dir
	}
	if dir := os.Getenv(CvmHomeEnvKey); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, "cvm")
}

// CvmHomePath returns the path to a file in the cvm home directory.
func CvmHomePath(names ...string) string {
	return filepath.Join(append([]string{CvmHomeDir()}, names...)...)
}

// ConfigFilePath returns the path of the cvm configuration file.
func ConfigFilePath() string {
	return CvmHomePath(ConfigFileName)
}

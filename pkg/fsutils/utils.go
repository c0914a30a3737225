package fsutils

import (
	"os"
	"path/filepath"
	"strings"
)

var osUserHomeDir = os.UserHomeDir

func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err // some other error
	}
	return info.IsDir(), nil
}

// ExpandHome expands leading ~ to the user's home directory.
func ExpandHome(p string) string {
	if p == "" {
		return p
	}
	if strings.HasPrefix(p, "~/") || p == "~" {
		home, err := osUserHomeDir()
		if err == nil {
			if p == "~" {
				return home
			}
			return filepath.Join(home, strings.TrimPrefix(p, "~/"))
		}
	}
	return p
}

// ContractHome replaces a leading home directory with ~.
func ContractHome(p string) string {
	if p == "" {
		return p
	}
	home, err := osUserHomeDir()
	if err != nil || home == "" {
		return p
	}
	cleanHome := filepath.Clean(home)
	cleanPath := filepath.Clean(p)
	if cleanPath == cleanHome {
		return "~"
	}
	homePrefix := cleanHome + string(filepath.Separator)
	if strings.HasPrefix(cleanPath, homePrefix) {
		return filepath.Join("~", strings.TrimPrefix(cleanPath, homePrefix))
	}
	return p
}

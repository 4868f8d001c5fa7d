package entity

import (
	"fmt"
	"runtime"
	"strings"
)

// Platform selects modifier conventions for matching and display.
type Platform string

const (
	PlatformAuto  Platform = "auto"
	PlatformMac   Platform = "mac"
	PlatformOther Platform = "other"
)

// ParsePlatform parses a platform name from config or flags.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return PlatformAuto, nil
	case "mac", "macos", "darwin":
		return PlatformMac, nil
	case "other", "linux", "windows":
		return PlatformOther, nil
	default:
		return "", fmt.Errorf("unknown platform %q", s)
	}
}

// Resolve replaces PlatformAuto with the platform of the running process.
func (p Platform) Resolve() Platform {
	if p != PlatformAuto && p != "" {
		return p
	}
	if runtime.GOOS == "darwin" {
		return PlatformMac
	}
	return PlatformOther
}

// IsMac reports whether Cmd stands in for Ctrl.
func (p Platform) IsMac() bool {
	return p.Resolve() == PlatformMac
}

package platform

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

const gnomeInterfaceSchema = "org.gnome.desktop.interface"

type motionProvider struct {
	gsettingsPath string
}

type unsupportedMotionProvider struct{}

func newMotionProvider() MotionProvider {
	path, err := exec.LookPath("gsettings")
	if err != nil {
		return unsupportedMotionProvider{}
	}
	return &motionProvider{gsettingsPath: path}
}

func (provider *motionProvider) ReducedMotion() (bool, error) {
	output, err := exec.Command(provider.gsettingsPath, "get", gnomeInterfaceSchema, "enable-animations").Output()
	if err != nil {
		var stderr []byte
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			stderr = exitErr.Stderr
		}
		return false, classifyGsettingsError(err, string(stderr))
	}
	return parseEnableAnimations(string(output))
}

// classifyGsettingsError maps a missing schema or key to
// ErrMotionUnsupported. Other failures are returned as is so callers keep
// their last known value.
func classifyGsettingsError(err error, stderr string) error {
	// The schema is missing outside GNOME-based desktops.
	if strings.Contains(stderr, "No such schema") || strings.Contains(stderr, "No such key") {
		return fmt.Errorf("gsettings: %w: %s", ErrMotionUnsupported, strings.TrimSpace(stderr))
	}
	return fmt.Errorf("gsettings get enable-animations: %w", err)
}

func parseEnableAnimations(output string) (bool, error) {
	switch strings.TrimSpace(output) {
	case "true":
		return false, nil
	case "false":
		return true, nil
	default:
		return false, fmt.Errorf("parse enable-animations %q", strings.TrimSpace(output))
	}
}

func (unsupportedMotionProvider) ReducedMotion() (bool, error) {
	return false, ErrMotionUnsupported
}

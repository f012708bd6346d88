package platform

import (
	"fmt"
	"os/exec"
	"strings"
)

type motionProvider struct{}

func newMotionProvider() MotionProvider {
	return &motionProvider{}
}

func (provider *motionProvider) ReducedMotion() (bool, error) {
	output, err := exec.Command("defaults", "read", "com.apple.universalaccess", "reduceMotion").Output()
	if err != nil {
		// The key is absent until the user has touched the setting once.
		return false, nil
	}
	value := strings.TrimSpace(string(output))
	switch value {
	case "1":
		return true, nil
	case "0":
		return false, nil
	default:
		return false, fmt.Errorf("parse reduceMotion %q", value)
	}
}

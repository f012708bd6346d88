package platform

import "errors"

// ErrMotionUnsupported indicates the reduced-motion preference cannot be read
// on this system.
var ErrMotionUnsupported = errors.New("reduced motion detection unsupported")

// MotionProvider reports the operating system's reduced-motion preference.
type MotionProvider interface {
	ReducedMotion() (bool, error)
}

// NewMotionProvider returns a platform-specific motion provider.
func NewMotionProvider() MotionProvider {
	return newMotionProvider()
}

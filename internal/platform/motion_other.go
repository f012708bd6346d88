//go:build !linux && !darwin && !windows

package platform

type motionProvider struct{}

func newMotionProvider() MotionProvider {
	return motionProvider{}
}

func (motionProvider) ReducedMotion() (bool, error) {
	return false, ErrMotionUnsupported
}

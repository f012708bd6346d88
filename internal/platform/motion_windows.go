package platform

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const spiGetClientAreaAnimation = 0x1042

var (
	user32DLL                 = windows.NewLazySystemDLL("user32.dll")
	procSystemParametersInfoW = user32DLL.NewProc("SystemParametersInfoW")
)

type motionProvider struct{}

func newMotionProvider() MotionProvider {
	return &motionProvider{}
}

func (provider *motionProvider) ReducedMotion() (bool, error) {
	if err := procSystemParametersInfoW.Find(); err != nil {
		return false, ErrMotionUnsupported
	}

	var enabled uint32
	result, _, err := procSystemParametersInfoW.Call(
		spiGetClientAreaAnimation,
		0,
		uintptr(unsafe.Pointer(&enabled)),
		0,
	)
	if result == 0 {
		if err != nil && err != windows.ERROR_SUCCESS {
			return false, fmt.Errorf("system parameters info: %w", err)
		}
		return false, fmt.Errorf("system parameters info: unknown error")
	}
	return enabled == 0, nil
}

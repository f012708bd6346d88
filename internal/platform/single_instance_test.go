package platform

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecondLaunchNotifiesFirst(t *testing.T) {
	appName := fmt.Sprintf("BrandCarouselTest-%d", time.Now().UnixNano())
	guard, err := AcquireSingleInstance(appName)
	if err != nil {
		t.Skipf("port unavailable: %v", err)
	}
	defer guard.Release()

	_, err = AcquireSingleInstance(appName)
	require.ErrorIs(t, err, ErrAlreadyRunning)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	shown := make(chan struct{}, 1)
	go guard.Serve(ctx, func() { shown <- struct{}{} })

	require.NoError(t, NotifyRunning(appName))
	select {
	case <-shown:
	case <-time.After(2 * time.Second):
		t.Fatal("show request not delivered")
	}
}

func TestPortFromNameIsStable(t *testing.T) {
	first := portFromName("BrandCarousel")
	assert.Equal(t, first, portFromName("BrandCarousel"))
	assert.GreaterOrEqual(t, first, 20000)
	assert.LessOrEqual(t, first, 39999)
}

func TestReleaseNilGuard(t *testing.T) {
	var guard *InstanceGuard
	assert.NoError(t, guard.Release())
	assert.Empty(t, guard.Address())
}

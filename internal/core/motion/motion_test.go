package motion

import (
	"errors"
	"sync"
	"testing"
	"time"

	"brandcarousel/internal/platform"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSensorWithoutSourcesIsNotReduced(t *testing.T) {
	sensor := New()
	defer sensor.Close()
	assert.False(t, sensor.Current())

	withNil := New(nil)
	defer withNil.Close()
	assert.False(t, withNil.Current())
}

func TestSensorReadsInitialValue(t *testing.T) {
	sensor := New(NewToggle(true))
	defer sensor.Close()
	assert.True(t, sensor.Current())
}

func TestSensorCombinesSources(t *testing.T) {
	system := NewToggle(false)
	user := NewToggle(false)
	sensor := New(system, user)
	defer sensor.Close()

	var seen []bool
	sensor.OnChange(func(reduced bool) { seen = append(seen, reduced) })

	system.Set(true)
	user.Set(true)
	system.Set(false)
	assert.True(t, sensor.Current(), "user toggle still reduces motion")

	user.Set(false)
	assert.False(t, sensor.Current())
	assert.Equal(t, []bool{true, false}, seen, "only combined changes are emitted")
}

func TestSensorSubscribe(t *testing.T) {
	toggle := NewToggle(false)
	sensor := New(toggle)
	events := sensor.Subscribe(4)

	toggle.Set(true)
	require.Len(t, events, 1)
	assert.True(t, <-events)

	sensor.Close()
	_, open := <-events
	assert.False(t, open)
}

func TestSensorCloseDetaches(t *testing.T) {
	toggle := NewToggle(false)
	sensor := New(toggle)
	calls := 0
	sensor.OnChange(func(bool) { calls++ })

	sensor.Close()
	toggle.Set(true)
	assert.False(t, sensor.Current())
	assert.Zero(t, calls)
	assert.Zero(t, toggle.watchers.len())
}

func TestOnChangeRemove(t *testing.T) {
	toggle := NewToggle(false)
	sensor := New(toggle)
	defer sensor.Close()
	calls := 0
	remove := sensor.OnChange(func(bool) { calls++ })

	remove()
	toggle.Set(true)
	assert.Zero(t, calls)
}

type scriptedProvider struct {
	mu     sync.Mutex
	values []bool
	err    error
	calls  int
}

func (provider *scriptedProvider) ReducedMotion() (bool, error) {
	provider.mu.Lock()
	defer provider.mu.Unlock()
	provider.calls++
	if provider.err != nil {
		return false, provider.err
	}
	value := provider.values[0]
	if len(provider.values) > 1 {
		provider.values = provider.values[1:]
	}
	return value, nil
}

func TestPollerUpdatesWatchers(t *testing.T) {
	provider := &scriptedProvider{values: []bool{false, true}}
	poller := NewPoller(provider, time.Hour, nil)
	assert.False(t, poller.ReducedMotion())

	sensor := New(poller)
	defer sensor.Close()

	assert.True(t, poller.Poll())
	assert.True(t, poller.ReducedMotion())
	assert.True(t, sensor.Current())
}

func TestPollerUnsupportedMeansNotReduced(t *testing.T) {
	provider := &scriptedProvider{err: platform.ErrMotionUnsupported}
	poller := NewPoller(provider, time.Millisecond, nil)
	assert.False(t, poller.ReducedMotion())
	assert.False(t, poller.Poll())

	poller.Start()
	defer poller.Stop()
	time.Sleep(10 * time.Millisecond)
	provider.mu.Lock()
	defer provider.mu.Unlock()
	assert.Equal(t, 1, provider.calls, "unsupported provider is not polled again")
}

func TestPollerKeepsValueOnTransientError(t *testing.T) {
	provider := &scriptedProvider{values: []bool{true}}
	poller := NewPoller(provider, time.Hour, nil)
	require.True(t, poller.ReducedMotion())

	provider.err = errors.New("dbus hiccup")
	assert.True(t, poller.Poll())
	assert.True(t, poller.ReducedMotion())
}

func TestPollerLoopPicksUpChanges(t *testing.T) {
	provider := &scriptedProvider{values: []bool{false, true}}
	poller := NewPoller(provider, time.Millisecond, nil)
	changed := make(chan bool, 1)
	poller.Watch(func(reduced bool) {
		select {
		case changed <- reduced:
		default:
		}
	})

	poller.Start()
	defer poller.Stop()
	select {
	case reduced := <-changed:
		assert.True(t, reduced)
	case <-time.After(time.Second):
		t.Fatal("poller never reported the change")
	}
}

func TestWatcherSetAddRemoveNotify(t *testing.T) {
	var set watcherSet
	var first, second []bool
	removeFirst := set.add(func(value bool) { first = append(first, value) })
	set.add(func(value bool) { second = append(second, value) })
	assert.Equal(t, 2, set.len())

	set.notify(true)
	removeFirst()
	set.notify(false)

	assert.Equal(t, []bool{true}, first)
	assert.Equal(t, []bool{true, false}, second)

	set.clear()
	assert.Zero(t, set.len())
	set.notify(true)
	assert.Len(t, second, 2)
}

func TestWatcherSetCallbackMayDetachItself(t *testing.T) {
	var set watcherSet
	calls := 0
	var remove func()
	remove = set.add(func(bool) {
		calls++
		remove()
	})

	set.notify(true)
	set.notify(true)
	assert.Equal(t, 1, calls)
}

type animationSettings struct {
	fyne.Settings
	show bool
}

func (settings animationSettings) ShowAnimations() bool { return settings.show }

func TestSettingsSourceFollowsAnimationSetting(t *testing.T) {
	app := test.NewTempApp(t)
	source := NewSettingsSource(app)
	initial := source.ReducedMotion()
	assert.Equal(t, !app.Settings().ShowAnimations(), initial)

	var seen []bool
	detach := source.Watch(func(reduced bool) { seen = append(seen, reduced) })

	source.changed(animationSettings{Settings: app.Settings(), show: initial})
	assert.Equal(t, !initial, source.ReducedMotion())
	source.changed(animationSettings{Settings: app.Settings(), show: initial})
	assert.Equal(t, []bool{!initial}, seen, "unchanged settings do not notify")

	detach()
	source.changed(animationSettings{Settings: app.Settings(), show: !initial})
	assert.Equal(t, initial, source.ReducedMotion())
	assert.Len(t, seen, 1)
}

package model

// Loading is a hint for how eagerly a logo should be resolved.
type Loading string

const (
	LoadEager Loading = "eager"
	LoadLazy  Loading = "lazy"
)

// Live region politeness values.
const (
	LiveOff    = "off"
	LivePolite = "polite"
)

// DefaultEagerCount is the number of leading logos loaded eagerly.
const DefaultEagerCount = 4

// ItemView is the presentation state of one loop entry.
type ItemView struct {
	Entry       LoopEntry
	Label       string
	Interactive bool
	Hidden      bool
	Expanded    bool
	ControlsID  string
	Live        string
	Loading     Loading
}

// Present derives the view state for every loop entry given the active item.
func Present(entries []LoopEntry, activeID string, eagerCount int) []ItemView {
	views := make([]ItemView, 0, len(entries))
	for _, entry := range entries {
		interactive := !entry.Duplicate
		active := interactive && activeID != "" && entry.Item.ID == activeID

		view := ItemView{
			Entry:       entry,
			Label:       entry.Item.Name + " logo",
			Interactive: interactive,
			Hidden:      entry.Duplicate,
			Expanded:    active,
			Live:        LiveOff,
			Loading:     LoadLazy,
		}
		if interactive {
			view.ControlsID = DescriptionID(entry.Item.ID)
		}
		if active {
			view.Live = LivePolite
		}
		if entry.Index < eagerCount {
			view.Loading = LoadEager
		}
		views = append(views, view)
	}
	return views
}

// DescriptionID returns the identifier of the description region for an item.
func DescriptionID(itemID string) string {
	return itemID + "-description"
}

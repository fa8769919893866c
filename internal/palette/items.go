package palette

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/1broseidon/fling/internal/geometry"
	"github.com/1broseidon/fling/internal/platform"
)

// FollowWindowValue is the monitor item value for "the monitor under the window".
const FollowWindowValue = "-1"

var gridPresets = []struct {
	label string
	value string
}{
	{"maximize", "1 1"},
	{"left third", "1/3 1"},
	{"center third", "2/3 1"},
	{"right third", "3/3 1"},
	{"left two thirds", "1/3:2 1"},
	{"right two thirds", "2/3:2 1"},
	{"center", "2/4:2 2/4:2"},
}

// PositionItems builds the position menu: built-in shortcuts, then user
// shortcuts, then common grid presets. Item values are position arguments
// joined by a space.
func PositionItems(user map[string]string) []Item {
	items := []Item{{Label: "Shortcuts", IsHeader: true}}
	for _, name := range geometry.ShortcutNames() {
		items = append(items, Item{Label: name, Value: name})
	}

	if len(user) > 0 {
		names := make([]string, 0, len(user))
		for name := range user {
			names = append(names, name)
		}
		sort.Strings(names)

		items = append(items, Item{Label: "Configured", IsHeader: true})
		for _, name := range names {
			items = append(items, Item{Label: name, Value: name, Meta: user[name]})
		}
	}

	items = append(items, Item{Label: "Grid", IsHeader: true})
	for _, p := range gridPresets {
		if _, taken := user[p.label]; taken {
			continue
		}
		items = append(items, Item{Label: p.label, Value: p.value, Meta: p.value})
	}
	return items
}

// MonitorItems builds the monitor menu. screen is the configured screen;
// its entry is preselected.
func MonitorItems(displays []platform.Display, screen int) []Item {
	items := []Item{{
		Label:    "monitor under the window",
		Value:    FollowWindowValue,
		IsActive: screen < 0 || screen >= len(displays),
	}}
	for _, d := range displays {
		items = append(items, Item{
			Label:    fmt.Sprintf("%d: %s (%s)", d.Index, d.Name, d.Bounds),
			Value:    strconv.Itoa(d.Index),
			IsActive: d.Index == screen,
		})
	}
	return items
}

package ui

import "testing"

func TestDefaultKeyMap_AllBindingsHaveKeys(t *testing.T) {
	km := DefaultKeyMap()

	bindings := map[string][]string{
		"NextTab":   km.NextTab.Keys(),
		"PrevTab":   km.PrevTab.Keys(),
		"Up":        km.Up.Keys(),
		"Down":      km.Down.Keys(),
		"Select":    km.Select.Keys(),
		"StartStop": km.StartStop.Keys(),
		"NewTask":   km.NewTask.Keys(),
		"Delete":    km.Delete.Keys(),
		"Day":       km.Day.Keys(),
		"Week":      km.Week.Keys(),
		"Month":     km.Month.Keys(),
		"Theme":     km.Theme.Keys(),
		"Help":      km.Help.Keys(),
		"Quit":      km.Quit.Keys(),
	}
	for name, keys := range bindings {
		if len(keys) == 0 {
			t.Errorf("binding %s has no keys", name)
		}
	}
}

func TestDefaultKeyMap_VimMovement(t *testing.T) {
	km := DefaultKeyMap()

	hasKey := func(keys []string, want string) bool {
		for _, k := range keys {
			if k == want {
				return true
			}
		}
		return false
	}
	if !hasKey(km.Up.Keys(), "k") {
		t.Error("expected k bound to Up")
	}
	if !hasKey(km.Down.Keys(), "j") {
		t.Error("expected j bound to Down")
	}
}

package keymap

import "testing"

func TestAll_NoDuplicateKeys(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range All {
		if len(b.Keys) == 0 {
			t.Errorf("binding %q has no keys", b.Action)
		}
		if b.Description == "" {
			t.Errorf("binding %q has no description", b.Action)
		}
		for _, k := range b.Keys {
			if prev, ok := seen[k]; ok {
				t.Errorf("key %q bound to both %q and %q", k, prev, b.Action)
			}
			seen[k] = b.Action
		}
	}
}

func TestAll_CoversActions(t *testing.T) {
	actions := []Action{
		ActionQuit, ActionMoveUp, ActionMoveDown, ActionJumpStart, ActionJumpEnd,
		ActionPlay, ActionVolumeUp, ActionVolumeDown, ActionToggleMute,
	}
	r := NewResolver(All)
	for _, a := range actions {
		if len(r.KeysFor(a)) == 0 {
			t.Errorf("action %q has no key", a)
		}
	}
}

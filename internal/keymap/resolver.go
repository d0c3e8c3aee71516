package keymap

import "strings"

// keyNames gives display names for keys whose string form is unreadable
// in a help line.
var keyNames = map[string]string{
	" ":    "space",
	"up":   "↑",
	"down": "↓",
}

// Resolver maps key strings to actions.
type Resolver struct {
	bindings map[string]Action   // key -> action
	byAction map[Action][]string // action -> keys, in binding order
}

// NewResolver creates a resolver from bindings. When a key is bound twice
// the later binding wins.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]Action),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.bindings[key] = b.Action
		}
		r.byAction[b.Action] = append(r.byAction[b.Action], b.Keys...)
	}
	for action, keys := range r.byAction {
		r.byAction[action] = dedupe(keys)
	}
	return r
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.bindings[key]
}

// KeysFor returns the keys bound to an action.
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

// HelpLabel renders the first two keys of an action for the help footer,
// for example "enter/space". It returns "" for an unbound action.
func (r *Resolver) HelpLabel(action Action) string {
	keys := r.byAction[action]
	if len(keys) > 2 {
		keys = keys[:2]
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		if name, ok := keyNames[k]; ok {
			k = name
		}
		names[i] = k
	}
	return strings.Join(names, "/")
}

func dedupe(s []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}

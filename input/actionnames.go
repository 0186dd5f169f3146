package input

// Action is a logical game key
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionFire
	ActionToggleDebug
	ActionToggleMute
	ActionQuit
	actionCount
)

// actionRegistry maps canonical action names to actions
// Used by the keymap loader to resolve config action strings to bindings
var actionRegistry = map[string]Action{
	"none":         ActionNone,
	"up":           ActionUp,
	"down":         ActionDown,
	"fire":         ActionFire,
	"toggle_debug": ActionToggleDebug,
	"toggle_mute":  ActionToggleMute,
	"quit":         ActionQuit,
}

// String returns the canonical action name
func (a Action) String() string {
	for name, act := range actionRegistry {
		if act == a {
			return name
		}
	}
	return "unknown"
}

// LookupAction resolves a canonical action name
func LookupAction(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

// Package input turns raw key state into a per-frame intent snapshot.
// It does not know about any windowing library; the display layer supplies
// the key lookup.
package input

// Action is one logical control.
type Action uint8

const (
	MoveForward Action = iota
	MoveBack
	MoveLeft
	MoveRight
	MoveUp
	MoveDown

	LookLeft
	LookRight
	LookUp
	LookDown

	Warp1
	Warp2
	Warp3
	WarpAnimated

	ToggleMap

	actionCount
)

// Intent is the control snapshot for one frame.
type Intent struct {
	MoveForward bool
	MoveBack    bool
	MoveLeft    bool
	MoveRight   bool
	MoveUp      bool
	MoveDown    bool

	LookLeft  bool
	LookRight bool
	LookUp    bool
	LookDown  bool

	Warp1        bool
	Warp2        bool
	Warp3        bool
	WarpAnimated bool

	ToggleMap bool
}

// Poll builds an Intent by asking pressed about every action.
func Poll(pressed func(Action) bool) Intent {
	if pressed == nil {
		return Intent{}
	}
	return Intent{
		MoveForward: pressed(MoveForward),
		MoveBack:    pressed(MoveBack),
		MoveLeft:    pressed(MoveLeft),
		MoveRight:   pressed(MoveRight),
		MoveUp:      pressed(MoveUp),
		MoveDown:    pressed(MoveDown),

		LookLeft:  pressed(LookLeft),
		LookRight: pressed(LookRight),
		LookUp:    pressed(LookUp),
		LookDown:  pressed(LookDown),

		Warp1:        pressed(Warp1),
		Warp2:        pressed(Warp2),
		Warp3:        pressed(Warp3),
		WarpAnimated: pressed(WarpAnimated),

		ToggleMap: pressed(ToggleMap),
	}
}

// Moving reports whether any translation flag is set.
func (i Intent) Moving() bool {
	return i.MoveForward || i.MoveBack || i.MoveLeft || i.MoveRight || i.MoveUp || i.MoveDown
}

// Actions returns every defined action in declaration order.
func Actions() []Action {
	out := make([]Action, 0, actionCount)
	for a := Action(0); a < actionCount; a++ {
		out = append(out, a)
	}
	return out
}

// String returns the action's binding-table name.
func (a Action) String() string {
	switch a {
	case MoveForward:
		return "move_forward"
	case MoveBack:
		return "move_back"
	case MoveLeft:
		return "move_left"
	case MoveRight:
		return "move_right"
	case MoveUp:
		return "move_up"
	case MoveDown:
		return "move_down"
	case LookLeft:
		return "look_left"
	case LookRight:
		return "look_right"
	case LookUp:
		return "look_up"
	case LookDown:
		return "look_down"
	case Warp1:
		return "warp_1"
	case Warp2:
		return "warp_2"
	case Warp3:
		return "warp_3"
	case WarpAnimated:
		return "warp_animated"
	case ToggleMap:
		return "toggle_map"
	default:
		return "unknown"
	}
}

// DefaultBindings names the keys for each action. The display layer resolves
// these names to its own key codes.
var DefaultBindings = map[Action][]string{
	MoveForward:  {"W"},
	MoveBack:     {"S"},
	MoveLeft:     {"A"},
	MoveRight:    {"D"},
	MoveUp:       {"E"},
	MoveDown:     {"Q"},
	LookLeft:     {"ArrowLeft"},
	LookRight:    {"ArrowRight"},
	LookUp:       {"ArrowUp"},
	LookDown:     {"ArrowDown"},
	Warp1:        {"Digit1"},
	Warp2:        {"Digit2"},
	Warp3:        {"Digit3"},
	WarpAnimated: {"Space"},
	ToggleMap:    {"M"},
}

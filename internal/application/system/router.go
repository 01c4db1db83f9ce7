package system

// InputRouter forwards raw input events to the navigator
type InputRouter struct {
	nav *Navigator
}

// NewInputRouter creates a router for the navigator
func NewInputRouter(nav *Navigator) *InputRouter {
	return &InputRouter{nav: nav}
}

// Dispatch delivers one event and returns what it did
func (r *InputRouter) Dispatch(ev Event) Outcome {
	switch e := ev.(type) {
	case PointerPressed:
		return r.nav.OnPointerEvent(e.X, e.Y, e.Button)
	case KeyPressed:
		return r.nav.OnKeyEvent(e.Symbol)
	default:
		return Outcome{}
	}
}

// DispatchAll delivers events in order and returns the outcomes that fired
func (r *InputRouter) DispatchAll(events []Event) []Outcome {
	var fired []Outcome
	for _, ev := range events {
		if out := r.Dispatch(ev); out.Fired {
			fired = append(fired, out)
		}
	}
	return fired
}

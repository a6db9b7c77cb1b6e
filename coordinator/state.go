package coordinator

// State is the expand/collapse state of a Coordinator.
type State int

const (
	// CollapsedImplicit is the initial state. The content is truncated if
	// it overflows; nobody asked for a collapse.
	CollapsedImplicit State = iota

	// CollapsedExplicit is entered through Collapse. Updates keep the
	// content collapsed, and the next Expand adds no show-less marker.
	CollapsedExplicit

	// Expanded shows the full content.
	Expanded
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case CollapsedImplicit:
		return "collapsed"
	case CollapsedExplicit:
		return "collapsed-explicit"
	case Expanded:
		return "expanded"
	default:
		return "unknown"
	}
}

// Collapsed reports whether s is one of the collapsed states.
func (s State) Collapsed() bool {
	return s != Expanded
}

type event int

const (
	evExpand event = iota
	evCollapse
	evFits
	evOverflow
)

// transition returns the state after ev.
//
//	state              expand     collapse           fits               overflow
//	CollapsedImplicit  Expanded   CollapsedExplicit  CollapsedImplicit  CollapsedImplicit
//	CollapsedExplicit  Expanded   CollapsedExplicit  CollapsedExplicit  CollapsedExplicit
//	Expanded           Expanded   CollapsedExplicit  CollapsedImplicit  Expanded
func transition(from State, ev event) State {
	switch ev {
	case evExpand:
		return Expanded
	case evCollapse:
		return CollapsedExplicit
	case evFits:
		if from == CollapsedExplicit {
			return CollapsedExplicit
		}
		return CollapsedImplicit
	default:
		return from
	}
}

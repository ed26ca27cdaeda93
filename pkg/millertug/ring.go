package millertug

// Role is the part a pane slot currently plays.
type Role int

const (
	RoleLeft Role = iota
	RoleCenter
	RoleRight
)

func (r Role) String() string {
	switch r {
	case RoleLeft:
		return "left"
	case RoleCenter:
		return "center"
	case RoleRight:
		return "right"
	default:
		return "unknown"
	}
}

var roles = [3]Role{RoleLeft, RoleCenter, RoleRight}

// PaneRing holds three panes in fixed slots. Traversal never moves panes
// between slots; it changes which slot plays the center role.
type PaneRing struct {
	panes  [3]Pane
	center int
	width  int
	height int
}

func NewPaneRing(width, height int) *PaneRing {
	r := &PaneRing{center: 1}
	r.Layout(width, height)
	return r
}

func (r *PaneRing) slot(role Role) int {
	switch role {
	case RoleLeft:
		return (r.center + 2) % 3
	case RoleRight:
		return (r.center + 1) % 3
	default:
		return r.center
	}
}

// CenterSlot is the index of the slot playing the center role.
func (r *PaneRing) CenterSlot() int {
	return r.center
}

func (r *PaneRing) Pane(role Role) *Pane {
	return &r.panes[r.slot(role)]
}

func (r *PaneRing) Left() *Pane   { return r.Pane(RoleLeft) }
func (r *PaneRing) Center() *Pane { return r.Pane(RoleCenter) }
func (r *PaneRing) Right() *Pane  { return r.Pane(RoleRight) }

// Size is the terminal size the ring was laid out for.
func (r *PaneRing) Size() (width, height int) {
	return r.width, r.height
}

// Layout assigns geometry by role. The bottom row is left for the
// command line.
func (r *PaneRing) Layout(width, height int) {
	r.width, r.height = max(width, 0), max(height, 0)
	third := r.width / 3
	paneHeight := max(r.height-1, 0)
	for _, role := range roles {
		x := int(role) * third
		w := third
		if role == RoleRight {
			w = r.width - x
		}
		r.Pane(role).setRect(Rect{X: x, Y: 0, Width: w, Height: paneHeight})
	}
}

// EnterDirectory rotates roles forward: center becomes left, right becomes
// center and shows target, left becomes right and is cleared. It is a no-op
// returning false unless the center selection is traversable.
func (r *PaneRing) EnterDirectory(target *Snapshot) bool {
	if target == nil {
		return false
	}
	s, ok := r.Center().Snapshot()
	if !ok {
		return false
	}
	entry, ok := s.SelectedEntry()
	if !ok || !entry.Kind.Traversable() {
		return false
	}
	r.center = (r.center + 1) % 3
	r.Center().Bind(Loaded(target))
	r.Right().Bind(Empty())
	r.Layout(r.width, r.height)
	return true
}

// LeaveDirectory rotates roles backward: left becomes center, center becomes
// right, right becomes left and shows grandparent. It is a no-op returning
// false when the left pane is empty.
func (r *PaneRing) LeaveDirectory(grandparent Contents) bool {
	if r.Left().Contents().IsEmpty() {
		return false
	}
	r.center = (r.center + 2) % 3
	r.Left().Bind(grandparent)
	r.Layout(r.width, r.height)
	return true
}

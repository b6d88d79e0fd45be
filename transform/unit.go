package transform

// Unit is the state of one compilation unit. It is created when the unit
// starts and dropped when it ends.
type Unit struct {
	Filename string

	injected map[string]struct{}
}

// NewUnit starts a compilation unit for filename.
func NewUnit(filename string) *Unit {
	return &Unit{
		Filename: filename,
		injected: make(map[string]struct{}),
	}
}

// Injected reports whether the required members were already added to an
// import in this unit.
func (u *Unit) Injected() bool {
	_, ok := u.injected[u.Filename]
	return ok
}

func (u *Unit) markInjected() {
	u.injected[u.Filename] = struct{}{}
}

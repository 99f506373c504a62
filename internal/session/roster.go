package session

// Roster is the ordered set of active employee names.
type Roster struct {
	names []string
}

func NewRoster(names []string) *Roster {
	r := &Roster{}
	for _, name := range names {
		if !r.Contains(name) {
			r.names = append(r.names, name)
		}
	}
	return r
}

func (r *Roster) Contains(name string) bool {
	return r.index(name) >= 0
}

// Names returns a copy of the roster in order.
func (r *Roster) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

func (r *Roster) Len() int {
	return len(r.names)
}

func (r *Roster) add(name string) {
	r.names = append(r.names, name)
}

func (r *Roster) rename(oldName, newName string) {
	if i := r.index(oldName); i >= 0 {
		r.names[i] = newName
	}
}

func (r *Roster) remove(name string) {
	if i := r.index(name); i >= 0 {
		r.names = append(r.names[:i], r.names[i+1:]...)
	}
}

func (r *Roster) index(name string) int {
	for i, n := range r.names {
		if n == name {
			return i
		}
	}
	return -1
}

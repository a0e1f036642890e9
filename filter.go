package motion

// Candidate is the target a filter is asked about.
type Candidate struct {
	target Target
}

// Target returns the target being written to.
func (c Candidate) Target() Target { return c.target }

// Is reports whether the candidate is t.
func (c Candidate) Is(t Target) bool {
	return c.target != nil && c.target == t
}

// IsOrDescends reports whether the candidate is t or one of its descendants.
func (c Candidate) IsOrDescends(t Target) bool {
	return c.Is(t) || c.Descends(t)
}

// Descends reports whether the candidate is a strict descendant of t.
// Targets that do not implement Parented have no ancestors.
func (c Candidate) Descends(t Target) bool {
	if t == nil {
		return false
	}
	cur := c.target
	for {
		p, ok := cur.(Parented)
		if !ok {
			return false
		}
		cur = p.ParentTarget()
		if cur == nil {
			return false
		}
		if cur == t {
			return true
		}
	}
}

// Only accepts writes to exactly the given targets.
func Only(targets ...Target) FilterFunc {
	return func(c Candidate) bool {
		for _, t := range targets {
			if c.Is(t) {
				return true
			}
		}
		return false
	}
}

// Within accepts writes to root and its descendants.
func Within(root Target) FilterFunc {
	return func(c Candidate) bool { return c.IsOrDescends(root) }
}

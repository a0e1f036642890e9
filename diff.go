package motion

// additiveEntry is one component of an additive decomposition: animating
// subPath from diff to zero on top of the model value reproduces the
// transition from the old value to the new one.
type additiveEntry struct {
	subPath string
	diff    Value
	zero    Value
}

// nonAdditiveKeys are animated absolutely regardless of value type, as
// additive composition misbehaves for visibility, fills and pivots.
var nonAdditiveKeys = map[string]bool{
	"opacity":         true,
	"backgroundColor": true,
	"anchorPoint":     true,
}

// isAlwaysNonAdditive reports whether path must never be animated
// additively.
func isAlwaysNonAdditive(path string) bool {
	return nonAdditiveKeys[path] || nonAdditiveKeys[rootKey(path)]
}

// additiveDiff decomposes the transition from -> to into additive entries.
// It returns false when the pair is not additively composable.
func additiveDiff(from, to Value) ([]additiveEntry, bool) {
	if !from.IsValid() || from.kind != to.kind {
		return nil, false
	}
	switch from.kind {
	case KindScalar:
		return []additiveEntry{{diff: Scalar(from.f - to.f), zero: zeroOf(KindScalar)}}, true
	case KindPoint:
		return []additiveEntry{{diff: pointDiff(from.p, to.p), zero: zeroOf(KindPoint)}}, true
	case KindSize:
		return []additiveEntry{{diff: sizeDiff(from.s, to.s), zero: zeroOf(KindSize)}}, true
	case KindRect:
		// Rectangles are not additive as a whole; origin and size are.
		return []additiveEntry{
			{subPath: "origin", diff: pointDiff(from.r.Origin, to.r.Origin), zero: zeroOf(KindPoint)},
			{subPath: "size", diff: sizeDiff(from.r.Size, to.r.Size), zero: zeroOf(KindSize)},
		}, true
	case KindTransform:
		return []additiveEntry{{diff: TransformValue(from.t.Concat(to.t.Invert())), zero: zeroOf(KindTransform)}}, true
	}
	return nil, false
}

func pointDiff(from, to Vec2) Value {
	return Point(from.X-to.X, from.Y-to.Y)
}

func sizeDiff(from, to Size) Value {
	return SizeValue(Size{from.Width - to.Width, from.Height - to.Height})
}

package styles

// Fill describes a cell background pattern. Foreground and background colors
// are only meaningful (and only dedup-significant) for non-none patterns.
type Fill struct {
	Pattern    PatternType
	Foreground Color
	Background Color
}

// DefaultFill is the reserved index 0 entry of the fill pool: no fill.
func DefaultFill() Fill {
	return Fill{Pattern: PatternTypeNone}
}

// SolidFill is a convenience constructor for the most common case.
func SolidFill(fg Color) Fill {
	return Fill{Pattern: PatternTypeSolid, Foreground: fg}
}

// Key returns the canonical dedup key. Color fields are omitted for the
// "none" pattern so that all pattern-less fills collapse onto one entry.
func (f Fill) Key() string {
	if f.Pattern == PatternTypeNone {
		return f.Pattern.String()
	}
	return f.Pattern.String() + "_" + f.Foreground.Hex() + "_" + f.Background.Hex()
}

package mtxt

// Baselines define the vertical reference used to interpret the
// anchor point of draw and measure operations.
type Baseline uint8

const (
	// The anchor marks the top edge of the glyph cells.
	Top Baseline = iota

	// The anchor marks the bottom row of the glyph cells.
	Bottom

	// The anchor marks the middle row of the glyph cells.
	Middle

	// The anchor marks the alphabetic baseline of the font, falling
	// back to the bottom row for fonts without an explicit baseline.
	Alphabetic
)

// Returns a textual representation of the baseline mode.
func (self Baseline) String() string {
	switch self {
	case Top        : return "Top"
	case Bottom     : return "Bottom"
	case Middle     : return "Middle"
	case Alphabetic : return "Alphabetic"
	default:
		return "InvalidBaseline"
	}
}

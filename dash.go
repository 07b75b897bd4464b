package uvpaint

import "math"

// Dash defines a dash pattern for stroking.
// A dash pattern consists of alternating dash and gap lengths.
// For example, [5, 3] creates a pattern of 5 units dash, 3 units gap.
// The running-stitch renderer builds its pattern from the stroke width.
type Dash struct {
	// Array contains alternating dash/gap lengths.
	// If the array has an odd number of elements, it is logically duplicated
	// to create an even-length pattern (e.g., [5] becomes [5, 5]).
	Array []float64

	// Offset is the starting offset into the pattern.
	// The stroke begins at this point in the pattern cycle.
	Offset float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// Negative lengths are normalized to their absolute values.
// Returns nil if no lengths are provided or all lengths are zero.
func NewDash(lengths ...float64) *Dash {
	if len(lengths) == 0 {
		return nil
	}

	allZeroOrNeg := true
	for _, l := range lengths {
		if l > 0 {
			allZeroOrNeg = false
			break
		}
	}
	if allZeroOrNeg {
		return nil
	}

	normalized := make([]float64, len(lengths))
	for i, l := range lengths {
		normalized[i] = math.Abs(l)
	}

	return &Dash{Array: normalized}
}

// PatternLength returns the total length of one complete pattern cycle.
// For odd-length arrays, this includes the duplicated pattern.
func (d *Dash) PatternLength() float64 {
	if d == nil || len(d.Array) == 0 {
		return 0
	}

	var total float64
	for _, l := range d.Array {
		total += l
	}

	if len(d.Array)%2 != 0 {
		total *= 2
	}

	return total
}

// IsDashed returns true if this represents a dashed line (not solid).
// Returns false for nil Dash or empty/all-zero arrays.
func (d *Dash) IsDashed() bool {
	if d == nil || len(d.Array) == 0 {
		return false
	}

	for _, l := range d.Array {
		if l > 0 {
			return true
		}
	}
	return false
}

// Span is one resolved on/off interval along a path, measured in arc length
// from the path start.
type Span struct {
	Start, End float64
	On         bool
}

// Spans flattens the dash pattern across a path of the given total length,
// starting at the pattern offset. A nil or solid Dash yields a single
// on-span covering the whole length.
func (d *Dash) Spans(pathLen float64) []Span {
	if pathLen <= 0 {
		return nil
	}
	if !d.IsDashed() {
		return []Span{{Start: 0, End: pathLen, On: true}}
	}

	arr := d.effectiveArray()
	patternLen := d.PatternLength()

	offset := math.Mod(d.Offset, patternLen)
	if offset < 0 {
		offset += patternLen
	}

	// Find where the offset lands inside the pattern.
	idx := 0
	for offset >= arr[idx] {
		offset -= arr[idx]
		idx = (idx + 1) % len(arr)
	}

	var spans []Span
	pos := 0.0
	for pos < pathLen {
		seg := arr[idx] - offset
		offset = 0
		end := pos + seg
		if end > pathLen {
			end = pathLen
		}
		if end > pos {
			spans = append(spans, Span{Start: pos, End: end, On: idx%2 == 0})
		}
		pos = end
		idx = (idx + 1) % len(arr)
	}
	return spans
}

// effectiveArray returns the array with odd-length arrays duplicated.
func (d *Dash) effectiveArray() []float64 {
	if d == nil || len(d.Array) == 0 {
		return nil
	}

	if len(d.Array)%2 == 0 {
		return d.Array
	}

	result := make([]float64, len(d.Array)*2)
	copy(result, d.Array)
	copy(result[len(d.Array):], d.Array)
	return result
}

package comet

// Window is one item's share of a partitioned progress range.
//
// [Start, End) is the item's active window. Fade is the half-width of the
// cross-fade band straddling each boundary the window shares with a
// neighbour; the first window has no fade-in and the last no fade-out.
type Window struct {
	Index int
	Start float64
	End   float64
	Fade  float64
	first bool
	last  bool
}

// Width returns End - Start.
func (w Window) Width() float64 {
	return w.End - w.Start
}

// Contains reports whether p lies in the window. The last window includes
// its end so that progress 1 always maps to an item.
func (w Window) Contains(p float64) bool {
	if w.last {
		return p >= w.Start && p <= w.End
	}
	return p >= w.Start && p < w.End
}

// Weight returns the item's visibility at progress p in [0, 1]: 1 inside
// its window away from the boundaries, ramping linearly across each shared
// boundary's cross-fade band so that adjacent weights always sum to 1.
func (w Window) Weight(p float64) float64 {
	if w.Fade <= 0 {
		if w.Contains(p) {
			return 1
		}
		return 0
	}
	in := 1.0
	if !w.first {
		in = clamp01((p - (w.Start - w.Fade)) / (2 * w.Fade))
	} else if p < w.Start {
		in = 0
	}
	out := 1.0
	if !w.last {
		out = clamp01(((w.End + w.Fade) - p) / (2 * w.Fade))
	} else if p > w.End {
		out = 0
	}
	if in < out {
		return in
	}
	return out
}

// Partition splits [start, end] into n consecutive, equal, non-overlapping
// windows. crossfade is the fraction of a window's width reserved at each
// shared boundary for the cross-fade, split evenly across it; it is clamped
// to [0, 1].
func Partition(n int, start, end, crossfade float64) []Window {
	if n <= 0 {
		return nil
	}
	crossfade = clamp01(crossfade)
	width := (end - start) / float64(n)
	out := make([]Window, n)
	for i := range out {
		ws := start + float64(i)*width
		we := start + float64(i+1)*width
		if i == n-1 {
			we = end
		}
		out[i] = Window{
			Index: i,
			Start: ws,
			End:   we,
			Fade:  crossfade * width / 2,
			first: i == 0,
			last:  i == n-1,
		}
	}
	return out
}

// ActiveIndex returns the index of the window containing p, clamping
// progress outside the partitioned range to the first or last window.
// Returns -1 for an empty partition.
func ActiveIndex(windows []Window, p float64) int {
	if len(windows) == 0 {
		return -1
	}
	if p < windows[0].Start {
		return 0
	}
	for _, w := range windows {
		if w.Contains(p) {
			return w.Index
		}
	}
	return len(windows) - 1
}

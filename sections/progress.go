package sections

import "github.com/cometholdings/comet"

// ProgressBar is a thin bar across the top of the viewport that fills as
// the whole document scrolls by. Like the navbar it sticks to the top, so
// it must precede the content in its parent.
type ProgressBar struct {
	base
	Bar      *comet.Element
	Timeline *comet.Timeline
	Observer *comet.Observer
}

// MountProgress builds the bar.
func MountProgress(page *comet.Page, parent *comet.Element, t ProgressTiming) *ProgressBar {
	pb := &ProgressBar{base: newBase(page, parent, "progress")}
	pb.root.Sticky = true
	pb.root.ZIndex = 300

	pb.Bar = comet.NewBox("progress-bar", 0, 3, colorInk)
	pb.Bar.FillWidth = true
	pb.Bar.OriginX = 0
	pb.Bar.ZIndex = 300
	pb.root.AddChild(pb.Bar)

	pb.Timeline = pb.scope.Timeline(comet.TimelineConfig{Name: "progress", Ease: easeNone})
	pb.Timeline.FromTo(pb.Bar, comet.PropScaleX, 0, 1, 1, nil, comet.End())
	pb.Observer = pb.scope.Observe(comet.ObserverConfig{
		Name:      "progress",
		Start:     "top top",
		End:       "bottom bottom",
		Animation: pb.Timeline,
		Scrub:     true,
		Smooth:    t.Smooth,
	})
	return pb
}

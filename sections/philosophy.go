package sections

import (
	"fmt"

	"github.com/cometholdings/comet"
	"github.com/cometholdings/comet/content"
)

// Philosophy pins for a long stretch of scroll while its heading, divider
// and statements build up in order. The same scroll distance is split into
// chapter windows that cross-fade the background cues.
type Philosophy struct {
	base
	Heading    *comet.Element
	Divider    *comet.Element
	Statements []*comet.Element
	Cues       []*comet.Element

	Master   *comet.Timeline
	Pin      *comet.Pin
	Chapters []comet.Window

	active    int
	onChapter func(int)
}

// MountPhilosophy builds the section. onChapter, when set, is called with
// the index of the chapter that becomes dominant as the reader scrolls.
func MountPhilosophy(page *comet.Page, parent *comet.Element, c content.Philosophy, t PhilosophyTiming, onChapter func(int)) *Philosophy {
	ph := &Philosophy{base: newBase(page, parent, "philosophy"), onChapter: onChapter}
	ph.root.ViewportHeight = 1
	ph.build(c)

	// Dimmed and shifted left before the timeline captures start values.
	for _, s := range ph.Statements {
		s.Alpha = 0.25
		s.X = -100
	}

	ph.Master = ph.scope.Timeline(comet.TimelineConfig{Name: "philosophy", Ease: easeSoft})
	ph.Master.FromTo(ph.Heading, comet.PropAlpha, 0, 1, t.Heading, nil, comet.End())
	ph.Master.FromTo(ph.Heading, comet.PropX, 20, 0, t.Heading, nil, comet.WithPrev())
	ph.Master.FromTo(ph.Divider, comet.PropScaleX, 0, 1, t.Divider, easeInOut, comet.Next())
	for _, s := range ph.Statements {
		ph.Master.To(s, comet.PropAlpha, 1, t.Statement, nil, comet.AfterPrev(-t.StatementOverlap))
		ph.Master.To(s, comet.PropX, 0, t.Statement, nil, comet.WithPrev())
	}
	ph.Master.Hold(t.Hold)

	ph.Chapters = comet.Partition(len(ph.Cues), 0, 1, t.Crossfade)
	ph.applyChapters(0)
	ph.Pin = ph.scope.Pin(comet.PinConfig{
		Name:     "philosophy",
		Element:  ph.root,
		Distance: t.PinDistance,
		Timeline: ph.Master,
		Smooth:   t.Smooth,
		OnUpdate: func(_ *comet.Pin, v float64) { ph.applyChapters(v) },
	})
	return ph
}

// Active returns the index of the dominant chapter, or -1 without chapters.
func (ph *Philosophy) Active() int {
	if len(ph.Chapters) == 0 {
		return -1
	}
	return ph.active
}

func (ph *Philosophy) applyChapters(p float64) {
	if len(ph.Chapters) == 0 {
		return
	}
	for i, w := range ph.Chapters {
		ph.Cues[i].Alpha = w.Weight(p)
	}
	idx := comet.ActiveIndex(ph.Chapters, p)
	if idx != ph.active {
		ph.active = idx
		if ph.onChapter != nil {
			ph.onChapter(idx)
		}
	}
}

func (ph *Philosophy) build(c content.Philosophy) {
	for i, ch := range c.Chapters {
		cue := comet.NewElement(fmt.Sprintf("philosophy-chapter-%d", i))
		cue.FillWidth = true
		cue.ViewportHeight = 1
		cue.Color = hex(ch.Color)
		cue.UserData = ch
		label := text(cue.Name+"-title", ch.Title, 400, 32)
		label.Left, label.Top = 96, 48
		label.Color = colorMuted
		cue.AddChild(label)
		ph.Cues = append(ph.Cues, cue)
		ph.root.AddChild(cue)
	}

	ph.Heading = text("philosophy-heading", c.Heading, 600, 40)
	ph.Heading.Left, ph.Heading.Top = 96, 160
	ph.Heading.ZIndex = 10

	ph.Divider = rule("philosophy-divider", 800)
	ph.Divider.Left, ph.Divider.Top = 96, 220
	ph.Divider.ZIndex = 10
	ph.Divider.OriginX = 0

	ph.root.AddChildren(ph.Heading, ph.Divider)
	for i, s := range c.Statements {
		el := text(fmt.Sprintf("philosophy-statement-%d", i), s.Text, 900, 72)
		el.Left, el.Top = 96, 260+float64(i)*96
		el.ZIndex = 10
		if s.Bold {
			el.FontWeight = 700
		}
		ph.Statements = append(ph.Statements, el)
		ph.root.AddChild(el)
	}
}

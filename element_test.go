package comet

import "testing"

func TestAddRemoveChild(t *testing.T) {
	parent := NewElement("parent")
	a := NewElement("a")
	b := NewElement("b")
	parent.AddChildren(a, b)
	if parent.NumChildren() != 2 || parent.ChildAt(1) != b || b.Parent != parent {
		t.Fatal("children not attached in order")
	}

	other := NewElement("other")
	other.AddChild(a)
	if parent.NumChildren() != 1 || a.Parent != other {
		t.Error("AddChild should reparent")
	}
	b.RemoveFromParent()
	if parent.NumChildren() != 0 || b.Parent != nil {
		t.Error("RemoveFromParent did not detach")
	}
}

func TestAddChildCyclePanics(t *testing.T) {
	a := NewElement("a")
	b := NewElement("b")
	a.AddChild(b)
	defer func() {
		if recover() == nil {
			t.Error("expected panic adding an ancestor as a child")
		}
	}()
	b.AddChild(a)
}

func TestFindAll(t *testing.T) {
	root := NewElement("root")
	list := NewElement("list")
	root.AddChild(list)
	for _, n := range []string{"card-0", "card-1", "title", "card-2"} {
		list.AddChild(NewElement(n))
	}
	if root.Find("title") == nil || root.Find("missing") != nil {
		t.Error("Find mismatch")
	}
	cards := root.FindAll("card-")
	if len(cards) != 3 || cards[2].Name != "card-2" {
		t.Errorf("FindAll = %d elements, want 3 in document order", len(cards))
	}
}

func TestDisposeRecursive(t *testing.T) {
	parent := NewElement("parent")
	child := NewElement("child")
	grand := NewElement("grand")
	parent.AddChild(child)
	child.AddChild(grand)

	child.Dispose()
	if !child.IsDisposed() || !grand.IsDisposed() {
		t.Error("dispose should recurse")
	}
	if parent.NumChildren() != 0 {
		t.Error("disposed child still attached")
	}
	grand.SetProp(PropAlpha, 0)
	if grand.Alpha != 1 {
		t.Error("SetProp on a disposed element should be ignored")
	}
	child.Dispose() // idempotent
}

func TestSetPropScaleWritesBothAxes(t *testing.T) {
	e := NewElement("e")
	e.SetProp(PropScale, 0.5)
	if e.ScaleX != 0.5 || e.ScaleY != 0.5 {
		t.Errorf("scale = (%f, %f), want (0.5, 0.5)", e.ScaleX, e.ScaleY)
	}
	if e.Prop(PropScale) != 0.5 {
		t.Errorf("Prop(PropScale) = %f, want 0.5", e.Prop(PropScale))
	}
	e.SetProp(PropClipLeft, 40)
	if e.ClipLeft != 40 {
		t.Errorf("ClipLeft = %f, want 40", e.ClipLeft)
	}
}

func TestColumnLayout(t *testing.T) {
	p := NewPage(1200, 600)
	hero := NewElement("hero")
	hero.ViewportHeight = 1
	hero.FillWidth = true
	body := NewBox("body", 0, 900, ColorBlack)
	body.FillWidth = true
	p.Root().Gap = 20
	p.Root().AddChildren(hero, body)
	p.Refresh()

	if hero.Height != 600 || hero.Width != 1200 {
		t.Errorf("hero = %fx%f, want 1200x600", hero.Width, hero.Height)
	}
	if body.Top != 620 || body.Width != 1200 {
		t.Errorf("body top = %f, width = %f, want 620, 1200", body.Top, body.Width)
	}
	if p.DocumentHeight() != 1520 {
		t.Errorf("DocumentHeight = %f, want 1520", p.DocumentHeight())
	}

	p.Resize(800, 400)
	if hero.Height != 400 || body.Top != 420 || body.Width != 800 {
		t.Errorf("after resize hero %f, body top %f width %f", hero.Height, body.Top, body.Width)
	}
}

func TestDocumentTopIncludesPinSpacing(t *testing.T) {
	p, els := newStackPage(800, 800, 800)
	if els[2].DocumentTop() != 1600 {
		t.Fatalf("DocumentTop = %f, want 1600", els[2].DocumentTop())
	}
	if _, err := p.Pin(PinConfig{Element: els[1], DistancePx: 500}); err != nil {
		t.Fatal(err)
	}
	if els[2].DocumentTop() != 2100 {
		t.Errorf("DocumentTop = %f, want 2100 with 500px of pin spacing above", els[2].DocumentTop())
	}
	if els[0].DocumentTop() != 0 {
		t.Errorf("elements above the pin should not move, got %f", els[0].DocumentTop())
	}
	if p.DocumentHeight() != 2900 {
		t.Errorf("DocumentHeight = %f, want 2900", p.DocumentHeight())
	}
}

package comet

import "strings"

// elementIDCounter is a plain counter, not atomic: pages are driven from one
// goroutine.
var elementIDCounter uint32

func nextElementID() uint32 {
	elementIDCounter++
	return elementIDCounter
}

// Element is the fundamental document element. A single flat struct is used
// for every kind of element; sections distinguish them by name.
type Element struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Element
	children []*Element

	// Layout box relative to the parent, in CSS pixels.
	Left, Top     float64
	Width, Height float64
	// ViewportHeight, when positive, sizes the element to that multiple of
	// the viewport height on every layout pass (1 = full screen).
	ViewportHeight float64
	// FillWidth sizes the element to its parent's width on every layout pass.
	FillWidth bool
	// Layout controls how children are positioned. Column layout stacks
	// children with Gap pixels between them and, when AutoHeight is set,
	// grows this element to fit.
	Layout     LayoutMode
	Gap        float64
	AutoHeight bool
	// Sticky keeps the element at the top of the viewport while its parent
	// is still on screen.
	Sticky bool

	// Animatable properties
	X, Y               float64
	XPercent, YPercent float64
	ScaleX, ScaleY     float64
	// OriginX and OriginY locate the scale origin as a fraction of the box
	// (0.5, 0.5 is the center).
	OriginX, OriginY float64
	RotateX          float64
	Alpha            float64
	ClipTop          float64
	ClipRight        float64
	ClipBottom       float64
	ClipLeft         float64
	FontWeight       float64
	LetterSpacing    float64
	Value            float64

	// Presentation
	Color   Color
	Visible bool
	ZIndex  int
	Text    string
	// Interactable elements receive clicks in hit testing.
	Interactable bool

	// Metadata
	UserData any

	// Pin state, owned by the Pin that targets this element.
	pinOffset float64
	pinned    bool
	spacing   float64

	// page is set on a page's root only; see owner.
	page     *Page
	disposed bool
}

// NewElement creates an element with default property values: unit scale,
// full opacity, visible, transparent color.
func NewElement(name string) *Element {
	return &Element{
		ID:         nextElementID(),
		Name:       name,
		ScaleX:     1,
		ScaleY:     1,
		OriginX:    0.5,
		OriginY:    0.5,
		Alpha:      1,
		FontWeight: 400,
		Visible:    true,
	}
}

// NewBox creates a visible element with the given size and color.
func NewBox(name string, width, height float64, c Color) *Element {
	e := NewElement(name)
	e.Width = width
	e.Height = height
	e.Color = c
	return e
}

// --- Tree manipulation ---

// AddChild appends child to this element's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this element (cycle).
func (e *Element) AddChild(child *Element) {
	if child == nil {
		panic("comet: cannot add nil child")
	}
	pg := e.owner()
	debug := pg != nil && pg.debug
	if debug {
		debugCheckDisposed(e, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, e) {
		panic("comet: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = e
	e.children = append(e.children, child)
	if debug {
		debugCheckTreeDepth(pg.log, child)
	}
}

// owner returns the page whose tree contains e, or nil for a detached
// subtree.
func (e *Element) owner() *Page {
	for r := e; r != nil; r = r.Parent {
		if r.page != nil {
			return r.page
		}
	}
	return nil
}

// AddChildren appends each child in order.
func (e *Element) AddChildren(children ...*Element) {
	for _, c := range children {
		e.AddChild(c)
	}
}

// RemoveChild detaches child from this element.
// Panics if child.Parent != e.
func (e *Element) RemoveChild(child *Element) {
	if child.Parent != e {
		panic("comet: child's parent is not this element")
	}
	e.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this element from its parent.
// No-op if this element has no parent.
func (e *Element) RemoveFromParent() {
	if e.Parent == nil {
		return
	}
	e.Parent.RemoveChild(e)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (e *Element) Children() []*Element {
	return e.children
}

// NumChildren returns the number of children.
func (e *Element) NumChildren() int {
	return len(e.children)
}

// ChildAt returns the child at the given index.
func (e *Element) ChildAt(index int) *Element {
	return e.children[index]
}

// Find returns the first descendant (depth-first, excluding e) with the
// given name, or nil.
func (e *Element) Find(name string) *Element {
	for _, c := range e.children {
		if c.Name == name {
			return c
		}
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant whose name starts with prefix, in
// document order. This is the element-tree counterpart of a class selector.
func (e *Element) FindAll(prefix string) []*Element {
	var out []*Element
	var walk func(*Element)
	walk = func(n *Element) {
		for _, c := range n.children {
			if strings.HasPrefix(c.Name, prefix) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(e)
	return out
}

// --- Disposal ---

// Dispose removes this element from its parent, marks it as disposed, and
// recursively disposes all descendants. Observers and transitions that
// target a disposed element stop silently.
func (e *Element) Dispose() {
	if e.disposed {
		return
	}
	e.RemoveFromParent()
	e.dispose()
}

func (e *Element) dispose() {
	e.disposed = true
	e.ID = 0
	for _, child := range e.children {
		child.Parent = nil
		child.dispose()
	}
	e.children = nil
	e.Parent = nil
	e.UserData = nil
}

// IsDisposed returns true if this element has been disposed.
func (e *Element) IsDisposed() bool {
	return e.disposed
}

// alive reports whether e can still be animated or observed.
func (e *Element) alive() bool {
	return e != nil && !e.disposed
}

// --- Properties ---

// field returns a pointer to the storage of p, or nil for unknown properties.
func (e *Element) field(p Property) *float64 {
	switch p {
	case PropX:
		return &e.X
	case PropY:
		return &e.Y
	case PropXPercent:
		return &e.XPercent
	case PropYPercent:
		return &e.YPercent
	case PropScale, PropScaleX:
		return &e.ScaleX
	case PropScaleY:
		return &e.ScaleY
	case PropRotateX:
		return &e.RotateX
	case PropAlpha:
		return &e.Alpha
	case PropClipTop:
		return &e.ClipTop
	case PropClipRight:
		return &e.ClipRight
	case PropClipBottom:
		return &e.ClipBottom
	case PropClipLeft:
		return &e.ClipLeft
	case PropFontWeight:
		return &e.FontWeight
	case PropLetterSpacing:
		return &e.LetterSpacing
	case PropValue:
		return &e.Value
	}
	return nil
}

// Prop returns the current value of p. Unknown properties read as 0.
func (e *Element) Prop(p Property) float64 {
	if f := e.field(p); f != nil {
		return *f
	}
	return 0
}

// SetProp writes v to p. PropScale writes both axes. Unknown properties and
// disposed elements are ignored.
func (e *Element) SetProp(p Property, v float64) {
	if e.disposed {
		return
	}
	if p == PropScale {
		e.ScaleX = v
		e.ScaleY = v
		return
	}
	if f := e.field(p); f != nil {
		*f = v
	}
}

// --- Layout ---

// Pinned reports whether a pin currently holds this element in place.
func (e *Element) Pinned() bool {
	return e.pinned
}

// PinOffset returns the translation a pin applies to keep this element in
// place. Zero when the element has never been pinned or its pin was reverted.
func (e *Element) PinOffset() float64 {
	return e.pinOffset
}

// totalSpacing returns the pin spacing reserved by e and its descendants.
func (e *Element) totalSpacing() float64 {
	s := e.spacing
	for _, c := range e.children {
		s += c.totalSpacing()
	}
	return s
}

// FlowHeight returns the height e occupies in the document, including pin
// spacing reserved inside it.
func (e *Element) FlowHeight() float64 {
	return e.Height + e.totalSpacing()
}

// DocumentTop returns the element's top edge in document coordinates. Pin
// spacing reserved by siblings laid out entirely above it (at every level)
// pushes it down; the element's own pin offset does not.
func (e *Element) DocumentTop() float64 {
	top := e.Top + e.spacingAbove()
	if e.Parent != nil {
		top += e.Parent.DocumentTop()
	}
	return top
}

// spacingAbove returns the pin spacing of earlier siblings that end above e.
func (e *Element) spacingAbove() float64 {
	if e.Parent == nil {
		return 0
	}
	var s float64
	for _, sib := range e.Parent.children {
		if sib != e && sib.Top+sib.Height <= e.Top {
			s += sib.totalSpacing()
		}
	}
	return s
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of (or equal to) el.
func isAncestor(candidate, el *Element) bool {
	for p := el; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from e.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (e *Element) removeChildByPtr(child *Element) {
	for i, c := range e.children {
		if c == child {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			return
		}
	}
}

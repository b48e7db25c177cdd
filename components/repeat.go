package components

import (
	"github.com/vcrobe/weft/children"
	"github.com/vcrobe/weft/runtime"
	"github.com/vcrobe/weft/vdom"
)

// Repeat runs its children Count times per render and groups the
// results in a fragment. The children closure may mutate captured
// state between runs (a counter, an iterator), which is why the prop
// is a ChildrenFnMut.
type Repeat struct {
	runtime.ComponentBase

	// Count is how many times the children run per render. Zero or
	// negative renders an empty fragment.
	Count int

	// Children produces one view per run.
	Children children.ChildrenFnMut
}

func (c *Repeat) Render(r runtime.Renderer) *vdom.VNode {
	if c.Count <= 0 || c.Children == nil {
		return vdom.Fragment()
	}
	nodes := make([]*vdom.VNode, 0, c.Count)
	for i := 0; i < c.Count; i++ {
		if n := c.Children().Render(); n != nil {
			nodes = append(nodes, n)
		}
	}
	return vdom.Fragment(nodes...)
}

// ApplyProps absorbs the props of a freshly constructed Repeat.
func (c *Repeat) ApplyProps(next runtime.Component) {
	if n, ok := next.(*Repeat); ok {
		c.Count = n.Count
		c.Children = n.Children
	}
}

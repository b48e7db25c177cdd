package components

import (
	"github.com/vcrobe/weft/children"
	"github.com/vcrobe/weft/runtime"
	"github.com/vcrobe/weft/vdom"
	"github.com/vcrobe/weft/view"
)

// Memo renders its children once and reuses the resulting view on
// every later render. It is the natural consumer for call-once
// children: the closure is guaranteed to run at most one time for the
// lifetime of the instance.
type Memo struct {
	runtime.ComponentBase

	// Children produces the content. Consumed on the first render.
	Children children.Children

	cached   view.AnyView
	rendered bool
}

func (c *Memo) Render(r runtime.Renderer) *vdom.VNode {
	if !c.rendered {
		if c.Children.HasContent() {
			c.cached = c.Children.Run()
		}
		c.rendered = true
	}
	return c.cached.Render()
}

// ApplyProps intentionally ignores the fresh instance: the whole point
// of Memo is that the first children closure wins for this location.
func (c *Memo) ApplyProps(next runtime.Component) {}

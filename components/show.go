// Package components provides building blocks that accept nested
// content through the children calling conventions.
package components

import (
	"github.com/vcrobe/weft/children"
	"github.com/vcrobe/weft/runtime"
	"github.com/vcrobe/weft/vdom"
)

// Show renders its children while When is true, and the Fallback
// otherwise.
type Show struct {
	runtime.ComponentBase

	// --- PROPS ---

	// When controls which branch is rendered.
	When bool

	// Children produces the content for the true branch. It must be
	// repeatable: Show re-runs it every time the branch re-renders.
	Children children.ChildrenFn

	// Fallback produces the content for the false branch. Optional;
	// the zero value renders nothing.
	Fallback children.ViewFn
}

func (c *Show) Render(r runtime.Renderer) *vdom.VNode {
	if c.When && c.Children != nil {
		return c.Children().Render()
	}
	return c.Fallback.Run().Render()
}

// ApplyProps absorbs the props of a freshly constructed Show so a
// reused instance tracks the parent's current state.
func (c *Show) ApplyProps(next runtime.Component) {
	if n, ok := next.(*Show); ok {
		c.When = n.When
		c.Children = n.Children
		c.Fallback = n.Fallback
	}
}

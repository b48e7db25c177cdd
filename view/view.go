// Package view defines the renderable capability shared by everything
// the framework can display, plus the erased and typed view values
// that component boundaries exchange.
//
// A value is renderable when it can produce a *vdom.VNode. Components
// and element constructors return concrete renderable values; the
// children package erases them into AnyView so a parent component can
// accept nested content without knowing its concrete type.
package view

import "github.com/vcrobe/weft/vdom"

// IntoView is the capability a value must satisfy to be shown by the
// runtime. *vdom.VNode satisfies it directly, as do AnyView, View[T],
// Text, and Group.
type IntoView interface {
	// Render produces the node tree for this value. A nil result
	// renders nothing.
	Render() *vdom.VNode
}

// AnyView is a type-erased view: a rendered value usable without
// knowing the concrete type that produced it.
//
// The zero value is the empty view and renders to a nil node.
type AnyView struct {
	node *vdom.VNode
}

// Any erases a renderable value into an AnyView. A nil value (or a
// value that renders to nil) becomes the empty view.
func Any(v IntoView) AnyView {
	if v == nil {
		return AnyView{}
	}
	return AnyView{node: v.Render()}
}

// Empty returns the view that renders nothing. It is what a defaulted
// view factory produces when no content was supplied.
func Empty() AnyView {
	return AnyView{}
}

// Render implements IntoView. The empty view yields nil.
func (v AnyView) Render() *vdom.VNode {
	return v.node
}

// IsEmpty reports whether the view renders nothing.
func (v AnyView) IsEmpty() bool {
	return v.node == nil
}

// View is the statically-typed counterpart to AnyView: it carries the
// concrete renderable value so callers that know the type can keep it.
type View[T IntoView] struct {
	inner T
}

// Of wraps a concrete renderable value in a typed View.
func Of[T IntoView](v T) View[T] {
	return View[T]{inner: v}
}

// Inner returns the wrapped value.
func (v View[T]) Inner() T {
	return v.inner
}

// IntoAny erases the typed view.
func (v View[T]) IntoAny() AnyView {
	return Any(v.inner)
}

// Render implements IntoView by delegating to the wrapped value.
func (v View[T]) Render() *vdom.VNode {
	return v.inner.Render()
}

// Text is a renderable string.
type Text string

// Render implements IntoView.
func (t Text) Render() *vdom.VNode {
	return vdom.Text(string(t))
}

// Group is a renderable sequence of views, rendered as a fragment.
type Group []IntoView

// Render implements IntoView. Empty members are dropped.
func (g Group) Render() *vdom.VNode {
	nodes := make([]*vdom.VNode, 0, len(g))
	for _, v := range g {
		if v == nil {
			continue
		}
		if n := v.Render(); n != nil {
			nodes = append(nodes, n)
		}
	}
	return vdom.Fragment(nodes...)
}

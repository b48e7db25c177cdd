// Package children defines the calling conventions for nested content
// passed into a component.
//
// A component that accepts nested content declares one of the wrapper
// types here as a prop, picked by how often it needs to run the
// content:
//
//   - Children: runs the content exactly once (the common case).
//   - ChildrenFn: may run the content any number of times, and may be
//     copied to several call sites.
//   - ChildrenFnMut: may run the content any number of times; the
//     closure is allowed to mutate state it captured, so it must stay
//     with a single owner.
//   - TypedChildren: like Children, but preserves the concrete view
//     type for callers that want to keep it.
//
// Callers never build the wrappers by hand. The To* constructors
// accept any zero-argument closure whose result is renderable and
// erase (or, for TypedChildren, preserve) the result type. Running the
// wrapper is equivalent to running the original closure and erasing
// its result.
package children

import "github.com/vcrobe/weft/view"

// Children is the most common type for a component's children prop.
// It may be run at most once.
//
// The zero value has no content; running it panics, as does running a
// value a second time.
type Children struct {
	f func() view.AnyView
}

// ToChildren wraps a closure as call-once children.
func ToChildren[C view.IntoView](f func() C) Children {
	return Children{f: func() view.AnyView {
		return view.Any(f())
	}}
}

// Run consumes the wrapper and produces the view.
func (c *Children) Run() view.AnyView {
	if c.f == nil {
		panic("children: call-once children run twice or never set")
	}
	f := c.f
	c.f = nil
	return f()
}

// HasContent reports whether the wrapper still holds an unconsumed
// closure. Components use it to fall back when no children were given.
func (c *Children) HasContent() bool {
	return c.f != nil
}

// ChildrenFn is a children prop that can be run more than once. Copies
// share the same closure, so it can be handed to several call sites;
// the closure must not rely on exclusive ownership of captured state.
type ChildrenFn func() view.AnyView

// ToChildrenFn wraps a closure as repeatable children.
func ToChildrenFn[C view.IntoView](f func() C) ChildrenFn {
	return func() view.AnyView {
		return view.Any(f())
	}
}

// ChildrenFnMut is a children prop that can be run more than once and
// whose closure may mutate captured state between runs. Unlike
// ChildrenFn it is meant for a single owner; sharing one across
// goroutines needs external synchronization.
type ChildrenFnMut func() view.AnyView

// ToChildrenFnMut wraps a closure as repeatable, mutable children.
func ToChildrenFnMut[C view.IntoView](f func() C) ChildrenFnMut {
	return func() view.AnyView {
		return view.Any(f())
	}
}

// TypedChildren is the typed equivalent of Children: call-once, but
// the concrete view type survives so the consumer can inspect it.
type TypedChildren[T view.IntoView] struct {
	f func() view.View[T]
}

// ToTypedChildren wraps a closure as typed call-once children.
func ToTypedChildren[T view.IntoView](f func() T) TypedChildren[T] {
	return TypedChildren[T]{f: func() view.View[T] {
		return view.Of(f())
	}}
}

// IntoInner consumes the wrapper and returns the underlying producer.
// It panics if the wrapper was already consumed or never set.
func (tc *TypedChildren[T]) IntoInner() func() view.View[T] {
	if tc.f == nil {
		panic("children: typed children consumed twice or never set")
	}
	f := tc.f
	tc.f = nil
	return f
}

// HasContent reports whether the wrapper still holds an unconsumed
// closure.
func (tc *TypedChildren[T]) HasContent() bool {
	return tc.f != nil
}

// ViewFn wraps a function returning a view, for optional props such as
// a fallback. The zero value is valid and produces the empty view, so
// components can declare a ViewFn prop and never check whether the
// caller set it.
//
// Copies share the same closure and ViewFn may be run any number of
// times.
type ViewFn struct {
	f func() view.AnyView
}

// NewViewFn wraps a closure as a ViewFn.
func NewViewFn[C view.IntoView](f func() C) ViewFn {
	return ViewFn{f: func() view.AnyView {
		return view.Any(f())
	}}
}

// Run executes the wrapped function, or yields the empty view when the
// ViewFn was never set.
func (v ViewFn) Run() view.AnyView {
	if v.f == nil {
		return view.Empty()
	}
	return v.f()
}

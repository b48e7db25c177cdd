package runtime

import "github.com/vcrobe/weft/vdom"

// Component interface defines the structure for all components in the framework.
// The Render method accepts the Renderer interface (not a concrete type) so both
// embedder and test renderers can drive it.
type Component interface {
	// Render generates the virtual DOM tree for this component.
	// The renderer parameter provides access to framework services like RenderChild.
	Render(r Renderer) *vdom.VNode

	// SetRenderer is called by the framework to attach the renderer to the component.
	// This enables StateHasChanged() to trigger re-renders.
	SetRenderer(r Renderer)
}

// Renderer defines the minimal set of runtime operations a component may call
// while rendering.
type Renderer interface {
	// RenderChild renders a child component. The key parameter uniquely
	// identifies the component instance for state preservation across renders.
	RenderChild(key string, childWithProps Component) *vdom.VNode

	// ReRender requests that the renderer re-run the render cycle.
	// Used by StateHasChanged() when component state changes.
	ReRender()
}

// Initializer is implemented by components that need one-time setup.
// OnInit runs once per instance, before the first render.
type Initializer interface {
	OnInit()
}

// ParameterReceiver is implemented by components that derive internal
// state from their props. OnParametersSet runs before every render,
// including the first.
type ParameterReceiver interface {
	OnParametersSet()
}

// Cleaner is implemented by components that hold resources.
// OnDestroy runs when the instance leaves the tree.
type Cleaner interface {
	OnDestroy()
}

// PropUpdater lets a reused instance absorb the props of the freshly
// constructed value passed to RenderChild, keeping its internal state.
type PropUpdater interface {
	ApplyProps(next Component)
}

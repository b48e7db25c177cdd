package runtime

import (
	"go.uber.org/zap"

	"github.com/vcrobe/weft/vdom"
)

// Compile-time assertion to ensure TreeRenderer implements the Renderer interface.
var _ Renderer = (*TreeRenderer)(nil)

// TreeRenderer is a headless renderer: it drives the component
// lifecycle and keeps the rendered tree in memory. Embedders read the
// tree via CurrentTree after each render; tests use it directly as a
// harness.
//
// It manages the component instance tree: child instances are keyed,
// reused across renders to preserve state, and destroyed when a render
// no longer produces them.
type TreeRenderer struct {
	instances   map[string]Component
	initialized map[string]bool // Track which components have been initialized
	activeKeys  map[string]bool // Track which components are active in the current render
	root        Component
	currentTree *vdom.VNode
	log         *zap.Logger
	strict      bool
}

// Option configures a TreeRenderer.
type Option func(*TreeRenderer)

// WithLogger sets the logger used for recovered lifecycle panics.
// The default logger discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(r *TreeRenderer) {
		r.log = log
	}
}

// WithStrictLifecycle makes lifecycle panics propagate instead of
// being recovered and logged. Useful during development and in tests,
// where fast failure beats resilience.
func WithStrictLifecycle() Option {
	return func(r *TreeRenderer) {
		r.strict = true
	}
}

// NewTreeRenderer creates a renderer attached to the given root component.
func NewTreeRenderer(root Component, opts ...Option) *TreeRenderer {
	r := &TreeRenderer{
		instances:   make(map[string]Component),
		initialized: make(map[string]bool),
		activeKeys:  make(map[string]bool),
		root:        root,
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	root.SetRenderer(r)
	return r
}

// RenderRoot runs a full render cycle and returns the resulting tree.
func (r *TreeRenderer) RenderRoot() *vdom.VNode {
	// Reset activeKeys for this render cycle
	r.activeKeys = make(map[string]bool)

	// Handle root component lifecycle
	if !r.initialized["__root__"] {
		// Call OnInit only once, before first render
		if initializer, ok := r.root.(Initializer); ok {
			r.callOnInit(initializer, "__root__")
		}
		r.initialized["__root__"] = true
	}

	// Call OnParametersSet before every render (including first)
	if paramReceiver, ok := r.root.(ParameterReceiver); ok {
		r.callOnParametersSet(paramReceiver, "__root__")
	}

	r.currentTree = r.root.Render(r)

	// Clean up components that were not rendered in this cycle
	r.cleanupUnmountedComponents()

	return r.currentTree
}

// CurrentTree returns the most recently rendered tree.
func (r *TreeRenderer) CurrentTree() *vdom.VNode {
	return r.currentTree
}

// RenderChild is called by a component's Render to render a child component.
// It handles the core logic of instance creation and reuse.
func (r *TreeRenderer) RenderChild(key string, childWithProps Component) *vdom.VNode {
	// Mark this component as active in the current render cycle
	r.activeKeys[key] = true

	instance, exists := r.instances[key]
	isFirstRender := false

	if !exists {
		// First time seeing this component at this location, so store the new instance.
		instance = childWithProps
		r.instances[key] = instance
		isFirstRender = true
	} else {
		// We have seen this component before. Preserve the existing instance to keep state.
		// Apply new props from childWithProps to the existing instance.
		if updater, ok := instance.(PropUpdater); ok {
			updater.ApplyProps(childWithProps)
		}
	}

	// Ensure the instance knows about the renderer so it can call StateHasChanged.
	instance.SetRenderer(r)

	// Call lifecycle methods in the correct order
	if isFirstRender {
		// Call OnInit only once, before first render
		if initializer, ok := instance.(Initializer); ok {
			r.callOnInit(initializer, key)
		}
		r.initialized[key] = true
	}

	// Call OnParametersSet before every render (including first)
	if paramReceiver, ok := instance.(ParameterReceiver); ok {
		r.callOnParametersSet(paramReceiver, key)
	}

	return instance.Render(r)
}

// cleanupUnmountedComponents removes components that are no longer in the tree
// and calls their OnDestroy lifecycle method if they implement the Cleaner interface.
func (r *TreeRenderer) cleanupUnmountedComponents() {
	for key, instance := range r.instances {
		// If the component wasn't marked as active in this render, it's been unmounted
		if !r.activeKeys[key] {
			if cleaner, ok := instance.(Cleaner); ok {
				r.callOnDestroy(cleaner, key)
			}

			delete(r.instances, key)
			delete(r.initialized, key)
		}
	}
}

// ReRender re-runs the render cycle. Called by StateHasChanged.
func (r *TreeRenderer) ReRender() {
	r.RenderRoot()
}

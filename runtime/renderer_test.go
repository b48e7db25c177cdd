package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/vcrobe/weft/vdom"
)

// counterChild is a stateful child component used to verify instance
// reuse across renders.
type counterChild struct {
	ComponentBase

	Label string // prop

	renders  int
	inits    int
	paramSet int
	destroys int
}

func (c *counterChild) OnInit()          { c.inits++ }
func (c *counterChild) OnParametersSet() { c.paramSet++ }
func (c *counterChild) OnDestroy()       { c.destroys++ }

func (c *counterChild) ApplyProps(next Component) {
	if n, ok := next.(*counterChild); ok {
		c.Label = n.Label
	}
}

func (c *counterChild) Render(r Renderer) *vdom.VNode {
	c.renders++
	return vdom.Paragraph(c.Label, nil)
}

// parent renders a child under a stable key, unless ShowChild is off.
type parent struct {
	ComponentBase

	ShowChild bool
	Label     string
}

func (p *parent) Render(r Renderer) *vdom.VNode {
	if !p.ShowChild {
		return vdom.Div(nil)
	}
	return vdom.Div(nil, r.RenderChild("child-1", &counterChild{Label: p.Label}))
}

// TestTreeRenderer_RenderRoot verifies the initial render cycle and
// lifecycle ordering for the root component.
func TestTreeRenderer_RenderRoot(t *testing.T) {
	// Arrange
	root := &counterChild{Label: "root"}
	r := NewTreeRenderer(root)

	// Act
	tree := r.RenderRoot()

	// Assert: OnInit once, OnParametersSet once, tree captured
	require.NotNil(t, tree)
	assert.Equal(t, "root", tree.Content)
	assert.Equal(t, 1, root.inits)
	assert.Equal(t, 1, root.paramSet)
	assert.Same(t, tree, r.CurrentTree())

	// Act: render again
	r.RenderRoot()

	// Assert: OnInit still once, OnParametersSet per render
	assert.Equal(t, 1, root.inits)
	assert.Equal(t, 2, root.paramSet)
}

// TestTreeRenderer_ChildInstanceReuse verifies that a keyed child keeps
// its instance (and therefore its state) across renders, while fresh
// props are applied through PropUpdater.
func TestTreeRenderer_ChildInstanceReuse(t *testing.T) {
	// Arrange
	p := &parent{ShowChild: true, Label: "first"}
	r := NewTreeRenderer(p)

	// Act: two render cycles with changing props
	r.RenderRoot()
	first := r.instances["child-1"].(*counterChild)
	p.Label = "second"
	r.RenderRoot()

	// Assert: same instance, updated props, lifecycle counts
	second := r.instances["child-1"].(*counterChild)
	require.Same(t, first, second)
	assert.Equal(t, "second", second.Label)
	assert.Equal(t, 1, second.inits)
	assert.Equal(t, 2, second.paramSet)
	assert.Equal(t, 2, second.renders)
}

// TestTreeRenderer_CleanupUnmounted verifies that a child absent from
// a render cycle is destroyed and forgotten.
func TestTreeRenderer_CleanupUnmounted(t *testing.T) {
	// Arrange
	p := &parent{ShowChild: true}
	r := NewTreeRenderer(p)
	r.RenderRoot()
	child := r.instances["child-1"].(*counterChild)

	// Act: render a cycle without the child
	p.ShowChild = false
	r.RenderRoot()

	// Assert: OnDestroy ran, instance dropped
	assert.Equal(t, 1, child.destroys)
	assert.NotContains(t, r.instances, "child-1")

	// Act: bring the child back
	p.ShowChild = true
	r.RenderRoot()

	// Assert: a fresh instance was created and initialized
	fresh := r.instances["child-1"].(*counterChild)
	require.NotSame(t, child, fresh)
	assert.Equal(t, 1, fresh.inits)
}

// TestTreeRenderer_StateHasChanged verifies that a component can
// request a re-render through its embedded ComponentBase.
func TestTreeRenderer_StateHasChanged(t *testing.T) {
	root := &counterChild{Label: "tick"}
	r := NewTreeRenderer(root)
	r.RenderRoot()

	root.StateHasChanged()

	assert.Equal(t, 2, root.renders)
}

// panickyChild panics in OnInit.
type panickyChild struct {
	ComponentBase
}

func (c *panickyChild) OnInit() { panic("boom") }
func (c *panickyChild) Render(r Renderer) *vdom.VNode {
	return vdom.Div(nil)
}

// TestTreeRenderer_LifecyclePanicRecovered verifies that, by default,
// a panicking lifecycle hook is recovered and logged instead of taking
// the render cycle down.
func TestTreeRenderer_LifecyclePanicRecovered(t *testing.T) {
	// Arrange: capture log output
	core, logs := observer.New(zap.ErrorLevel)
	r := NewTreeRenderer(&panickyChild{}, WithLogger(zap.New(core)))

	// Act + Assert: the render survives
	require.NotPanics(t, func() { r.RenderRoot() })

	entries := logs.FilterMessage("lifecycle hook panicked").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "OnInit", entries[0].ContextMap()["hook"])
	assert.Equal(t, "__root__", entries[0].ContextMap()["component"])
}

// TestTreeRenderer_StrictLifecyclePropagates verifies that strict mode
// lets lifecycle panics escape for fast failure.
func TestTreeRenderer_StrictLifecyclePropagates(t *testing.T) {
	r := NewTreeRenderer(&panickyChild{}, WithStrictLifecycle())

	assert.Panics(t, func() { r.RenderRoot() })
}

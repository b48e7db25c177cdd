package vdom

// VNode represents a virtual DOM node.
//
// A node with an empty Tag is either a text node (Content set, no
// children) or a fragment (children set, no content). Fragments group
// sibling nodes without introducing an element of their own.
type VNode struct {
	Tag        string         // The HTML tag name; empty for text nodes and fragments
	Attributes map[string]any // The attributes of the node
	Children   []*VNode       // The child nodes
	Content    string         // The content of the node
	OnClick    func()         // Optional click event handler
}

// NewVNode creates a new VNode.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	var onClick func()
	if attributes != nil {
		if v, ok := attributes["onClick"]; ok {
			if f, ok := v.(func()); ok {
				onClick = f
				// Remove from attributes so it doesn't get rendered as an HTML attribute
				delete(attributes, "onClick")
			}
		}
	}
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
		Content:    content,
		OnClick:    onClick,
	}
}

// Render returns the node itself. It exists so that *VNode satisfies
// the renderable capability used by the view and children packages.
func (v *VNode) Render() *VNode {
	return v
}

// SetContent updates the Content field of the VNode.
func (v *VNode) SetContent(content string) {
	v.Content = content
}

// IsText reports whether the node is a bare text node.
func (v *VNode) IsText() bool {
	return v != nil && v.Tag == "" && len(v.Children) == 0
}

// IsFragment reports whether the node is a tagless grouping node.
func (v *VNode) IsFragment() bool {
	return v != nil && v.Tag == "" && len(v.Children) > 0
}

// Text creates a bare text node.
func Text(content string) *VNode {
	return &VNode{Content: content}
}

// Fragment groups the given nodes without introducing an element.
// Nil entries are skipped.
func Fragment(children ...*VNode) *VNode {
	kept := make([]*VNode, 0, len(children))
	for _, c := range children {
		if c != nil {
			kept = append(kept, c)
		}
	}
	return &VNode{Children: kept}
}

// Paragraph creates a <p> VNode with the given text as its child and allows passing attributes.
func Paragraph(text string, attrs map[string]any) *VNode {
	return NewVNode("p", attrs, nil, text)
}

// Span creates a <span> VNode with the given text and allows passing attributes.
func Span(text string, attrs map[string]any) *VNode {
	return NewVNode("span", attrs, nil, text)
}

// Anchor creates an <a> VNode pointing at href with the given text.
func Anchor(href, text string, attrs map[string]any) *VNode {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs["href"] = href
	return NewVNode("a", attrs, nil, text)
}

// InputText returns a VNode representing an <input type="text"> element.
// Optionally accepts a map of attributes (e.g., {"placeholder": "Type here"}).
func InputText(attrs map[string]any) *VNode {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs["type"] = "text"
	return NewVNode("input", attrs, nil, "")
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Button creates a <button> VNode with the given children and allows passing attributes.
func Button(content string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("button", attrs, children, content)
}

// UnorderedList creates a <ul> VNode wrapping one <li> per item.
func UnorderedList(attrs map[string]any, items ...*VNode) *VNode {
	lis := make([]*VNode, 0, len(items))
	for _, item := range items {
		lis = append(lis, NewVNode("li", nil, []*VNode{item}, ""))
	}
	return NewVNode("ul", attrs, lis, "")
}

package facesconfig

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	fcerrors "github.com/jacoelho/facesconfig/errors"
	"github.com/jacoelho/facesconfig/pkg/qname"
	"github.com/jacoelho/facesconfig/pkg/schema"
)

// Component is a typed view of one faces-config element.
//
// Components hold no state of their own: parent, children and values are
// read from the element on every call.
type Component struct {
	model *Model
	elem  *etree.Element
	def   *schema.Def
}

// Kind returns the component kind.
func (c *Component) Kind() schema.Kind {
	return c.def.Kind()
}

// Def returns the schema definition of the component kind.
func (c *Component) Def() *schema.Def {
	return c.def
}

// Model returns the owning model.
func (c *Component) Model() *Model {
	return c.model
}

// Peer returns the underlying element.
func (c *Component) Peer() *etree.Element {
	return c.elem
}

// Same reports whether c and other view the same element.
func (c *Component) Same(other *Component) bool {
	return c != nil && other != nil && c.elem == other.elem
}

// LocalName returns the element local name.
func (c *Component) LocalName() qname.Name {
	return qname.Name(c.elem.Tag)
}

// QName returns the qualified element name.
func (c *Component) QName() qname.QName {
	return qname.QName{Space: c.model.namespaceOf(c.elem), Local: c.elem.Tag}
}

// Path returns the element path from the document root.
func (c *Component) Path() string {
	return c.elem.GetPath()
}

// InDocument reports whether the component is reachable from the model root.
func (c *Component) InDocument() bool {
	return c.model.attached(c.elem)
}

// Parent returns the parent component, nil for the root and for components
// that are not attached.
func (c *Component) Parent() *Component {
	return c.model.wrap(c.elem.Parent())
}

// Children returns the component children in document order. Leaves and
// content unknown to the document version are skipped.
func (c *Component) Children() []*Component {
	var out []*Component
	for _, e := range c.elem.ChildElements() {
		if child, ok := c.model.factory.Create(e, c); ok {
			out = append(out, child)
		}
	}
	return out
}

// ChildrenOf returns the children of kind k in document order.
func (c *Component) ChildrenOf(k schema.Kind) []*Component {
	var out []*Component
	for _, child := range c.Children() {
		if child.Kind() == k {
			out = append(out, child)
		}
	}
	return out
}

// Child returns the first child of kind k.
func (c *Component) Child(k schema.Kind) *Component {
	for _, child := range c.Children() {
		if child.Kind() == k {
			return child
		}
	}
	return nil
}

// ChildrenNamed returns the component children with element name n.
func (c *Component) ChildrenNamed(n qname.Name) []*Component {
	var out []*Component
	for _, child := range c.Children() {
		if child.LocalName() == n {
			out = append(out, child)
		}
	}
	return out
}

// AppendChild attaches child after the existing children of its kind. The
// children are then sorted into canonical order.
func (c *Component) AppendChild(role string, child *Component) error {
	return c.insert(role, child, -1)
}

// InsertAtIndex attaches child before the index-th existing child of the same
// kind; an index past the end appends.
func (c *Component) InsertAtIndex(role string, child *Component, index int) error {
	if index < 0 {
		index = 0
	}
	return c.insert(role, child, index)
}

func (c *Component) insert(role string, child *Component, index int) error {
	if err := c.checkAttach(child); err != nil {
		return err
	}
	done := c.model.autoTransaction()
	defer done()

	var next *etree.Element
	if index >= 0 {
		if siblings := c.ChildrenOf(child.Kind()); index < len(siblings) {
			next = siblings[index].elem
		}
	}
	before := layout(c.elem)
	insertElement(c.elem, child.elem, next)
	c.model.reorder(c.elem, c.def)

	c.model.record(&structuralEdit{
		op:     OpAdd,
		parent: c,
		child:  child,
		index:  c.indexOf(child),
		before: before,
		after:  layout(c.elem),
	})
	c.model.emit(Event{Kind: EventChildAdded, Role: role, Source: c, Child: child})
	return nil
}

func (c *Component) checkAttach(child *Component) error {
	if child == nil {
		return fcerrors.New(fcerrors.ErrIllegalChild, "nil child", c.Path())
	}
	if child.model != c.model {
		return fcerrors.Newf(fcerrors.ErrForeignComponent, c.Path(), "%s belongs to another model", child.LocalName())
	}
	if child.elem.Parent() != nil {
		return fcerrors.Newf(fcerrors.ErrAlreadyAttached, child.Path(), "%s already has a parent", child.LocalName())
	}
	for e := c.elem; e != nil; e = e.Parent() {
		if e == child.elem {
			return fcerrors.Newf(fcerrors.ErrIllegalChild, c.Path(), "%s cannot contain itself", child.LocalName())
		}
	}
	n := child.LocalName()
	if k, ok := schema.ChildKind(c.Kind(), n); !ok || k != child.Kind() {
		return fcerrors.Newf(fcerrors.ErrIllegalChild, c.Path(), "%s is not a child of %s", n, c.LocalName())
	}
	if !c.model.names.Allows(n) {
		return fcerrors.Newf(fcerrors.ErrNotAllowedInVersion, c.Path(), "%s is not part of faces-config %s", n, c.model.version)
	}
	return nil
}

// RemoveChild detaches child. The detached component stays usable and can be
// attached again.
func (c *Component) RemoveChild(role string, child *Component) error {
	if child == nil {
		return fcerrors.New(fcerrors.ErrNotChild, "nil child", c.Path())
	}
	if child.model != c.model {
		return fcerrors.Newf(fcerrors.ErrForeignComponent, c.Path(), "%s belongs to another model", child.LocalName())
	}
	if child.elem.Parent() != c.elem {
		return fcerrors.Newf(fcerrors.ErrNotChild, c.Path(), "%s is not a child of %s", child.LocalName(), c.LocalName())
	}
	done := c.model.autoTransaction()
	defer done()

	index := c.indexOf(child)
	before := layout(c.elem)
	removeElement(c.elem, child.elem)
	c.model.reorder(c.elem, c.def)

	c.model.record(&structuralEdit{
		op:     OpRemove,
		parent: c,
		child:  child,
		index:  index,
		before: before,
		after:  layout(c.elem),
	})
	c.model.emit(Event{Kind: EventChildRemoved, Role: role, Source: c, Child: child})
	return nil
}

// indexOf returns the position of child among the children of its kind.
func (c *Component) indexOf(child *Component) int {
	for i, sibling := range c.ChildrenOf(child.Kind()) {
		if sibling.elem == child.elem {
			return i
		}
	}
	return -1
}

// leaves returns the text-only children named n.
func (c *Component) leaves(n qname.Name) []*etree.Element {
	var out []*etree.Element
	for _, e := range c.elem.ChildElements() {
		if name, ok := c.model.nameOf(e); ok && name == n && c.def.IsLeaf(n) {
			out = append(out, e)
		}
	}
	return out
}

// ChildText returns the text of the first leaf child named n.
func (c *Component) ChildText(n qname.Name) (string, bool) {
	leaves := c.leaves(n)
	if len(leaves) == 0 {
		return "", false
	}
	return leaves[0].Text(), true
}

// ChildTexts returns the text of every leaf child named n.
func (c *Component) ChildTexts(n qname.Name) []string {
	leaves := c.leaves(n)
	out := make([]string, 0, len(leaves))
	for _, e := range leaves {
		out = append(out, e.Text())
	}
	return out
}

// HasChildText reports whether a leaf child named n is present.
func (c *Component) HasChildText(n qname.Name) bool {
	return len(c.leaves(n)) > 0
}

// SetChildText sets the first leaf named n, creating it when absent.
func (c *Component) SetChildText(role string, n qname.Name, text string) error {
	return c.setChildText(role, n, &text)
}

// ClearChildText removes the first leaf named n.
func (c *Component) ClearChildText(role string, n qname.Name) error {
	return c.setChildText(role, n, nil)
}

func (c *Component) checkLeaf(n qname.Name) error {
	if !c.def.IsLeaf(n) {
		return fcerrors.Newf(fcerrors.ErrIllegalChild, c.Path(), "%s is not a text child of %s", n, c.LocalName())
	}
	if !c.model.names.Allows(n) {
		return fcerrors.Newf(fcerrors.ErrNotAllowedInVersion, c.Path(), "%s is not part of faces-config %s", n, c.model.version)
	}
	return nil
}

func (c *Component) setChildText(role string, n qname.Name, text *string) error {
	if err := c.checkLeaf(n); err != nil {
		return err
	}
	var leaf *etree.Element
	var old *string
	if leaves := c.leaves(n); len(leaves) > 0 {
		leaf = leaves[0]
		s := leaf.Text()
		old = &s
	}
	if text == nil && leaf == nil {
		return nil
	}
	if text != nil && old != nil && *text == *old {
		return nil
	}

	done := c.model.autoTransaction()
	defer done()
	if leaf == nil {
		leaf = c.model.newElement(n)
	}
	before := layout(c.elem)
	c.writeLeaf(leaf, text)
	c.model.record(&textEdit{
		owner:  c,
		name:   n,
		leaf:   leaf,
		old:    old,
		new:    text,
		before: before,
		after:  layout(c.elem),
	})
	c.model.emit(Event{Kind: EventTextChanged, Role: role, Source: c, Name: string(n), Old: deref(old), New: deref(text)})
	return nil
}

// writeLeaf sets the text of leaf, attaching it when detached, or detaches it
// when text is nil.
func (c *Component) writeLeaf(leaf *etree.Element, text *string) {
	if text == nil {
		if leaf.Parent() == c.elem {
			removeElement(c.elem, leaf)
		}
		return
	}
	leaf.SetText(*text)
	if leaf.Parent() == nil {
		insertElement(c.elem, leaf, nil)
		c.model.reorder(c.elem, c.def)
	}
}

// AppendChildText adds another leaf named n after the existing ones.
func (c *Component) AppendChildText(role string, n qname.Name, text string) error {
	if err := c.checkLeaf(n); err != nil {
		return err
	}
	done := c.model.autoTransaction()
	defer done()

	leaf := c.model.newElement(n)
	leaf.SetText(text)
	before := layout(c.elem)
	insertElement(c.elem, leaf, nil)
	c.model.reorder(c.elem, c.def)
	c.model.record(&leafEdit{owner: c, leaf: leaf, before: before, after: layout(c.elem)})
	c.model.emit(Event{Kind: EventTextChanged, Role: role, Source: c, Name: string(n), New: text})
	return nil
}

// Text returns the element character data.
func (c *Component) Text() string {
	return c.elem.Text()
}

// SetText replaces the element character data.
func (c *Component) SetText(role, text string) error {
	old := c.elem.Text()
	if old == text {
		return nil
	}
	done := c.model.autoTransaction()
	defer done()
	c.elem.SetText(text)
	c.model.record(&textEdit{owner: c, old: &old, new: &text})
	c.model.emit(Event{Kind: EventTextChanged, Role: role, Source: c, Old: old, New: text})
	return nil
}

// Attribute returns the raw value of the attribute key ("id", "xml:lang").
func (c *Component) Attribute(key string) (string, bool) {
	a := c.elem.SelectAttr(key)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

// BoolAttribute parses the attribute key as an xsd:boolean. ok is false when
// the attribute is absent or not a boolean literal.
func (c *Component) BoolAttribute(key string) (value, ok bool) {
	raw, present := c.Attribute(key)
	if !present {
		return false, false
	}
	switch strings.TrimSpace(raw) {
	case "true", "1":
		return true, true
	case "false", "0":
		return false, true
	}
	return false, false
}

// SetAttribute writes the attribute key. value is a string or bool matching
// the attribute type, or a pointer to one; nil removes the attribute.
func (c *Component) SetAttribute(key string, value any) error {
	attr, ok := c.def.Attribute(key)
	if !ok {
		return fcerrors.Newf(fcerrors.ErrUnknownAttribute, c.Path(), "%s does not accept attribute %s", c.LocalName(), key)
	}
	var next *string
	var typed bool
	switch v := value.(type) {
	case nil:
		typed = true
	case string:
		typed = attr.Type == schema.AttrString
		next = &v
	case *string:
		typed = attr.Type == schema.AttrString
		next = v
	case bool:
		typed = attr.Type == schema.AttrBool
		s := strconv.FormatBool(v)
		next = &s
	case *bool:
		typed = attr.Type == schema.AttrBool
		if v != nil {
			s := strconv.FormatBool(*v)
			next = &s
		}
	}
	if !typed {
		return fcerrors.Newf(fcerrors.ErrAttributeType, c.Path(), "attribute %s does not accept %T", key, value)
	}
	return c.setAttribute(key, next)
}

func (c *Component) setAttribute(key string, value *string) error {
	var old *string
	if s, ok := c.Attribute(key); ok {
		old = &s
	}
	if (old == nil && value == nil) || (old != nil && value != nil && *old == *value) {
		return nil
	}
	done := c.model.autoTransaction()
	defer done()
	c.writeAttribute(key, value)
	c.model.record(&attributeEdit{owner: c, key: key, old: old, new: value})
	c.model.emit(Event{Kind: EventAttributeChanged, Role: key, Source: c, Name: key, Old: deref(old), New: deref(value)})
	return nil
}

func (c *Component) writeAttribute(key string, value *string) {
	if value == nil {
		c.elem.RemoveAttr(key)
		return
	}
	c.elem.CreateAttr(key, *value)
}

// ID returns the id attribute.
func (c *Component) ID() string {
	s, _ := c.Attribute("id")
	return s
}

// SetID sets the id attribute; an empty id removes it.
func (c *Component) SetID(id string) error {
	if id == "" {
		return c.SetAttribute("id", nil)
	}
	return c.SetAttribute("id", id)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package facesconfig

import (
	"github.com/beevik/etree"

	fcerrors "github.com/jacoelho/facesconfig/errors"
	"github.com/jacoelho/facesconfig/pkg/qname"
	"github.com/jacoelho/facesconfig/pkg/schema"
)

// Factory builds typed components for elements of one model.
type Factory struct {
	model *Model
}

// Create returns the component for elem under parent. Without a parent only
// faces-config in the model namespace is accepted. ok is false for leaves,
// for (parent, child) pairs the schema does not declare and for elements
// outside the model namespace or version; callers treat those as opaque.
func (f *Factory) Create(elem *etree.Element, parent *Component) (*Component, bool) {
	if elem == nil {
		return nil, false
	}
	n, ok := f.model.nameOf(elem)
	if !ok {
		return nil, false
	}
	var k schema.Kind
	if parent == nil {
		if n != qname.FacesConfig {
			return nil, false
		}
		k = schema.Root
	} else {
		k, ok = schema.ChildKind(parent.Kind(), n)
		if !ok || !k.IsComponent() {
			return nil, false
		}
	}
	return &Component{model: f.model, elem: elem, def: schema.Lookup(k)}, true
}

// New returns a detached component of kind k, named after its primary element name.
func (f *Factory) New(k schema.Kind) (*Component, error) {
	d := schema.Lookup(k)
	if d == nil {
		return nil, fcerrors.Newf(fcerrors.ErrIllegalChild, "", "%s is not a component kind", k)
	}
	return f.NewNamed(d.Name())
}

// NewNamed returns a detached component for element name n.
func (f *Factory) NewNamed(n qname.Name) (*Component, error) {
	k, ok := schema.KindOfName(n)
	if !ok {
		return nil, fcerrors.Newf(fcerrors.ErrIllegalChild, "", "%s is not a component element", n)
	}
	if !f.model.names.Allows(n) {
		return nil, fcerrors.Newf(fcerrors.ErrNotAllowedInVersion, "", "%s is not part of faces-config %s", n, f.model.version)
	}
	return &Component{model: f.model, elem: f.model.newElement(n), def: schema.Lookup(k)}, nil
}

// wrap returns the component for e, resolving its ancestors up to the root or
// to the top of a detached subtree.
func (m *Model) wrap(e *etree.Element) *Component {
	if e == nil || m.doc == nil || e == &m.doc.Element {
		return nil
	}
	if e == m.root.elem {
		return m.root
	}
	if e.Parent() == nil {
		n, ok := m.nameOf(e)
		if !ok {
			return nil
		}
		k, ok := schema.KindOfName(n)
		if !ok {
			return nil
		}
		return &Component{model: m, elem: e, def: schema.Lookup(k)}
	}
	parent := m.wrap(e.Parent())
	if parent == nil {
		return nil
	}
	c, _ := m.factory.Create(e, parent)
	return c
}

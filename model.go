package facesconfig

import (
	"io"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	fcerrors "github.com/jacoelho/facesconfig/errors"
	"github.com/jacoelho/facesconfig/internal/stack"
	"github.com/jacoelho/facesconfig/pkg/qname"
	"github.com/jacoelho/facesconfig/pkg/schema"
	"github.com/jacoelho/facesconfig/pkg/version"
)

// Version returns the detected schema version.
func (m *Model) Version() version.Version {
	return m.version
}

// QNames returns the name registry of the document version.
func (m *Model) QNames() *qname.Registry {
	return m.names
}

// Factory returns the component factory bound to the model.
func (m *Model) Factory() *Factory {
	return m.factory
}

// Sync returns the update visitor bound to the model.
func (m *Model) Sync() *Sync {
	return m.sync
}

// Root returns the root component.
func (m *Model) Root() *Component {
	return m.root
}

// Document returns the underlying document.
func (m *Model) Document() *etree.Document {
	return m.doc
}

// CreateRootComponent returns the root component for elem, which must be a
// faces-config element in the namespace of the detected version.
func (m *Model) CreateRootComponent(elem *etree.Element) (*Component, error) {
	if elem == nil {
		return nil, fcerrors.New(fcerrors.ErrNoRoot, "document has no root element", "")
	}
	if elem.Tag != string(qname.FacesConfig) || elem.NamespaceURI() != m.namespace {
		return nil, fcerrors.Newf(fcerrors.ErrUnexpectedRoot, elem.GetPath(),
			"unexpected root element %s", qname.QName{Space: elem.NamespaceURI(), Local: elem.Tag})
	}
	root, ok := m.factory.Create(elem, nil)
	if !ok {
		return nil, fcerrors.Newf(fcerrors.ErrUnexpectedRoot, elem.GetPath(), "unexpected root element %s", elem.Tag)
	}
	return root, nil
}

// WriteTo serializes the document.
func (m *Model) WriteTo(w io.Writer) (int64, error) {
	return m.doc.WriteTo(w)
}

// Bytes serializes the document.
func (m *Model) Bytes() ([]byte, error) {
	return m.doc.WriteToBytes()
}

// Reload replaces the document with the one read from r. The version is
// detected again and the root component replaced wholesale; history is
// cleared. The model is unchanged on error.
func (m *Model) Reload(r io.Reader) error {
	if m.tx != nil {
		return fcerrors.New(fcerrors.ErrTransaction, "cannot reload inside a transaction", "")
	}
	doc, err := m.readDocument(r)
	if err != nil {
		return err
	}
	if err := m.attach(doc); err != nil {
		return err
	}
	m.clearHistory()
	m.emit(Event{Kind: EventRootReplaced, Source: m.root})
	return nil
}

// Normalize sorts the children of every component into canonical order and
// returns the number of elements reordered. It is not recorded in history.
func (m *Model) Normalize() int {
	n := m.normalize(m.root)
	m.log.Debug("normalized", zap.Int("reordered", n))
	return n
}

// ForeignElement is content the document version does not define under its parent.
type ForeignElement struct {
	Path string
	Name qname.QName
}

// Foreign lists elements that are neither components nor leaves of their
// parent in the document version. Extension elements are not descended into.
func (m *Model) Foreign() []ForeignElement {
	var out []ForeignElement
	pending := stack.New[*Component](16)
	pending.Push(m.root)
	for pending.Len() > 0 {
		c, _ := pending.Pop()
		if c.Kind() == schema.KindExtension {
			continue
		}
		var children []*Component
		for _, e := range c.elem.ChildElements() {
			if child, ok := m.factory.Create(e, c); ok {
				children = append(children, child)
				continue
			}
			if n, ok := m.nameOf(e); ok && c.def.IsLeaf(n) {
				continue
			}
			out = append(out, ForeignElement{
				Path: e.GetPath(),
				Name: qname.QName{Space: m.namespaceOf(e), Local: e.Tag},
			})
		}
		pending.PushReversed(children)
	}
	return out
}

// Check reports every foreign element as an issue; nil when there is none.
func (m *Model) Check() error {
	var issues fcerrors.IssueList
	for _, f := range m.Foreign() {
		issues = append(issues, *fcerrors.Newf(fcerrors.ErrForeignElement, f.Path, "%s is not defined by faces-config %s", f.Name, m.version))
	}
	if len(issues) == 0 {
		return nil
	}
	return issues
}

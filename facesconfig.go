// Package facesconfig is a typed, order-preserving object model over the JSF
// faces-config descriptor.
//
// A Model owns the XML document. Components are typed views over its
// elements, created on demand; the document stays the single source of truth,
// so two calls returning the same child yield distinct Component values bound
// to the same element. Every structural edit re-sorts the edited element's
// children into the canonical order of the detected schema version, keeping
// unknown extension content next to its neighbour.
//
// The model is not safe for concurrent use. Edits are expected inside
// StartTransaction/EndTransaction brackets; edits outside one are committed
// individually.
package facesconfig

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	fcerrors "github.com/jacoelho/facesconfig/errors"
	"github.com/jacoelho/facesconfig/internal/sniff"
	"github.com/jacoelho/facesconfig/pkg/qname"
	"github.com/jacoelho/facesconfig/pkg/version"
)

// Model is a faces-config document with its typed component view.
type Model struct {
	doc       *etree.Document
	version   version.Version
	names     *qname.Registry
	namespace string
	root      *Component

	factory *Factory
	sync    *Sync
	log     *zap.Logger
	opts    resolvedOptions

	tx        *transaction
	undo      [][]edit
	redo      [][]edit
	replaying bool

	listeners    []listener
	nextListener int
}

// Parse reads a faces-config document.
func Parse(r io.Reader) (*Model, error) {
	return ParseWithOptions(r, NewLoadOptions())
}

// ParseWithOptions reads a faces-config document with explicit configuration.
func ParseWithOptions(r io.Reader, opts LoadOptions) (*Model, error) {
	resolved, err := opts.withDefaults()
	if err != nil {
		return nil, fmt.Errorf("parse faces-config: %w", err)
	}
	m := newModel(resolved)
	doc, err := m.readDocument(r)
	if err != nil {
		return nil, fmt.Errorf("parse faces-config: %w", err)
	}
	if err := m.attach(doc); err != nil {
		return nil, fmt.Errorf("parse faces-config: %w", err)
	}
	return m, nil
}

// Load reads location from fsys.
func Load(fsys fs.FS, location string) (*Model, error) {
	return LoadWithOptions(fsys, location, NewLoadOptions())
}

// LoadWithOptions reads location from fsys with explicit configuration.
func LoadWithOptions(fsys fs.FS, location string, opts LoadOptions) (m *Model, err error) {
	if fsys == nil {
		return nil, fmt.Errorf("load faces-config %s: nil fs", location)
	}
	f, err := fsys.Open(location)
	if err != nil {
		return nil, fmt.Errorf("load faces-config %s: %w", location, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close faces-config %s: %w", location, closeErr)
		}
	}()

	m, err = ParseWithOptions(f, opts)
	if err != nil {
		return nil, fmt.Errorf("load faces-config %s: %w", location, err)
	}
	return m, nil
}

// LoadFile reads a faces-config file from a path.
func LoadFile(path string) (*Model, error) {
	return LoadFileWithOptions(path, NewLoadOptions())
}

// LoadFileWithOptions reads a faces-config file from a path with explicit configuration.
func LoadFileWithOptions(path string, opts LoadOptions) (*Model, error) {
	return LoadWithOptions(os.DirFS(filepath.Dir(path)), filepath.Base(path), opts)
}

// New creates an empty faces-config document of version v.
func New(v version.Version) (*Model, error) {
	return NewWithOptions(v, NewLoadOptions())
}

// NewWithOptions creates an empty document with explicit configuration.
func NewWithOptions(v version.Version, opts LoadOptions) (*Model, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("new faces-config: invalid version %v", v)
	}
	resolved, err := opts.withDefaults()
	if err != nil {
		return nil, fmt.Errorf("new faces-config: %w", err)
	}
	m := newModel(resolved)
	if err := m.attach(emptyDocument(v)); err != nil {
		return nil, fmt.Errorf("new faces-config: %w", err)
	}
	return m, nil
}

// DetectVersion reads only as far as the root element of r and returns its
// schema version.
func DetectVersion(r io.Reader) (version.Version, error) {
	root, err := sniff.Read(r)
	if err != nil {
		return 0, fmt.Errorf("detect version: %w", err)
	}
	if root.Local != string(qname.FacesConfig) {
		return 0, fmt.Errorf("detect version: %w",
			fcerrors.Newf(fcerrors.ErrUnexpectedRoot, "", "unexpected root element %s", root.Local))
	}
	return version.Detect(root.Signals), nil
}

func newModel(opts resolvedOptions) *Model {
	m := &Model{log: opts.logger, opts: opts}
	m.factory = &Factory{model: m}
	m.sync = newSync(m)
	return m
}

func (m *Model) readDocument(r io.Reader) (*etree.Document, error) {
	if r == nil {
		return nil, fcerrors.New(fcerrors.ErrXMLParse, "nil reader", "")
	}
	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = m.opts.permissive
	doc.ReadSettings.PreserveCData = true
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fcerrors.New(fcerrors.ErrXMLParse, err.Error(), "")
	}
	return doc, nil
}

// attach binds doc to the model. The model is left untouched on error.
func (m *Model) attach(doc *etree.Document) error {
	rootElem := doc.Root()
	if rootElem == nil {
		return fcerrors.New(fcerrors.ErrNoRoot, "document has no root element", "")
	}
	v := version.Detect(signalsOf(doc, rootElem))

	prev := *m
	m.doc = doc
	m.version = v
	m.names = qname.For(v)
	m.namespace = v.Namespace()
	root, err := m.CreateRootComponent(rootElem)
	if err != nil {
		m.doc, m.version, m.names, m.namespace = prev.doc, prev.version, prev.names, prev.namespace
		return err
	}
	m.root = root
	m.log.Debug("faces-config attached",
		zap.Stringer("version", v),
		zap.String("namespace", m.namespace))
	return nil
}

func signalsOf(doc *etree.Document, root *etree.Element) version.Signals {
	s := version.Signals{
		Namespace:   root.NamespaceURI(),
		VersionAttr: root.SelectAttrValue("version", ""),
	}
	for i := range root.Attr {
		a := &root.Attr[i]
		if a.Key == "schemaLocation" && a.NamespaceURI() == version.XSINamespace {
			s.SchemaLocation = a.Value
		}
	}
	for _, tok := range doc.Child {
		if d, ok := tok.(*etree.Directive); ok && strings.HasPrefix(strings.TrimSpace(d.Data), "DOCTYPE") {
			s.Doctype = d.Data
		}
	}
	return s
}

func emptyDocument(v version.Version) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateText("\n")
	if v.UsesDTD() {
		doc.CreateDirective(v.Doctype())
		doc.CreateText("\n")
	}
	root := doc.CreateElement(string(qname.FacesConfig))
	if !v.UsesDTD() {
		root.CreateAttr("xmlns", v.Namespace())
		root.CreateAttr("xmlns:xsi", version.XSINamespace)
		root.CreateAttr("xsi:schemaLocation", v.SchemaLocation())
		root.CreateAttr("version", v.String())
	}
	root.CreateText("\n")
	doc.CreateText("\n")
	return doc
}

package schema

import (
	"fmt"

	"github.com/jacoelho/facesconfig/pkg/qname"
)

// Root is the kind of the document element.
const Root = KindFacesConfig

// Def describes one component kind.
type Def struct {
	kind  Kind
	names []qname.Name
	group bool
	attrs []Attribute
	// order is the canonical child order, description group first.
	order []qname.Name
	// index maps a name in order to its position.
	index map[qname.Name]int
	// override maps names sharing a slot of order to that slot.
	override map[qname.Name]int
	// shared lists the override names of each slot in declaration order.
	shared map[int][]qname.Name
	// children maps every legal child name, except the description group, to its kind.
	children map[qname.Name]Kind
}

// Pair is a declared (parent, child) adjacency between component kinds.
type Pair struct {
	Parent Kind
	Child  Kind
	// Name is the child element name.
	Name qname.Name
}

type pairKey struct {
	parent Kind
	child  qname.Name
}

var (
	defs       [kindCount]*Def
	pairs      map[pairKey]Kind
	nameKinds  map[qname.Name]Kind
	groupKinds = map[qname.Name]Kind{
		qname.Description: KindDescription,
		qname.DisplayName: KindDisplayName,
		qname.Icon:        KindIcon,
	}
)

func init() {
	pairs = make(map[pairKey]Kind)
	nameKinds = make(map[qname.Name]Kind)
	for _, s := range decls {
		d := build(s)
		if defs[s.kind] != nil {
			panic(fmt.Sprintf("schema: duplicate definition for %s", s.kind))
		}
		defs[s.kind] = d
		for _, n := range s.names {
			nameKinds[n] = s.kind
		}
		for n, k := range d.children {
			pairs[pairKey{parent: s.kind, child: n}] = k
		}
	}
	for k := KindFacesConfig; k < kindCount; k++ {
		if defs[k] == nil {
			panic(fmt.Sprintf("schema: missing definition for %s", k))
		}
	}
}

func build(s decl) *Def {
	d := &Def{
		kind:     s.kind,
		names:    s.names,
		group:    s.group,
		attrs:    append([]Attribute{attrID}, s.attrs...),
		index:    make(map[qname.Name]int),
		override: make(map[qname.Name]int),
		shared:   make(map[int][]qname.Name),
		children: make(map[qname.Name]Kind),
	}
	slots := s.slots
	if s.group {
		slots = append(append([]slot(nil), groupSlots...), slots...)
	}
	for _, sl := range slots {
		if sl.shared && len(d.order) > 0 {
			slotIdx := len(d.order) - 1
			d.override[sl.name] = slotIdx
			d.shared[slotIdx] = append(d.shared[slotIdx], sl.name)
		} else {
			d.index[sl.name] = len(d.order)
			d.order = append(d.order, sl.name)
		}
		if _, isGroup := groupKinds[sl.name]; s.group && isGroup {
			continue
		}
		d.children[sl.name] = sl.kind
	}
	return d
}

// Lookup returns the definition of a component kind, nil otherwise.
func Lookup(k Kind) *Def {
	if !k.IsComponent() {
		return nil
	}
	return defs[k]
}

// ChildKind resolves the kind of a child element named n under a parent of kind
// parent. The table is keyed by both: a name may be legal under one parent and
// unknown under another. Leaves resolve to KindText. The description group is
// answered by one shared fallback for every kind that carries it.
func ChildKind(parent Kind, n qname.Name) (Kind, bool) {
	if k, ok := pairs[pairKey{parent: parent, child: n}]; ok {
		return k, true
	}
	if d := Lookup(parent); d != nil && d.group {
		if k, ok := groupKinds[n]; ok {
			return k, true
		}
	}
	return KindUnknown, false
}

// KindOfName returns the component kind carried by element name n.
func KindOfName(n qname.Name) (Kind, bool) {
	k, ok := nameKinds[n]
	return k, ok
}

// Pairs returns every declared component adjacency, description group included.
func Pairs() []Pair {
	var out []Pair
	for _, d := range defs {
		if d == nil {
			continue
		}
		for _, n := range d.ChildNames() {
			k, _ := ChildKind(d.kind, n)
			if k.IsComponent() {
				out = append(out, Pair{Parent: d.kind, Child: k, Name: n})
			}
		}
	}
	return out
}

// Kind returns the kind described.
func (d *Def) Kind() Kind {
	return d.kind
}

// Name returns the primary element name, used for new elements.
func (d *Def) Name() qname.Name {
	return d.names[0]
}

// Names returns every element name carrying the kind.
func (d *Def) Names() []qname.Name {
	return append([]qname.Name(nil), d.names...)
}

// HasName reports whether n carries the kind.
func (d *Def) HasName(n qname.Name) bool {
	for _, name := range d.names {
		if name == n {
			return true
		}
	}
	return false
}

// Group reports whether the kind starts with description, display-name and icon.
func (d *Def) Group() bool {
	return d.group
}

// Order returns the canonical child order.
func (d *Def) Order() []qname.Name {
	return append([]qname.Name(nil), d.order...)
}

// ChildNames returns every legal child name in canonical order, names sharing
// a slot directly after the slot owner.
func (d *Def) ChildNames() []qname.Name {
	out := make([]qname.Name, 0, len(d.order)+len(d.override))
	for i, n := range d.order {
		out = append(out, n)
		out = append(out, d.shared[i]...)
	}
	return out
}

// OrderKey returns the sort key of a child named n: the override slot if the
// name shares one, else its index in the canonical order.
func (d *Def) OrderKey(n qname.Name) (int, bool) {
	if k, ok := d.override[n]; ok {
		return k, true
	}
	k, ok := d.index[n]
	return k, ok
}

// Accepts reports whether n is a legal child name.
func (d *Def) Accepts(n qname.Name) bool {
	_, ok := ChildKind(d.kind, n)
	return ok
}

// IsLeaf reports whether n is a legal text-only child.
func (d *Def) IsLeaf(n qname.Name) bool {
	k, ok := d.children[n]
	return ok && k == KindText
}

// Attributes returns the accepted attributes.
func (d *Def) Attributes() []Attribute {
	return append([]Attribute(nil), d.attrs...)
}

// Attribute looks an attribute up by key ("id", "xml:lang").
func (d *Def) Attribute(key string) (Attribute, bool) {
	for _, a := range d.attrs {
		if a.Key() == key {
			return a, true
		}
	}
	return Attribute{}, false
}

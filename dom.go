package facesconfig

import (
	"math"
	"slices"
	"strings"

	"github.com/beevik/etree"

	"github.com/jacoelho/facesconfig/internal/stack"
	"github.com/jacoelho/facesconfig/pkg/qname"
	"github.com/jacoelho/facesconfig/pkg/schema"
)

// orderEnd sorts unknown content that precedes every recognized sibling,
// and trailing whitespace, after everything else.
const orderEnd = math.MaxInt

// namespaceOf resolves the namespace of e. Elements built by the model but
// not yet attached carry the root prefix without its declaration; they
// resolve to the model namespace.
func (m *Model) namespaceOf(e *etree.Element) string {
	ns := e.NamespaceURI()
	if ns != "" || m.namespace == "" {
		return ns
	}
	if m.attached(e) {
		return ns
	}
	if e.Space == m.prefix() {
		return m.namespace
	}
	return ns
}

// attached reports whether e is reachable from the model document.
func (m *Model) attached(e *etree.Element) bool {
	top := e
	for top.Parent() != nil {
		top = top.Parent()
	}
	return top == &m.doc.Element
}

// prefix returns the prefix the root element is written with.
func (m *Model) prefix() string {
	if m.root == nil {
		return ""
	}
	return m.root.elem.Space
}

// nameOf returns the faces-config name of e when e belongs to the model
// namespace and version.
func (m *Model) nameOf(e *etree.Element) (qname.Name, bool) {
	if m.namespaceOf(e) != m.namespace {
		return "", false
	}
	n := qname.Name(e.Tag)
	if !m.names.Allows(n) {
		return "", false
	}
	return n, true
}

func (m *Model) newElement(n qname.Name) *etree.Element {
	e := etree.NewElement(string(n))
	e.Space = m.prefix()
	return e
}

// orderKey returns the sort key of child e under a parent described by def.
func (m *Model) orderKey(def *schema.Def, e *etree.Element) (int, bool) {
	n, ok := m.nameOf(e)
	if !ok {
		return 0, false
	}
	return def.OrderKey(n)
}

type orderedToken struct {
	tok etree.Token
	key int
}

// reorder sorts the children of parent into the canonical order of def.
//
// Recognized elements sort by their key. An unrecognized element takes the
// key of the closest recognized element before it so it moves with it, or
// sorts last when none precedes it. Whitespace, comments and processing
// instructions travel with the element that follows them; trailing ones stay
// last. The sort is stable and parent is only rebuilt when the order changes.
func (m *Model) reorder(parent *etree.Element, def *schema.Def) bool {
	if def == nil || len(parent.Child) < 2 {
		return false
	}
	entries := make([]orderedToken, len(parent.Child))
	last, seen, pending := orderEnd, false, 0
	for i, tok := range parent.Child {
		e, ok := tok.(*etree.Element)
		if !ok {
			continue
		}
		key, known := m.orderKey(def, e)
		switch {
		case known:
			last, seen = key, true
		case seen:
			key = last
		default:
			key = orderEnd
		}
		for j := pending; j <= i; j++ {
			entries[j] = orderedToken{tok: parent.Child[j], key: key}
		}
		pending = i + 1
	}
	for j := pending; j < len(entries); j++ {
		entries[j] = orderedToken{tok: parent.Child[j], key: orderEnd}
	}

	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b orderedToken) int {
		switch {
		case a.key < b.key:
			return -1
		case a.key > b.key:
			return 1
		}
		return 0
	})
	changed := false
	for i := range sorted {
		if sorted[i].tok != entries[i].tok {
			changed = true
			break
		}
	}
	if !changed {
		return false
	}
	tokens := make([]etree.Token, len(sorted))
	for i, entry := range sorted {
		tokens[i] = entry.tok
	}
	restoreLayout(parent, tokens)
	return true
}

// restoreLayout replaces the child tokens of parent with tokens.
func restoreLayout(parent *etree.Element, tokens []etree.Token) {
	for i := len(parent.Child) - 1; i >= 0; i-- {
		parent.RemoveChildAt(i)
	}
	for _, tok := range tokens {
		parent.AddChild(tok)
	}
}

// normalize reorders every component element below root.
func (m *Model) normalize(root *Component) int {
	changed := 0
	pending := stack.New[*Component](16)
	pending.Push(root)
	for pending.Len() > 0 {
		c, _ := pending.Pop()
		if m.reorder(c.elem, c.def) {
			changed++
		}
		pending.PushReversed(c.Children())
	}
	return changed
}

// insertElement places child before next, or after the last element child of
// parent when next is nil, reusing the indentation of the neighbouring sibling.
func insertElement(parent, child, next *etree.Element) {
	if next != nil {
		idx := next.Index()
		indent := indentBefore(parent, idx)
		parent.InsertChildAt(idx, child)
		if indent != "" {
			parent.InsertChildAt(idx+1, etree.NewText(indent))
		}
		return
	}
	last := -1
	for i, tok := range parent.Child {
		if _, ok := tok.(*etree.Element); ok {
			last = i
		}
	}
	if last < 0 {
		insertFirstElement(parent, child)
		return
	}
	pos := last + 1
	if indent := indentBefore(parent, last); indent != "" {
		parent.InsertChildAt(pos, etree.NewText(indent))
		pos++
	}
	parent.InsertChildAt(pos, child)
}

// insertFirstElement places the first element child of parent before its
// closing indentation, indented one level deeper.
func insertFirstElement(parent, child *etree.Element) {
	n := len(parent.Child)
	closing := indentBefore(parent, n)
	if !strings.Contains(closing, "\n") {
		parent.AddChild(child)
		return
	}
	parent.InsertChildAt(n-1, child)
	parent.InsertChildAt(n-1, etree.NewText(closing+"  "))
}

// removeElement detaches child from parent along with the indentation
// directly preceding it.
func removeElement(parent, child *etree.Element) {
	idx := child.Index()
	parent.RemoveChildAt(idx)
	if indentBefore(parent, idx) != "" {
		parent.RemoveChildAt(idx - 1)
	}
}

func indentBefore(parent *etree.Element, idx int) string {
	if idx <= 0 || idx > len(parent.Child) {
		return ""
	}
	cd, ok := parent.Child[idx-1].(*etree.CharData)
	if !ok || cd.IsCData() || !isBlank(cd.Data) {
		return ""
	}
	return cd.Data
}

// isBlank reports whether s is non-empty and all whitespace. etree only flags
// whitespace on parsed text, so text created by the model is checked here.
func isBlank(s string) bool {
	return s != "" && strings.TrimSpace(s) == ""
}

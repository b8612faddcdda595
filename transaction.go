package facesconfig

import (
	"errors"
	"fmt"
	"slices"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	fcerrors "github.com/jacoelho/facesconfig/errors"
	"github.com/jacoelho/facesconfig/pkg/qname"
)

// EventKind classifies a model change notification.
type EventKind uint8

const (
	EventChildAdded EventKind = iota + 1
	EventChildRemoved
	EventTextChanged
	EventAttributeChanged
	EventRootReplaced
)

var eventNames = [...]string{
	EventChildAdded:       "child-added",
	EventChildRemoved:     "child-removed",
	EventTextChanged:      "text-changed",
	EventAttributeChanged: "attribute-changed",
	EventRootReplaced:     "root-replaced",
}

// String returns the event kind name.
func (k EventKind) String() string {
	if int(k) < len(eventNames) && eventNames[k] != "" {
		return eventNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event describes one change. Source is the parent for structural changes
// and the edited component otherwise. Name is the leaf or attribute name,
// empty for the element text.
type Event struct {
	Kind   EventKind
	Role   string
	Source *Component
	Child  *Component
	Name   string
	Old    string
	New    string
}

type listener struct {
	id int
	fn func(Event)
}

// Subscribe registers fn for every change and returns a function removing it.
func (m *Model) Subscribe(fn func(Event)) (cancel func()) {
	m.nextListener++
	id := m.nextListener
	m.listeners = append(m.listeners, listener{id: id, fn: fn})
	return func() {
		for i, l := range m.listeners {
			if l.id == id {
				m.listeners = append(m.listeners[:i:i], m.listeners[i+1:]...)
				return
			}
		}
	}
}

func (m *Model) emit(ev Event) {
	for _, l := range m.listeners {
		l.fn(ev)
	}
}

// edit is one undoable change.
type edit interface {
	undo(m *Model) error
	redo(m *Model) error
}

type transaction struct {
	edits []edit
}

// StartTransaction opens an edit bracket. Brackets do not nest.
func (m *Model) StartTransaction() error {
	if m.tx != nil {
		return fcerrors.New(fcerrors.ErrTransaction, "transaction already in progress", "")
	}
	m.tx = &transaction{}
	return nil
}

// EndTransaction closes the bracket, committing its edits as one undo step.
func (m *Model) EndTransaction() error {
	if m.tx == nil {
		return fcerrors.New(fcerrors.ErrTransaction, "no transaction in progress", "")
	}
	m.commit()
	return nil
}

// InTransaction reports whether an edit bracket is open.
func (m *Model) InTransaction() bool {
	return m.tx != nil
}

// autoTransaction opens an implicit bracket for an edit made outside one.
// The returned function closes it.
func (m *Model) autoTransaction() func() {
	if m.tx != nil {
		return func() {}
	}
	m.tx = &transaction{}
	return m.commit
}

func (m *Model) commit() {
	tx := m.tx
	m.tx = nil
	if len(tx.edits) == 0 || m.opts.undoLimit == 0 {
		return
	}
	m.undo = append(m.undo, tx.edits)
	if over := len(m.undo) - m.opts.undoLimit; over > 0 {
		m.undo = append(m.undo[:0:0], m.undo[over:]...)
	}
	m.redo = nil
	m.log.Debug("transaction committed", zap.Int("edits", len(tx.edits)), zap.Int("undo", len(m.undo)))
}

// mark returns the number of edits recorded in the open transaction.
func (m *Model) mark() int {
	if m.tx == nil {
		return 0
	}
	return len(m.tx.edits)
}

// discard drops the edits recorded in the open transaction after mark.
func (m *Model) discard(mark int) {
	if m.tx != nil && len(m.tx.edits) > mark {
		m.tx.edits = m.tx.edits[:mark]
	}
}

func (m *Model) record(e edit) {
	if m.replaying || m.tx == nil {
		return
	}
	m.tx.edits = append(m.tx.edits, e)
}

// CanUndo reports whether a committed transaction can be reverted.
func (m *Model) CanUndo() bool {
	return len(m.undo) > 0
}

// CanRedo reports whether a reverted transaction can be applied again.
func (m *Model) CanRedo() bool {
	return len(m.redo) > 0
}

// Undo reverts the last committed transaction. When an edit cannot be
// reverted, the edits already reverted are applied again and the transaction
// stays on the undo stack.
func (m *Model) Undo() error {
	if m.tx != nil {
		return fcerrors.New(fcerrors.ErrTransaction, "cannot undo inside a transaction", "")
	}
	if len(m.undo) == 0 {
		return fcerrors.New(fcerrors.ErrHistory, "nothing to undo", "")
	}
	step := m.undo[len(m.undo)-1]
	if err := m.replay(func() error {
		for i := len(step) - 1; i >= 0; i-- {
			if err := step[i].undo(m); err != nil {
				return errors.Join(err, rollForward(m, step[i+1:]))
			}
		}
		return nil
	}); err != nil {
		return err
	}
	m.undo = m.undo[:len(m.undo)-1]
	m.redo = append(m.redo, step)
	return nil
}

// Redo applies the last reverted transaction again. When an edit cannot be
// applied, the edits already applied are reverted and the transaction stays
// on the redo stack.
func (m *Model) Redo() error {
	if m.tx != nil {
		return fcerrors.New(fcerrors.ErrTransaction, "cannot redo inside a transaction", "")
	}
	if len(m.redo) == 0 {
		return fcerrors.New(fcerrors.ErrHistory, "nothing to redo", "")
	}
	step := m.redo[len(m.redo)-1]
	if err := m.replay(func() error {
		for i, e := range step {
			if err := e.redo(m); err != nil {
				return errors.Join(err, rollBack(m, step[:i]))
			}
		}
		return nil
	}); err != nil {
		return err
	}
	m.redo = m.redo[:len(m.redo)-1]
	m.undo = append(m.undo, step)
	return nil
}

// rollForward applies edits again in order.
func rollForward(m *Model, edits []edit) error {
	var errs []error
	for _, e := range edits {
		if err := e.redo(m); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// rollBack reverts edits in reverse order.
func rollBack(m *Model, edits []edit) error {
	var errs []error
	for i := len(edits) - 1; i >= 0; i-- {
		if err := edits[i].undo(m); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *Model) replay(fn func() error) error {
	m.replaying = true
	defer func() { m.replaying = false }()
	if err := fn(); err != nil {
		m.log.Warn("history replay failed", zap.Error(err))
		return fcerrors.Newf(fcerrors.ErrHistory, "", "replay failed: %v", err)
	}
	return nil
}

func (m *Model) clearHistory() {
	m.undo = nil
	m.redo = nil
}

// structuralEdit replays through Sync, the same path external updates take,
// then restores the exact token layout the parent had so foreign content and
// whitespace keep their positions.
type structuralEdit struct {
	op     Op
	parent *Component
	child  *Component
	index  int
	before []etree.Token
	after  []etree.Token
}

func (e *structuralEdit) undo(m *Model) error {
	inverse := Update{Op: OpRemove, Parent: e.parent, Child: e.child}
	if e.op == OpRemove {
		inverse = Update{Op: OpAdd, Parent: e.parent, Child: e.child, Index: e.index}
	}
	if err := m.sync.apply(inverse); err != nil {
		return err
	}
	restoreLayout(e.parent.elem, e.before)
	return nil
}

func (e *structuralEdit) redo(m *Model) error {
	if err := m.sync.apply(Update{Op: e.op, Parent: e.parent, Child: e.child, Index: e.index}); err != nil {
		return err
	}
	restoreLayout(e.parent.elem, e.after)
	return nil
}

// layout returns a copy of the child tokens of e.
func layout(e *etree.Element) []etree.Token {
	return slices.Clone(e.Child)
}

// textEdit changes the leaf named name, or the element text when name is
// empty. The leaf element is reused on replay so layouts recorded by later
// edits keep referring to the tokens in the document.
type textEdit struct {
	owner  *Component
	name   qname.Name
	leaf   *etree.Element
	old    *string
	new    *string
	before []etree.Token
	after  []etree.Token
}

func (e *textEdit) undo(m *Model) error {
	return e.write(m, e.new, e.old, e.before)
}

func (e *textEdit) redo(m *Model) error {
	return e.write(m, e.old, e.new, e.after)
}

func (e *textEdit) write(m *Model, from, to *string, tokens []etree.Token) error {
	if e.name == "" {
		return e.owner.SetText("", deref(to))
	}
	var want *etree.Element
	if from != nil {
		want = e.owner.elem
	}
	if e.leaf.Parent() != want {
		return fcerrors.Newf(fcerrors.ErrNotChild, e.owner.Path(), "%s was moved outside the model", e.name)
	}
	e.owner.writeLeaf(e.leaf, to)
	restoreLayout(e.owner.elem, tokens)
	m.emit(Event{Kind: EventTextChanged, Role: string(e.name), Source: e.owner, Name: string(e.name), Old: deref(from), New: deref(to)})
	return nil
}

// leafEdit is an appended repeatable leaf.
type leafEdit struct {
	owner  *Component
	leaf   *etree.Element
	before []etree.Token
	after  []etree.Token
}

func (e *leafEdit) undo(m *Model) error {
	if e.leaf.Parent() != e.owner.elem {
		return fcerrors.Newf(fcerrors.ErrNotChild, e.owner.Path(), "%s is no longer attached", e.leaf.Tag)
	}
	restoreLayout(e.owner.elem, e.before)
	m.emit(Event{Kind: EventTextChanged, Role: e.leaf.Tag, Source: e.owner, Name: e.leaf.Tag, Old: e.leaf.Text()})
	return nil
}

func (e *leafEdit) redo(m *Model) error {
	if e.leaf.Parent() != nil {
		return fcerrors.Newf(fcerrors.ErrAlreadyAttached, e.owner.Path(), "%s already has a parent", e.leaf.Tag)
	}
	restoreLayout(e.owner.elem, e.after)
	m.emit(Event{Kind: EventTextChanged, Role: e.leaf.Tag, Source: e.owner, Name: e.leaf.Tag, New: e.leaf.Text()})
	return nil
}

type attributeEdit struct {
	owner *Component
	key   string
	old   *string
	new   *string
}

func (e *attributeEdit) undo(m *Model) error {
	return e.owner.setAttribute(e.key, e.old)
}

func (e *attributeEdit) redo(m *Model) error {
	return e.owner.setAttribute(e.key, e.new)
}

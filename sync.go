package facesconfig

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jacoelho/facesconfig/pkg/schema"
)

// Op is the kind of a structural update.
type Op uint8

const (
	OpAdd Op = iota + 1
	OpRemove
)

// String returns "add" or "remove".
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpRemove:
		return "remove"
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// Update is a structural change to replay onto the model.
//
// Index is zero based, so the zero value inserts an added child before its
// existing siblings of the same kind. Set Index to -1 to append.
type Update struct {
	Op     Op
	Parent *Component
	Child  *Component
	// Index positions an added child among the siblings of its kind:
	// 0 inserts first, -1 appends, past the end appends. Ignored on remove.
	Index int
}

type kindPair struct {
	parent schema.Kind
	child  schema.Kind
}

// Sync replays structural updates onto the model. Each declared
// (parent kind, child kind) pair routes to the regular append or remove;
// any other pair is ignored.
type Sync struct {
	model    *Model
	handlers map[kindPair]func(Update) error
}

var errUndeclaredPair = errors.New("undeclared parent/child pair")

func newSync(m *Model) *Sync {
	s := &Sync{model: m, handlers: make(map[kindPair]func(Update) error)}
	for _, p := range schema.Pairs() {
		s.handlers[kindPair{parent: p.Parent, child: p.Child}] = s.replay
	}
	return s
}

// Apply replays u and reports whether it changed the model. Updates for
// undeclared pairs, and updates the model rejects, are dropped.
//
// An OpAdd with Index 0, the zero value, inserts before the existing children
// of the same kind; use Index -1 to append.
func (s *Sync) Apply(u Update) bool {
	if err := s.apply(u); err != nil {
		s.model.log.Debug("sync update dropped",
			zap.Stringer("op", u.Op),
			zap.Error(err))
		return false
	}
	return true
}

// Handles reports whether updates between parent and child kinds are replayed.
func (s *Sync) Handles(parent, child schema.Kind) bool {
	_, ok := s.handlers[kindPair{parent: parent, child: child}]
	return ok
}

func (s *Sync) apply(u Update) error {
	if u.Parent == nil || u.Child == nil {
		return fmt.Errorf("sync %s: missing component", u.Op)
	}
	h, ok := s.handlers[kindPair{parent: u.Parent.Kind(), child: u.Child.Kind()}]
	if !ok {
		return fmt.Errorf("sync %s %s/%s: %w", u.Op, u.Parent.Kind(), u.Child.Kind(), errUndeclaredPair)
	}
	return h(u)
}

func (s *Sync) replay(u Update) error {
	role := string(u.Child.LocalName())
	switch u.Op {
	case OpAdd:
		if u.Index < 0 {
			return u.Parent.AppendChild(role, u.Child)
		}
		return u.Parent.InsertAtIndex(role, u.Child, u.Index)
	case OpRemove:
		return u.Parent.RemoveChild(role, u.Child)
	}
	return fmt.Errorf("sync: unknown op %s", u.Op)
}

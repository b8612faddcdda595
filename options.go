package facesconfig

import (
	"fmt"

	"go.uber.org/zap"
)

const defaultUndoLimit = 100

type intOption struct {
	value int
	set   bool
}

func (o intOption) resolved(dflt int) int {
	if !o.set {
		return dflt
	}
	return o.value
}

// LoadOptions configures model loading. The zero value is valid.
type LoadOptions struct {
	logger     *zap.Logger
	undoLimit  intOption
	permissive bool
}

type resolvedOptions struct {
	logger     *zap.Logger
	undoLimit  int
	permissive bool
}

// NewLoadOptions returns a default, valid options value.
func NewLoadOptions() LoadOptions {
	return LoadOptions{}
}

// WithLogger sets the logger used for debug tracing (nil disables logging).
func (o LoadOptions) WithLogger(logger *zap.Logger) LoadOptions {
	o.logger = logger
	return o
}

// WithUndoLimit bounds the number of undoable transactions (0 disables history).
func (o LoadOptions) WithUndoLimit(value int) LoadOptions {
	o.undoLimit = intOption{value: value, set: true}
	return o
}

// WithPermissive accepts common XML mistakes such as unescaped ampersands.
func (o LoadOptions) WithPermissive(value bool) LoadOptions {
	o.permissive = value
	return o
}

// Validate validates option values.
func (o LoadOptions) Validate() error {
	_, err := o.withDefaults()
	return err
}

func (o LoadOptions) withDefaults() (resolvedOptions, error) {
	limit := o.undoLimit.resolved(defaultUndoLimit)
	if limit < 0 {
		return resolvedOptions{}, fmt.Errorf("undo limit must be >= 0, got %d", limit)
	}
	logger := o.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return resolvedOptions{
		logger:     logger,
		undoLimit:  limit,
		permissive: o.permissive,
	}, nil
}

package pathvar

import (
	"github.com/arthur-debert/pathvar/pkg/errors"
	"github.com/arthur-debert/pathvar/pkg/logging"
	"github.com/arthur-debert/pathvar/pkg/pathlist"
	"github.com/arthur-debert/pathvar/pkg/scope"
	"github.com/rs/zerolog"
)

// DefaultVariable is the variable used when a request names none
const DefaultVariable = "PATH"

// Engine applies pathvar operations to variables held in a scope.Store
type Engine struct {
	store      scope.Store
	defaultVar string
	sep        rune
	compare    pathlist.CompareMode
	logger     zerolog.Logger

	// used when store is not a scope.Locker
	locks scope.KeyedMutex
}

// Option configures an Engine
type Option func(*Engine)

// WithDefaultVariable sets the variable used when a request names none
func WithDefaultVariable(name string) Option {
	return func(e *Engine) {
		e.defaultVar = name
	}
}

// WithSeparator overrides the host path-list separator
func WithSeparator(sep rune) Option {
	return func(e *Engine) {
		e.sep = sep
	}
}

// WithCompareMode sets how Remove and Dedupe match entries
func WithCompareMode(mode pathlist.CompareMode) Option {
	return func(e *Engine) {
		e.compare = mode
	}
}

// WithLogger replaces the engine logger
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an Engine over store
func New(store scope.Store, opts ...Option) *Engine {
	e := &Engine{
		store:      store,
		defaultVar: DefaultVariable,
		sep:        pathlist.Separator,
		compare:    pathlist.CompareExact,
		logger:     logging.GetLogger("pathvar.engine"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Separator returns the separator the engine joins entries with
func (e *Engine) Separator() rune {
	return e.sep
}

// Append adds req.Path at the end of the variable
func (e *Engine) Append(req Request) error {
	_, err := e.Run(OpAppend, req)
	return err
}

// Prepend adds req.Path at the front of the variable
func (e *Engine) Prepend(req Request) error {
	_, err := e.Run(OpPrepend, req)
	return err
}

// Remove drops every entry matching req.Path
func (e *Engine) Remove(req Request) error {
	_, err := e.Run(OpRemove, req)
	return err
}

// Dedupe collapses repeated entries of variable, keeping first occurrences.
// An empty variable selects the default.
func (e *Engine) Dedupe(variable string) error {
	_, err := e.Run(OpDedupe, Request{Var: variable})
	return err
}

// List returns the entries of variable without modifying it.
// An empty variable selects the default.
func (e *Engine) List(variable string) ([]string, error) {
	return e.Run(OpList, Request{Var: variable})
}

// Run executes op. Only OpList returns entries; mutations return nil on
// success and perform exactly one scope write.
func (e *Engine) Run(op Operation, req Request) ([]string, error) {
	name := e.resolve(req.Var)
	logger, done := logging.StartOperation(e.logger.With().Str("variable", name).Logger(), op.String())
	defer done()

	st := stateValidating
	fail := func(err error) ([]string, error) {
		logger.Trace().Str("state", st.String()).Msg("transition to " + stateFailed.String())
		logger.Debug().Err(err).Msg("pathvar operation failed")
		return nil, err
	}
	logger.Trace().Str("state", st.String()).Msg("state entered")

	if !op.Valid() {
		return fail(errors.Newf(errors.ErrInvalidInput, "unknown operation %d", int(op)).
			WithDetail("operation", int(op)))
	}
	if name == "" {
		return fail(errors.New(errors.ErrInvalidName, "variable name must not be empty"))
	}

	var entry string
	if op.TakesPath() {
		var err error
		if entry, err = e.validate(op, req.Path); err != nil {
			return fail(err)
		}
	}

	if op.Mutates() {
		unlock := e.lock(name)
		defer unlock()
	}

	st = stateReading
	logger.Trace().Str("state", st.String()).Msg("state entered")
	current, ok := e.store.Get(name)
	if !ok {
		return fail(errors.Newf(errors.ErrVariableNotSet, "Variable %s not set", name).
			WithDetail("variable", name))
	}

	if op == OpList {
		entries := pathlist.Split(current, e.sep)
		logger.Trace().Str("state", stateDone.String()).Int("entries", len(entries)).Msg("state entered")
		return entries, nil
	}

	if op == OpAppend && pathlist.Contains(current, entry, e.sep, e.compare) {
		logger.Debug().Str("entry", entry).Msg("entry already present, appending a duplicate")
	}
	next := e.compute(op, current, entry)

	st = stateWriting
	logger.Trace().Str("state", st.String()).Msg("state entered")
	if err := e.store.Set(name, next); err != nil {
		return fail(errors.Wrapf(err, errors.ErrScopeWrite, "failed to write %s", name).
			WithDetail("variable", name))
	}

	logger.Trace().Str("state", stateDone.String()).Msg("state entered")
	logger.Info().Str("entry", entry).Msg("pathvar updated")
	return nil, nil
}

func (e *Engine) resolve(override string) string {
	if override != "" {
		return override
	}
	return e.defaultVar
}

// validate turns the argument into an entry without touching scope
func (e *Engine) validate(op Operation, arg Arg) (string, error) {
	entry, err := pathlist.ToText(arg.Value)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidPathEncoding, "Invalid path in %s", arg.Tag).
			WithDetails(argDetails(arg)).
			WithDetail("label", err.Error())
	}

	// Removing may target ill-formed entries; only insertions must be well formed
	if op == OpRemove {
		return entry, nil
	}
	if err := pathlist.ValidateEntry(entry, e.sep); err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidPathEntry, "Invalid path in %s", arg.Tag).
			WithDetails(argDetails(arg)).
			WithDetail("entry", entry)
	}
	return entry, nil
}

func argDetails(arg Arg) map[string]interface{} {
	return map[string]interface{}{
		"arg":      arg.Tag.Name,
		"position": arg.Tag.Position,
	}
}

func (e *Engine) compute(op Operation, current, entry string) string {
	switch op {
	case OpAppend:
		return pathlist.Append(current, entry, e.sep)
	case OpPrepend:
		return pathlist.Prepend(current, entry, e.sep)
	case OpRemove:
		return pathlist.Remove(current, entry, e.sep, e.compare)
	case OpDedupe:
		return pathlist.Dedupe(current, e.sep, e.compare)
	default:
		return current
	}
}

func (e *Engine) lock(name string) func() {
	if l, ok := e.store.(scope.Locker); ok {
		return l.Lock(name)
	}
	return e.locks.Lock(name)
}

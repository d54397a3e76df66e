package values

import (
	"sync"

	"github.com/nunb/pyscheme-go/internal/errors"
	"github.com/nunb/pyscheme-go/internal/trampoline"
)

// Environment is a single frame in the nested-scope chain that maps
// symbols to values. Lookup walks child-to-root; Define mutates only the
// innermost frame; Extend never mutates the parent. Every frame is guarded
// by its own mutex.
type Environment struct {
	mu    sync.RWMutex
	store map[*Symbol]Expr
	outer *Environment
}

// NewEnvironment returns a fresh, empty, parentless frame — typically the
// top-level environment an embedder prebinds with primitives and special
// forms before evaluating a program.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[*Symbol]Expr)}
}

// NewEnvironmentWith returns a fresh, parentless frame seeded with a copy
// of dict.
func NewEnvironmentWith(dict map[*Symbol]Expr) *Environment {
	store := make(map[*Symbol]Expr, len(dict))
	for k, v := range dict {
		store[k] = v
	}
	return &Environment{store: store}
}

// Extend returns a new empty child frame of e.
func (e *Environment) Extend() *Environment {
	return &Environment{store: make(map[*Symbol]Expr), outer: e}
}

// ExtendWith returns a new child frame of e, seeded with dict.
func (e *Environment) ExtendWith(dict map[*Symbol]Expr) *Environment {
	store := make(map[*Symbol]Expr, len(dict))
	for k, v := range dict {
		store[k] = v
	}
	return &Environment{store: store, outer: e}
}

// Lookup searches innermost to outermost for sym. On a hit it calls
// ret(value, amb); on a miss it fails with SymbolNotFound via Fail.
func (e *Environment) Lookup(sym *Symbol, ret Ret, amb Amb) trampoline.Step {
	env := e
	for env != nil {
		env.mu.RLock()
		v, ok := env.store[sym]
		env.mu.RUnlock()
		if ok {
			return thunk(func() trampoline.Step { return ret(v, amb) })
		}
		env = env.outer
	}
	return Fail(errors.NewSymbolNotFoundError(sym.Name()))
}

// Define binds sym to value in the innermost frame, overwriting any
// existing binding in that frame only, and yields Null to ret. Define is
// observable immediately by subsequent lookups — the only sanctioned means
// of introducing recursion (a closure captures its definition environment
// by reference, so a later Define in that same frame is visible the next
// time the closure's body looks the name up).
func (e *Environment) Define(sym *Symbol, value Expr, ret Ret, amb Amb) trampoline.Step {
	e.mu.Lock()
	e.store[sym] = value
	e.mu.Unlock()
	return thunk(func() trampoline.Step { return ret(Null, amb) })
}

// GetDirect performs a non-CPS lookup across the whole chain, for callers
// outside the evaluator (the inferencer's initial type environment, tests).
func (e *Environment) GetDirect(sym *Symbol) (Expr, bool) {
	env := e
	for env != nil {
		env.mu.RLock()
		v, ok := env.store[sym]
		env.mu.RUnlock()
		if ok {
			return v, true
		}
		env = env.outer
	}
	return nil, false
}

// SetDirect is the non-CPS counterpart of Define, for prebinding the
// initial environment with primitives and special forms.
func (e *Environment) SetDirect(sym *Symbol, value Expr) {
	e.mu.Lock()
	e.store[sym] = value
	e.mu.Unlock()
}

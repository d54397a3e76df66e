package values

import (
	"sync"

	"github.com/nunb/pyscheme-go/internal/trampoline"
	"golang.org/x/text/unicode/norm"
)

// Symbol is interned (flyweight) by name: two symbols built from equal
// names are always the same object, so equality and hashing elsewhere can
// use object identity.
type Symbol struct {
	name string
}

var (
	internMu    sync.Mutex
	internTable = make(map[string]*Symbol)
)

// Intern returns the process-wide Symbol for name, creating it on first
// use. The name is first normalized to Unicode NFC so that visually
// identical identifiers built from different combining-character
// sequences (e.g. a precomposed "é" versus "e" + combining acute) still
// intern to one object — a strengthening of, never a weakening of, the
// spec's identity invariant.
func Intern(name string) *Symbol {
	normalized := norm.NFC.String(name)

	internMu.Lock()
	defer internMu.Unlock()
	if s, ok := internTable[normalized]; ok {
		return s
	}
	s := &Symbol{name: normalized}
	internTable[normalized] = s
	return s
}

func (s *Symbol) Eval(env *Environment, ret Ret, amb Amb) trampoline.Step {
	return thunk(func() trampoline.Step { return env.Lookup(s, ret, amb) })
}

func (s *Symbol) Kind() string   { return "symbol" }
func (s *Symbol) String() string { return s.name }
func (s *Symbol) Name() string   { return s.name }

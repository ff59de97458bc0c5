// Package intern provides an append-only string interner. It is owned by a
// single token stream and must not be shared across goroutines.
package intern

// Symbol identifies an interned string within one Interner.
type Symbol uint32

// Interner deduplicates strings and hands out stable symbols.
type Interner struct {
	lookup  map[string]Symbol
	strings []string
}

// New creates an empty interner.
func New() *Interner {
	return &Interner{lookup: make(map[string]Symbol)}
}

// Intern returns the symbol for s, adding it on first use.
func (in *Interner) Intern(s string) Symbol {
	if sym, ok := in.lookup[s]; ok {
		return sym
	}
	sym := Symbol(len(in.strings))
	in.strings = append(in.strings, s)
	in.lookup[s] = sym
	return sym
}

// Resolve returns the string for a symbol. Symbols from a different
// interner yield an empty string.
func (in *Interner) Resolve(sym Symbol) string {
	if int(sym) >= len(in.strings) {
		return ""
	}
	return in.strings[sym]
}

// Len returns the number of distinct interned strings.
func (in *Interner) Len() int { return len(in.strings) }

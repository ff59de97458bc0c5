package token

// Keyw enumerates the reserved words. Keywords are only carved out of
// lowercase identifier spellings; operator and type-name spellings are
// never keywords.
type Keyw int

const (
	// Constructs
	KwFun Keyw = iota
	KwType
	KwClass
	KwEnum
	KwImpl
	KwUse

	// Expressions
	KwLet
	KwVar
	KwMatch
	KwAnd
	KwOr
	KwNot
	KwFor
)

var keywordNames = map[Keyw]string{
	KwFun:   "fun",
	KwType:  "type",
	KwClass: "class",
	KwEnum:  "enum",
	KwImpl:  "impl",
	KwUse:   "use",
	KwLet:   "let",
	KwVar:   "var",
	KwMatch: "match",
	KwAnd:   "and",
	KwOr:    "or",
	KwNot:   "not",
	KwFor:   "for",
}

var keywords = map[string]Keyw{
	"fun":   KwFun,
	"type":  KwType,
	"class": KwClass,
	"enum":  KwEnum,
	"impl":  KwImpl,
	"use":   KwUse,
	"let":   KwLet,
	"var":   KwVar,
	"match": KwMatch,
	"and":   KwAnd,
	"or":    KwOr,
	"not":   KwNot,
	"for":   KwFor,
}

func (k Keyw) String() string { return keywordNames[k] }

// LookupKeyword returns the keyword for a lowercase-started word, if any.
func LookupKeyword(word string) (Keyw, bool) {
	kw, ok := keywords[word]
	return kw, ok
}

package boolexpr

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// phrase is a keyword made of one or more words, stored case folded.
type phrase struct {
	words    []string
	operator Operator
}

type symbol struct {
	text     string
	operator Operator
}

// Lexicon maps the surface spellings of the connectives to operators. Word
// spellings are matched case-insensitively and may contain several words
// separated by whitespace. Symbol spellings are matched literally.
type Lexicon struct {
	Name string

	phrases map[string][]phrase
	symbols []symbol
	display map[Operator]string
}

// NewLexicon builds a lookup table from spelling to operator. display holds
// the spelling used when rendering an operator; operators missing from it are
// rendered with their English names.
func NewLexicon(name string, spellings map[string]Operator, display map[Operator]string) *Lexicon {
	lex := &Lexicon{
		Name:    name,
		phrases: make(map[string][]phrase),
		display: make(map[Operator]string),
	}
	for op, text := range display {
		lex.display[op] = text
	}
	folder := cases.Fold()
	for text, op := range spellings {
		lex.add(folder, text, op)
	}
	lex.sort()
	return lex
}

// MergeLexicons accepts every spelling of every lexicon and renders with the
// spellings of the first one.
func MergeLexicons(name string, lexicons ...*Lexicon) *Lexicon {
	merged := &Lexicon{
		Name:    name,
		phrases: make(map[string][]phrase),
		display: make(map[Operator]string),
	}
	for i := len(lexicons) - 1; i >= 0; i-- {
		lex := lexicons[i]
		for first, candidates := range lex.phrases {
			merged.phrases[first] = append(merged.phrases[first], candidates...)
		}
		merged.symbols = append(merged.symbols, lex.symbols...)
		for op, text := range lex.display {
			merged.display[op] = text
		}
	}
	merged.sort()
	return merged
}

func (l *Lexicon) add(folder cases.Caser, text string, op Operator) {
	r, _ := utf8.DecodeRuneInString(text)
	if !isWordRune(r) {
		l.symbols = append(l.symbols, symbol{text: text, operator: op})
		return
	}
	words := strings.Fields(folder.String(text))
	l.phrases[words[0]] = append(l.phrases[words[0]], phrase{words: words, operator: op})
}

// sort puts longer spellings first so that the tokenizer always takes the
// longest match ("<->" before "<", "исключающее или" before "исключающее").
func (l *Lexicon) sort() {
	for first := range l.phrases {
		candidates := l.phrases[first]
		sort.SliceStable(candidates, func(i, j int) bool {
			return len(candidates[i].words) > len(candidates[j].words)
		})
	}
	sort.SliceStable(l.symbols, func(i, j int) bool {
		return len(l.symbols[i].text) > len(l.symbols[j].text)
	})
}

// Spelling returns the text used to render op.
func (l *Lexicon) Spelling(op Operator) string {
	if l != nil {
		if text, ok := l.display[op]; ok {
			return text
		}
	}
	return op.String()
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

var EnglishLexicon = NewLexicon(
	"en",
	map[string]Operator{
		"NOT":     NOT,
		"AND":     AND,
		"OR":      OR,
		"XOR":     XOR,
		"IMPLIES": IMPLIES,
		"EQUIV":   EQUIV,
	},
	map[Operator]string{
		NOT:     "NOT",
		AND:     "AND",
		OR:      "OR",
		XOR:     "XOR",
		IMPLIES: "IMPLIES",
		EQUIV:   "EQUIV",
	},
)

var RussianLexicon = NewLexicon(
	"ru",
	map[string]Operator{
		"отрицание":       NOT,
		"конъюнкция":      AND,
		"дизъюнкция":      OR,
		"исключающее или": XOR,
		"импликация":      IMPLIES,
		"эквивалентность": EQUIV,
	},
	map[Operator]string{
		NOT:     "отрицание",
		AND:     "конъюнкция",
		OR:      "дизъюнкция",
		XOR:     "исключающее или",
		IMPLIES: "импликация",
		EQUIV:   "эквивалентность",
	},
)

var SymbolLexicon = NewLexicon(
	"symbols",
	map[string]Operator{
		"!":   NOT,
		"~":   NOT,
		"&":   AND,
		"&&":  AND,
		"|":   OR,
		"||":  OR,
		"^":   XOR,
		"->":  IMPLIES,
		"=>":  IMPLIES,
		"<->": EQUIV,
		"<=>": EQUIV,
	},
	map[Operator]string{
		NOT:     "!",
		AND:     "&",
		OR:      "|",
		XOR:     "^",
		IMPLIES: "->",
		EQUIV:   "<->",
	},
)

// DefaultLexicon accepts English, Russian and symbolic spellings and renders
// in English.
var DefaultLexicon = MergeLexicons("default", EnglishLexicon, RussianLexicon, SymbolLexicon)

// LexiconFor returns the lexicon rendering in the given language, falling
// back to English. Every returned lexicon still accepts all spellings.
func LexiconFor(lang string) *Lexicon {
	switch lang {
	case RussianLexicon.Name:
		return MergeLexicons(lang, RussianLexicon, EnglishLexicon, SymbolLexicon)
	case SymbolLexicon.Name:
		return MergeLexicons(lang, SymbolLexicon, EnglishLexicon, RussianLexicon)
	default:
		return DefaultLexicon
	}
}

// Package spellcheck applies a fixed dictionary of common transcript typos.
// It never touches the network and holds no state.
package spellcheck

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Span is a byte range into the original text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Change records one replaced token.
type Change struct {
	Word       string `json:"word"`
	Suggestion string `json:"suggestion"`
	Position   Span   `json:"position"`
}

// Result is the outcome of Check.
type Result struct {
	Original  string   `json:"original"`
	Corrected string   `json:"corrected"`
	Changes   []Change `json:"changes"`
}

// typos maps lowercase known-bad tokens to their correction.
var typos = map[string]string{
	"teh":   "the",
	"taht":  "that",
	"dont":  "don't",
	"cant":  "can't",
	"wont":  "won't",
	"your":  "you're",
	"their": "they're",
	"its":   "it's",

	"accomodate":   "accommodate",
	"acheive":      "achieve",
	"begining":     "beginning",
	"beleive":      "believe",
	"cemetary":     "cemetery",
	"collegue":     "colleague",
	"commitee":     "committee",
	"concious":     "conscious",
	"eleciton":     "election",
	"existance":    "existence",
	"foriegn":      "foreign",
	"goverment":    "government",
	"happend":      "happened",
	"harrass":      "harass",
	"immediatly":   "immediately",
	"independant":  "independent",
	"knowlege":     "knowledge",
	"liason":       "liaison",
	"mispell":      "misspell",
	"neccessary":   "necessary",
	"noticable":    "noticeable",
	"occassion":    "occasion",
	"parliment":    "parliament",
	"persistant":   "persistent",
	"posession":    "possession",
	"privelege":    "privilege",
	"publically":   "publicly",
	"recieve":      "receive",
	"refered":      "referred",
	"relavant":     "relevant",
	"rythm":        "rhythm",
	"seperate":     "separate",
	"succesful":    "successful",
	"suprise":      "surprise",
	"truely":       "truly",
	"unfortunatly": "unfortunately",

	"youtube": "YouTube",
}

// tokens splits text into alternating non-space and whitespace runs.
// Whitespace includes \v, NBSP and the other Unicode space separators that
// show up in caption text, not only ASCII \s.
var tokens = regexp.MustCompile(`[\s\v\p{Z}\x{FEFF}]+|[^\s\v\p{Z}\x{FEFF}]+`)

// Lookup returns the correction for word, if the dictionary has one.
// Matching is case-insensitive; the returned value is the dictionary form.
func Lookup(word string) (string, bool) {
	fix, ok := typos[strings.ToLower(word)]
	return fix, ok
}

// Check corrects every dictionary hit in text, keeping the original
// whitespace intact. Positions are byte offsets into text.
func Check(text string) Result {
	res := Result{Original: text, Changes: []Change{}}

	var sb strings.Builder
	sb.Grow(len(text))
	pos := 0
	for _, tok := range tokens.FindAllString(text, -1) {
		fix, ok := Lookup(tok)
		if !ok {
			sb.WriteString(tok)
			pos += len(tok)
			continue
		}
		fixed := applyCasing(fix, tok)
		res.Changes = append(res.Changes, Change{
			Word:       tok,
			Suggestion: fixed,
			Position:   Span{Start: pos, End: pos + len(tok)},
		})
		sb.WriteString(fixed)
		pos += len(tok)
	}
	res.Corrected = sb.String()
	return res
}

// applyCasing reshapes corrected to follow the case pattern of original.
func applyCasing(corrected, original string) string {
	if original == strings.ToUpper(original) {
		return strings.ToUpper(corrected)
	}
	first, _ := utf8.DecodeRuneInString(original)
	if unicode.IsUpper(first) {
		r, size := utf8.DecodeRuneInString(corrected)
		return string(unicode.ToUpper(r)) + corrected[size:]
	}
	return strings.ToLower(corrected)
}

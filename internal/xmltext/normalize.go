package xmltext

import "strings"

// spaceVariants is the fixed set of Unicode space variants folded to a plain
// ASCII space before collapsing. The set is a process-wide constant table;
// NormalizeSpace is the only reader.
var spaceVariants = map[rune]bool{
	' ': true, // space
	' ': true, // no-break space
	'᠎': true, // mongolian vowel separator
	' ': true, // en quad
	' ': true, // em quad
	' ': true, // en space
	' ': true, // em space
	' ': true, // three-per-em space
	' ': true, // four-per-em space
	' ': true, // six-per-em space
	' ': true, // figure space
	' ': true, // punctuation space
	' ': true, // thin space
	' ': true, // hair space
	'​': true, // zero width space
	' ': true, // narrow no-break space
	' ': true, // medium mathematical space
	'　': true, // ideographic space
	'\uFEFF': true, // zero width no-break space
}

// NormalizeSpace folds every space variant to a plain ASCII space, deletes
// embedded newlines, collapses runs of spaces to one, and trims the ends.
// Applying it twice yields the same string as applying it once.
func NormalizeSpace(s string) string {
	s = strings.Map(func(r rune) rune {
		if spaceVariants[r] {
			return ' '
		}
		return r
	}, s)
	s = strings.ReplaceAll(s, "\n", "")
	return strings.TrimSpace(collapseSpaces(s))
}

// collapseSpaces reduces runs of ASCII spaces to a single space. Other
// whitespace is left alone; variants were already folded by the caller.
func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevSpace := false
	for _, r := range s {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

package refparse

import "strings"

// Typed references arrive with the whitespace and dash variants word
// processors and mobile keyboards produce. Map them to plain ASCII before
// lexing.
var charReplacer = strings.NewReplacer(
	" ", " ", // no-break space
	" ", " ", // narrow no-break space
	" ", " ", // thin space
	"–", "-", // en dash
	"—", "-", // em dash
	"−", "-", // minus sign
)

// Normalize trims the input, maps exotic spaces and dashes to ASCII and
// collapses interior whitespace runs to single spaces.
func Normalize(raw string) string {
	s := charReplacer.Replace(raw)
	return strings.Join(strings.Fields(s), " ")
}

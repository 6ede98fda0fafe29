package browse

import (
	"strings"

	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/util"
)

// MatchFunc reports whether a palette matches every token of a query.
// Tokens are already folded (lowercased, accents removed).
type MatchFunc func(p *model.Palette, tokens []string) bool

// Tokenize folds the query text and splits it on whitespace.
// A blank query yields no tokens.
func Tokenize(text string) []string {
	return strings.Fields(util.Fold(text))
}

// MatchTokens is the default predicate. A palette matches when every token
// is a substring of its name, of one of its tags, or of the hex digits of
// one of its colors (a leading '#' on the token is ignored for colors).
func MatchTokens(p *model.Palette, tokens []string) bool {
	if len(tokens) == 0 {
		return false
	}
	name := util.Fold(p.Name)
	for _, tok := range tokens {
		if !matchToken(p, name, tok) {
			return false
		}
	}
	return true
}

func matchToken(p *model.Palette, foldedName, tok string) bool {
	if strings.Contains(foldedName, tok) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(util.Fold(tag), tok) {
			return true
		}
	}
	hex := strings.TrimPrefix(tok, "#")
	if hex == "" || !isHex(hex) {
		return false
	}
	for _, c := range p.Colors {
		if strings.Contains(model.HexDigits(c), hex) {
			return true
		}
	}
	return false
}

func isHex(s string) bool {
	for _, r := range s {
		if !((r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')) {
			return false
		}
	}
	return true
}

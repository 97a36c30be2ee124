package cssprune

import (
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// StylesheetStats summarizes a stylesheet's structure. Unlike the selector
// extraction regexes, these numbers come from a real CSS lexer, so class
// selectors are counted in any position (descendant combinators, :not(...)
// arguments) and at-rule wrapper blocks are told apart from rule blocks.
type StylesheetStats struct {
	Rules          int // Rule blocks, excluding @media/@layer wrapper blocks
	Declarations   int // property: value declarations
	ClassSelectors int // Distinct class names appearing in selector position
}

// Stats lexes stylesheet content and returns its structural statistics.
// Malformed CSS degrades to partial counts rather than failing.
func Stats(content string) StylesheetStats {
	stats := StylesheetStats{}
	classNames := make(ClassSet)

	lexer := css.NewLexer(parse.NewInputString(content))

	// blockStack tracks open braces; true entries are rule blocks, false
	// entries are at-rule wrapper blocks (@media, @layer, @supports).
	var blockStack []bool
	ruleDepth := 0
	atPrelude := false
	prevIdent := false

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal - just break
			break
		}

		switch tt {
		case css.AtKeywordToken:
			atPrelude = true

		case css.SemicolonToken:
			atPrelude = false

		case css.LeftBraceToken:
			isRule := !atPrelude
			atPrelude = false
			blockStack = append(blockStack, isRule)
			if isRule {
				stats.Rules++
				ruleDepth++
			}

		case css.RightBraceToken:
			if n := len(blockStack); n > 0 {
				if blockStack[n-1] {
					ruleDepth--
				}
				blockStack = blockStack[:n-1]
			}

		case css.ColonToken:
			// An identifier directly followed by a colon inside a rule
			// block is a declaration; in selector position it would be a
			// pseudo-class and ruleDepth would be zero.
			if prevIdent && ruleDepth > 0 {
				stats.Declarations++
			}

		case css.DelimToken:
			if ruleDepth == 0 && len(text) > 0 && text[0] == '.' {
				tt2, name := lexer.Next()
				if tt2 == css.IdentToken {
					classNames.Add(string(name))
				} else if tt2 == css.ErrorToken {
					stats.ClassSelectors = classNames.Len()
					return stats
				}
			}
		}

		prevIdent = tt == css.IdentToken
	}

	stats.ClassSelectors = classNames.Len()
	return stats
}

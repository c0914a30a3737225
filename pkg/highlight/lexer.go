// Package highlight colours listings for terminals and tview hosts.
package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// statusTypes are the token types of the trailing VCS status letter.
var statusTypes = map[string]chroma.TokenType{
	"M": chroma.GenericEmph,
	"R": chroma.GenericEmph,
	"C": chroma.GenericEmph,
	"A": chroma.GenericInserted,
	"U": chroma.GenericInserted,
	"D": chroma.GenericDeleted,
}

var status = chroma.EmitterFunc(func(groups []string, _ *chroma.LexerState) chroma.Iterator {
	if groups[0] == "" {
		return chroma.Literator()
	}
	letter := groups[0][1:]
	return chroma.Literator(
		chroma.Token{Type: chroma.TextWhitespace, Value: " "},
		chroma.Token{Type: statusTypes[letter], Value: letter},
	)
})

func listingRules() chroma.Rules {
	return chroma.Rules{
		"root": {
			{Pattern: `" [^\n]*\n`, Type: chroma.Comment},
			{Pattern: `-- BOOKMARKS --\n`, Type: chroma.GenericHeading},
			{Pattern: `(\[[^\]\n]+\])(\s+)([^\n]*)(\n)`, Type: chroma.ByGroups(chroma.NameLabel, chroma.TextWhitespace, chroma.NameNamespace, chroma.TextWhitespace)},
			{Pattern: `(\.\./)( [MADURC])?(\n)`, Type: chroma.ByGroups(chroma.NameBuiltin, status, chroma.TextWhitespace)},
			{Pattern: `([^\n]*/)( [MADURC])?(\n)`, Type: chroma.ByGroups(chroma.NameNamespace, status, chroma.TextWhitespace)},
			{Pattern: `([^\n]*?)( [MADURC])?(\n)`, Type: chroma.ByGroups(chroma.Name, status, chroma.TextWhitespace)},
		},
	}
}

// Listing lexes rendered directory listings.
var Listing = lexers.Register(chroma.MustNewLexer(
	&chroma.Config{
		Name:      "dirbuf",
		Aliases:   []string{"dirbuf", "netrw"},
		Filenames: []string{"*.dirbuf"},
		MimeTypes: []string{"text/x-dirbuf"},
		EnsureNL:  true,
	},
	listingRules,
))

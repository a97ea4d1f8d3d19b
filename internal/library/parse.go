package library

import (
	"strings"
)

// bookMeta is the metadata derived from one filename. Rating and Pages are
// only set by curated signatures, never by generic parsing.
type bookMeta struct {
	Title    string
	Author   string
	Category string
	Rating   *float64
	Pages    *int
}

// signature maps a recognized filename to curated metadata. Signatures are
// evaluated in order; the first match wins and generic parsing is skipped.
type signature struct {
	match func(name string) bool
	meta  bookMeta
}

var signatures = []signature{
	{
		match: func(name string) bool { return strings.Contains(name, "Alan_Turing") },
		meta: bookMeta{
			Title:    "Alan Turing's Automatic Computing Engine",
			Author:   "B. Jack Copeland",
			Category: "Computer Science",
			Rating:   floatPtr(4.8),
			Pages:    intPtr(580),
		},
	},
	{
		match: func(name string) bool { return strings.Contains(strings.ToLower(name), "python") },
		meta: bookMeta{
			Title:    "Python Programming Examples",
			Author:   "Various Authors",
			Category: "Programming",
			Rating:   floatPtr(4.5),
			Pages:    intPtr(320),
		},
	},
	{
		match: func(name string) bool { return strings.Contains(name, "Von Neumann") },
		meta: bookMeta{
			Title:    "The Computer and the Brain",
			Author:   "John von Neumann",
			Category: "Computer Science",
			Rating:   floatPtr(4.9),
			Pages:    intPtr(82),
		},
	},
}

// titleTokens is how many leading filename tokens form the generic title.
const titleTokens = 3

// parseBookInfo derives metadata from a filename: curated signatures first,
// then a generic rule that splits on separators, takes the first tokens as
// the title and the last token as the author when any tokens remain beyond
// the title.
func parseBookInfo(filename string) bookMeta {
	name := filename
	if ext := ".pdf"; len(name) >= len(ext) && strings.EqualFold(name[len(name)-len(ext):], ext) {
		name = name[:len(name)-len(ext)]
	}

	for _, sig := range signatures {
		if sig.match(name) {
			return sig.meta
		}
	}

	parts := strings.FieldsFunc(name, func(r rune) bool {
		switch r {
		case '_', '-', '[', ']', '(', ')':
			return true
		}
		return false
	})

	meta := bookMeta{Author: "Unknown Author", Category: "General"}
	n := len(parts)
	if n > titleTokens {
		n = titleTokens
	}
	meta.Title = strings.Join(parts[:n], " ")
	if meta.Title == "" {
		meta.Title = "Untitled"
	}
	if len(parts) > titleTokens {
		meta.Author = parts[len(parts)-1]
	}
	return meta
}

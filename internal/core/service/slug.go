package service

import "strings"

const slugSeparators = " :;?#/@%<>\"{}&*=()$"

// slugify derives a URL slug from a title: lowercase, with every separator
// or punctuation character replaced by a hyphen. Runs of separators are NOT
// collapsed ("a  b" becomes "a--b") to keep slugs byte-compatible with data
// produced by earlier versions of the site.
func slugify(title string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(slugSeparators, r) {
			return '-'
		}
		return r
	}, strings.ToLower(title))
}

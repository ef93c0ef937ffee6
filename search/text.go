package search

import "strings"

// ExtractTitle returns the first line of text: everything up to but not
// including the first newline, the whole text when there is no newline, or
// "" for empty text.
func ExtractTitle(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i]
	}
	return text
}

// bodyOf returns the searchable portion of text: everything after the title
// line. The newline separating title from body belongs to neither, so match
// positions are relative to the first byte after it.
func bodyOf(text, title string) string {
	body := text[len(title):]
	if len(body) > 0 && body[0] == '\n' {
		body = body[1:]
	}
	return body
}

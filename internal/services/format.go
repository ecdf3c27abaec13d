package services

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	spaceRuns   = regexp.MustCompile(`[ \t]+`)
	newlineRuns = regexp.MustCompile(`\n{3,}`)
)

// FormatPrompt normalizes whitespace in captured prompt text: runs of
// spaces and tabs collapse to one space, three or more blank lines
// collapse to a single blank line, and the result is trimmed.
func FormatPrompt(text string) string {
	if text == "" {
		return ""
	}
	out := spaceRuns.ReplaceAllString(text, " ")
	out = newlineRuns.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}

// StripHTML extracts the visible text from an HTML fragment, for prompts
// captured off a web page. Script and style contents are dropped.
func StripHTML(fragment string) string {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return FormatPrompt(fragment)
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return FormatPrompt(b.String())
}

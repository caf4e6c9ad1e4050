package resolver

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	allCapsRe     = regexp.MustCompile(`^[A-Z]+$`)
	personPlaceRe = regexp.MustCompile(`^(Person|People|Place)`)
	parenGroupRe  = regexp.MustCompile(`\((.+)\)`)
)

// extractPhrases runs the extract-phrase sub-procedure on the page's HTML
// summary. In search-query mode (disambiguation pages) it additionally scans
// list items for parenthesized glosses and determiner-bearing comma parts.
func (s *Service) extractPhrases(extractHTML string, searchQuery bool) []string {
	doc, err := html.Parse(strings.NewReader(extractHTML))
	if err != nil {
		// The wiki serves well-formed fragments; an unparseable extract just
		// contributes no phrases.
		return nil
	}

	head := extractHead(doc)
	if allCapsRe.MatchString(head) {
		// An opener that is a bare acronym is almost always a company or
		// organization name.
		return []string{"organization"}
	}

	var phrases []string

	if loc := s.rules.ExtractPreference.FindStringIndex(head); loc != nil {
		if loc[1] < len(head)-2 {
			phrases = append(phrases, head[loc[1]:])
		} else if id := firstSpanID(doc); personPlaceRe.MatchString(id) {
			// The opener consumed the whole head, typically "X may refer to".
			// On such pages the first section anchor often names the kind of
			// thing being disambiguated. This leans on the source wiki's
			// markup convention and is known to be brittle.
			phrases = append(phrases, id)
		}
	}

	if searchQuery {
		for _, line := range listItemTexts(doc) {
			if m := parenGroupRe.FindStringSubmatch(line); m != nil {
				phrases = append(phrases, m[1])
			}
			for _, part := range strings.Split(line, ",") {
				if s.rules.HasDeterminer(strings.Fields(part)) {
					phrases = append(phrases, part)
					break
				}
			}
		}
	}

	return phrases
}

// extractHead returns the first sentence of the first paragraph's text.
func extractHead(doc *html.Node) string {
	p := findElement(doc, "p")
	if p == nil {
		return ""
	}
	head, _, _ := strings.Cut(nodeText(p), ".")
	return strings.TrimSpace(head)
}

// firstSpanID returns the id attribute of the first <span> element, or "".
func firstSpanID(doc *html.Node) string {
	span := findElement(doc, "span")
	if span == nil {
		return ""
	}
	for _, attr := range span.Attr {
		if attr.Key == "id" {
			return attr.Val
		}
	}
	return ""
}

// listItemTexts returns the text content of every <li> element in document
// order.
func listItemTexts(doc *html.Node) []string {
	var lines []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "li" {
			lines = append(lines, nodeText(n))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return lines
}

// findElement returns the first element with the given tag, depth-first.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// nodeText concatenates all text nodes under n.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// Package richtext converts note bodies between the stored HTML fragment
// and the plain text edited in the terminal.
package richtext

import (
	"regexp"
	"strings"
	"unicode/utf8"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	excessiveLinesRe = regexp.MustCompile(`\n{3,}`)
	spaceRe          = regexp.MustCompile(`\s+`)
)

// blockTags separate words when a fragment is flattened to text.
var blockTags = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "pre": true,
}

const (
	uncheckedPrefix = "- [ ] "
	checkedPrefix   = "- [x] "
)

var converter = newConverter()

func newConverter() *md.Converter {
	c := md.NewConverter("", true, nil)
	c.Use(plugin.GitHubFlavored())
	// Checkboxes outside of lists come from the editor's checkbox command.
	c.AddRules(md.Rule{
		Filter: []string{"input"},
		Replacement: func(content string, selec *goquery.Selection, opt *md.Options) *string {
			if t, _ := selec.Attr("type"); t != "checkbox" {
				return md.String("")
			}
			if _, checked := selec.Attr("checked"); checked {
				return md.String("[x]")
			}
			return md.String("[ ]")
		},
	})
	return c
}

// ToMarkdown renders a stored note body as GitHub-flavored markdown.
func ToMarkdown(fragment string) (string, error) {
	out, err := converter.ConvertString(fragment)
	if err != nil {
		return "", err
	}
	out = excessiveLinesRe.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out), nil
}

// FromText builds the stored HTML fragment from editor text. Blank lines
// separate paragraphs, single newlines become <br>, and lines starting with
// "- [ ] " or "- [x] " become checkboxes.
func FromText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var b strings.Builder
	for _, para := range strings.Split(strings.TrimSpace(text), "\n\n") {
		para = strings.Trim(para, "\n")
		if strings.TrimSpace(para) == "" {
			continue
		}
		b.WriteString("<p>")
		for i, line := range strings.Split(para, "\n") {
			if i > 0 {
				b.WriteString("<br>")
			}
			b.WriteString(lineHTML(line))
		}
		b.WriteString("</p>")
	}
	return b.String()
}

func lineHTML(line string) string {
	switch {
	case strings.HasPrefix(line, uncheckedPrefix):
		return `<input type="checkbox"> ` + html.EscapeString(line[len(uncheckedPrefix):])
	case strings.HasPrefix(line, checkedPrefix), strings.HasPrefix(line, "- [X] "):
		return `<input type="checkbox" checked> ` + html.EscapeString(line[len(checkedPrefix):])
	}
	return html.EscapeString(line)
}

// ToText is the inverse of FromText. Markup it does not know is dropped and
// its text kept.
func ToText(fragment string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			out := excessiveLinesRe.ReplaceAllString(b.String(), "\n\n")
			return strings.TrimSpace(out)
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			switch tok.Data {
			case "br":
				b.WriteString("\n")
			case "li":
				b.WriteString("\n- ")
			case "input":
				if attr(tok, "type") == "checkbox" {
					b.WriteString(checkboxPrefix(tok))
				}
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if n := string(name); blockTags[n] && n != "br" && n != "li" {
				b.WriteString("\n\n")
			}
		}
	}
}

func checkboxPrefix(tok html.Token) string {
	for _, a := range tok.Attr {
		if a.Key == "checked" {
			return "- [x]"
		}
	}
	return "- [ ]"
}

func attr(tok html.Token, key string) string {
	for _, a := range tok.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// Preview returns up to n runes of the fragment's visible text, with tags
// stripped and whitespace collapsed.
func Preview(fragment string, n int) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(fragment))
	for tt := z.Next(); tt != html.ErrorToken; tt = z.Next() {
		switch tt {
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken, html.EndTagToken:
			name, _ := z.TagName()
			if blockTags[string(name)] {
				b.WriteByte(' ')
			}
		}
	}
	text := strings.TrimSpace(spaceRe.ReplaceAllString(b.String(), " "))
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:n])) + "..."
}

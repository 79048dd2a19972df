package richtext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "   \n\n ", ""},
		{"single paragraph", "hello", "<p>hello</p>"},
		{"line break", "one\ntwo", "<p>one<br>two</p>"},
		{"paragraphs", "one\n\n\ntwo", "<p>one</p><p>two</p>"},
		{"escaped", "a < b & c", "<p>a &lt; b &amp; c</p>"},
		{"checkbox", "- [ ] milk\n- [x] eggs", `<p><input type="checkbox"> milk<br><input type="checkbox" checked> eggs</p>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromText(tt.in))
		})
	}
}

func TestToTextInvertsFromText(t *testing.T) {
	in := "Groceries\n- [ ] milk\n- [x] eggs\n\nCall <Bob> & \"Alice\""
	assert.Equal(t, in, ToText(FromText(in)))
}

func TestToTextForeignMarkup(t *testing.T) {
	got := ToText(`<div><b>Bold</b> text</div><ul><li>one</li><li>two</li></ul>`)
	assert.Equal(t, "Bold text\n\n- one\n- two", got)
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "Title body", Preview("<h1>Title</h1><p>body</p>", 80))
	assert.Equal(t, "a b", Preview("<p>a</p>\n\n<p>b</p>", 80))
	assert.Equal(t, "", Preview("", 80))

	long := "<p>" + strings.Repeat("é", 100) + "</p>"
	got := Preview(long, 80)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Equal(t, 80, len([]rune(strings.TrimSuffix(got, "..."))))
}

func TestToMarkdown(t *testing.T) {
	out, err := ToMarkdown(`<p><b>Plan</b></p><p><input type="checkbox" checked> ship it</p><ul><li>one</li></ul>`)
	require.NoError(t, err)
	assert.Contains(t, out, "**Plan**")
	assert.Contains(t, out, "[x] ship it")
	assert.Contains(t, out, "- one")
	assert.NotContains(t, out, "\n\n\n")
}

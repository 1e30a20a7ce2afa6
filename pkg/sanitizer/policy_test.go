package sanitizer_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/commonkit/pkg/sanitizer"
)

func TestHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		contains    []string
		notContains []string
	}{
		{
			name:     "keeps paragraphs",
			input:    "<p>hello</p>",
			contains: []string{"<p>hello</p>"},
		},
		{
			name:        "removes script elements",
			input:       "<p>hi</p><script>alert(1)</script>",
			contains:    []string{"<p>hi</p>"},
			notContains: []string{"<script", "alert(1)"},
		},
		{
			name:        "drops event handlers",
			input:       `<p onclick="steal()">hi</p>`,
			contains:    []string{"<p>hi</p>"},
			notContains: []string{"onclick", "steal"},
		},
		{
			name:        "drops javascript urls",
			input:       `<a href="javascript:alert(1)">x</a>`,
			notContains: []string{"javascript"},
		},
		{
			name:        "drops src outside media elements",
			input:       `<div src="javascript:alert(1)">x</div>`,
			contains:    []string{"<div>x</div>"},
			notContains: []string{"src", "javascript"},
		},
		{
			name:        "drops javascript media sources",
			input:       `<video src="javascript:alert(1)" poster="javascript:alert(2)" controls></video>`,
			contains:    []string{"<video"},
			notContains: []string{"javascript", "src=", "poster="},
		},
		{
			name:     "keeps media sources",
			input:    `<video src="https://example.com/a.mp4" poster="/p.png" controls></video>`,
			contains: []string{`src="https://example.com/a.mp4"`, `poster="/p.png"`},
		},
		{
			name:        "drops value outside form controls",
			input:       `<span value="x">y</span><input value="ok">`,
			contains:    []string{"<span>y</span>", `value="ok"`},
			notContains: []string{`<span value`},
		},
		{
			name:     "keeps offsite links",
			input:    `<a href="https://example.com/page">x</a>`,
			contains: []string{`href="https://example.com/page"`},
		},
		{
			name:     "keeps table markup with numeric attributes",
			input:    `<table border="1"><tr><td colspan="2">x</td></tr></table>`,
			contains: []string{`<table border="1">`, `<td colspan="2">x</td>`},
		},
		{
			name:        "validates font colors",
			input:       `<font color="#ff0000">a</font><font color="expression(x)">b</font>`,
			contains:    []string{`color="#ff0000"`},
			notContains: []string{"expression"},
		},
		{
			name:        "validates ids",
			input:       `<div id="main">a</div><div id="bad id!">b</div>`,
			contains:    []string{`id="main"`},
			notContains: []string{"bad id!"},
		},
		{
			name:        "drops disallowed elements",
			input:       `<iframe src="https://evil.example"></iframe><p>ok</p>`,
			contains:    []string{"<p>ok</p>"},
			notContains: []string{"iframe"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := sanitizer.HTML(tt.input)
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, got, s)
			}
		})
	}
}

func TestStripTags(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello world", sanitizer.StripTags("<b>hello</b> <i>world</i>"))
	assert.Equal(t, "", sanitizer.StripTags("<script></script>"))
}

func TestPolicy_Shared(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "<b>x</b>", sanitizer.HTML("<b>x</b>"))
		}()
	}
	wg.Wait()
	assert.Same(t, sanitizer.Policy(), sanitizer.Policy())
}

package sanitizer

import (
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Attribute value patterns. bluemonday matches partially, so every pattern is anchored.
var (
	colorNameOrCode = regexp.MustCompile(`^(?:(?:aqua|black|blue|fuchsia|gray|grey|green|lime|maroon|navy|olive|purple|red|silver|teal|white|yellow)|#[0-9a-fA-F]{3}(?:[0-9a-fA-F]{3})?)$`)
	numberOrPercent = regexp.MustCompile(`^[0-9]+%?$`)
	paragraph       = regexp.MustCompile(`^(?:[\p{L}\p{N},'.\s\-_()]|&[0-9]{2};)*$`)
	htmlID          = regexp.MustCompile(`^[a-zA-Z0-9:\-_.]+$`)
	htmlTitle       = regexp.MustCompile(`^[\p{L}\p{N}\s\-_',:\[\]!./\\()&]*$`)
	htmlClass       = regexp.MustCompile(`^[a-zA-Z0-9\s,\-_]+$`)
	onsiteURL       = regexp.MustCompile(`^(?:[\p{L}\p{N}\\.#@$%+&;\-_~,?=/!]+|#\w+)$`)
	offsiteURL      = regexp.MustCompile(`^\s*(?:(?:ht|f)tps?://|mailto:)[\p{L}\p{N}][\p{L}\p{N}\p{Zs}.#@$%+&;:\-_~,?=/!()]*\s*$`)
	anyURL          = regexp.MustCompile(onsiteURL.String() + `|` + offsiteURL.String())
	number          = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)$`)
	name            = regexp.MustCompile(`^[a-zA-Z0-9\-_$]+$`)
	align           = regexp.MustCompile(`^(?i:center|left|right|justify|char)$`)
	valign          = regexp.MustCompile(`^(?i:baseline|bottom|middle|top)$`)
	historyBack     = regexp.MustCompile(`^(?:javascript:)?\Qhistory.go(-1)\E$`)
	oneChar         = regexp.MustCompile(`^(?s:.?)$`)
	langCode        = regexp.MustCompile(`^[a-zA-Z]{2,20}$`)
	fontFace        = regexp.MustCompile(`^[\w;, \-]+$`)
	scopeAttr       = regexp.MustCompile(`^(?i:(?:row|col)(?:group)?)$`)
	noResize        = regexp.MustCompile(`^(?i:noresize)$`)
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy

	strict = bluemonday.StrictPolicy()
)

// Policy returns the shared rich-text policy. Policies are safe for concurrent
// use once built; callers must not modify the returned value.
func Policy() *bluemonday.Policy {
	policyOnce.Do(func() { policy = newPolicy() })
	return policy
}

// HTML sanitizes untrusted rich text against the allow-list policy.
func HTML(untrusted string) string {
	return Policy().Sanitize(untrusted)
}

// StripTags removes every tag and keeps only escaped text content.
func StripTags(untrusted string) string {
	return strict.Sanitize(untrusted)
}

func newPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.RequireParseableURLs(true)
	p.AllowRelativeURLs(true)
	p.AllowURLSchemes("http", "https", "mailto", "chat")

	p.AllowElements(
		"a", "label", "noscript", "h1", "h2", "h3", "h4", "h5", "h6",
		"p", "i", "b", "u", "strong", "em", "small", "big", "pre", "code",
		"cite", "samp", "sub", "sup", "strike", "center", "blockquote",
		"hr", "br", "col", "font", "map", "span", "div", "img",
		"ul", "ol", "li", "dd", "dt", "dl", "tbody", "thead", "tfoot",
		"table", "td", "th", "tr", "colgroup", "fieldset", "legend",
		"button", "input", "select", "option", "video", "audio",
	)

	// Global attributes. Element rules that reject a value fall back to these,
	// so value-carrying attributes are patterned here too.
	p.AllowAttrs("color", "bgcolor").Matching(colorNameOrCode).Globally()
	p.AllowAttrs("align").Matching(align).Globally()
	p.AllowAttrs("name").Matching(name).Globally()
	p.AllowAttrs("target", "controls", "autoplay", "muted", "loop").Globally()
	p.AllowAttrs("id").Matching(htmlID).Globally()
	p.AllowAttrs("class").Matching(htmlClass).Globally()
	p.AllowAttrs("lang").Matching(langCode).Globally()
	p.AllowAttrs("title").Matching(htmlTitle).Globally()
	p.AllowStyles("color", "background-color", "text-align", "font-weight", "font-style",
		"font-size", "font-family", "text-decoration", "margin", "padding", "border",
		"width", "height").Globally()

	// Text and forms.
	p.AllowAttrs("align").Matching(align).OnElements("p")
	p.AllowAttrs("for").Matching(htmlID).OnElements("label")
	p.AllowAttrs("value").Matching(paragraph).OnElements("input", "option", "button")
	p.AllowAttrs("color").Matching(colorNameOrCode).OnElements("font")
	p.AllowAttrs("face").Matching(fontFace).OnElements("font")
	p.AllowAttrs("size").Matching(number).OnElements("font")

	// Links and images.
	p.AllowAttrs("href").Matching(anyURL).OnElements("a")
	p.AllowAttrs("name").Matching(name).OnElements("a", "img")
	p.AllowAttrs("onfocus", "onblur", "onclick", "onmousedown", "onmouseup").
		Matching(historyBack).OnElements("a")
	p.AllowAttrs("src").Matching(anyURL).OnElements("img", "video", "audio")
	p.AllowAttrs("poster").Matching(anyURL).OnElements("video")
	p.AllowAttrs("alt").Matching(paragraph).OnElements("img")
	p.AllowAttrs("border", "hspace", "vspace").Matching(number).OnElements("img")

	// Tables.
	p.AllowAttrs("border", "cellpadding", "cellspacing").Matching(number).OnElements("table")
	p.AllowAttrs("bgcolor").Matching(colorNameOrCode).OnElements("table", "td", "th")
	p.AllowAttrs("background").Matching(onsiteURL).OnElements("table", "td", "th", "tr")
	p.AllowAttrs("align").Matching(align).OnElements("table")
	p.AllowAttrs("noresize").Matching(noResize).OnElements("table")
	p.AllowAttrs("abbr").Matching(paragraph).OnElements("td", "th")
	p.AllowAttrs("axis", "headers").Matching(name).OnElements("td", "th")
	p.AllowAttrs("scope").Matching(scopeAttr).OnElements("td", "th")
	p.AllowAttrs("nowrap").OnElements("td", "th")
	p.AllowAttrs("height", "width").Matching(numberOrPercent).OnElements("table", "td", "th", "tr", "img")
	p.AllowAttrs("align").Matching(align).
		OnElements("thead", "tbody", "tfoot", "img", "td", "th", "tr", "colgroup", "col")
	p.AllowAttrs("valign").Matching(valign).
		OnElements("thead", "tbody", "tfoot", "td", "th", "tr", "colgroup", "col")
	p.AllowAttrs("charoff").Matching(numberOrPercent).
		OnElements("td", "th", "tr", "colgroup", "col", "thead", "tbody", "tfoot")
	p.AllowAttrs("char").Matching(oneChar).
		OnElements("td", "th", "tr", "colgroup", "col", "thead", "tbody", "tfoot")
	p.AllowAttrs("colspan", "rowspan").Matching(number).OnElements("td", "th")
	p.AllowAttrs("span", "width").Matching(numberOrPercent).OnElements("colgroup", "col")

	return p
}

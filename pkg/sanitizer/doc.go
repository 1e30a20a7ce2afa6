// Package sanitizer cleans untrusted HTML with a fixed allow-list built on
// github.com/microcosm-cc/bluemonday.
//
// HTML keeps common rich-text markup (headings, lists, tables, fonts, links,
// images and media elements) with attribute values restricted by pattern,
// and URLs restricted to http, https, mailto and chat. StripTags removes
// all markup.
//
//	clean := sanitizer.HTML(`<p onclick="steal()">hi<script>x</script></p>`)
//	// <p>hi</p>
//
// The policy is built once and is safe for concurrent use.
package sanitizer

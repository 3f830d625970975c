package web

import (
	"html"
	"regexp"
	"strings"
)

type pageLink struct {
	href string
	text string
}

var (
	navBlockRe = regexp.MustCompile(`(?is)<(nav|div)[^>]*class="[^"]*(?:toc|navigation|menu)[^"]*"[^>]*>(.*?)</(?:nav|div)>`)
	anchorRe   = regexp.MustCompile(`(?is)<a[^>]*href="([^"]+)"[^>]*>(.*?)</a>`)
	tagStripRe = regexp.MustCompile(`(?s)<[^>]*>`)
)

// maxFallbackLinks bounds the fallback scan when no navigation block
// is present on the page.
const maxFallbackLinks = 20

// navigationLinks extracts in-site links from the page's navigation
// blocks, falling back to the first links of the whole page when the
// markup has no recognisable navigation.
func navigationLinks(content string) []pageLink {
	var links []pageLink
	for _, block := range navBlockRe.FindAllStringSubmatch(content, -1) {
		links = append(links, anchors(block[2], -1)...)
	}
	if len(links) == 0 {
		links = anchors(content, maxFallbackLinks)
	}
	return links
}

func anchors(block string, limit int) []pageLink {
	var links []pageLink
	for _, m := range anchorRe.FindAllStringSubmatch(block, limit) {
		href := strings.TrimSpace(html.UnescapeString(m[1]))
		if href == "" || strings.HasPrefix(href, "http://") ||
			strings.HasPrefix(href, "https://") || strings.HasPrefix(href, "#") ||
			strings.HasPrefix(href, "mailto:") {
			continue
		}
		text := strings.Join(strings.Fields(html.UnescapeString(tagStripRe.ReplaceAllString(m[2], " "))), " ")
		if text == "" {
			continue
		}
		links = append(links, pageLink{href: href, text: text})
	}
	return links
}

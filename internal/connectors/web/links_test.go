package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigationLinksFromNavBlock(t *testing.T) {
	page := `<nav class="main-menu">
<a href="get-started/">Get <b>Started</b></a>
<a href="https://example.com/external">External</a>
<a href="#top">Top</a>
<a href="mailto:docs@example.com">Mail</a>
</nav>
<a href="unrelated/">Outside the nav</a>`

	links := navigationLinks(page)
	require.Len(t, links, 1)
	assert.Equal(t, "get-started/", links[0].href)
	assert.Equal(t, "Get Started", links[0].text)
}

func TestNavigationLinksFallback(t *testing.T) {
	page := `<body>
<a href="one/">One</a>
<a href="two/">Two</a>
</body>`

	links := navigationLinks(page)
	require.Len(t, links, 2)
	assert.Equal(t, "one/", links[0].href)
	assert.Equal(t, "two/", links[1].href)
}

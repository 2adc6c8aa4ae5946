package scout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rankingsFixture = `
<html><body>
<table class="rankings">
<thead><tr><th>Rank</th><th>Name</th><th>School</th><th>State</th><th>Stars</th></tr></thead>
<tbody>
<tr><td>1</td><td>Jordan Lee</td><td>Oak Ridge High</td><td>CA</td><td data-stars="5"></td></tr>
<tr><td>2</td><td>Sam Carter</td><td>Lincoln Prep</td><td>TX</td>
  <td><span class="star filled"></span><span class="star filled"></span><span class="star filled"></span><span class="star"></span></td></tr>
<tr><td>n/a</td><td>Broken Row</td><td>Nowhere</td><td>ZZ</td><td></td></tr>
<tr><td>3</td><td></td><td>Empty Name High</td><td>FL</td><td data-stars="4"></td></tr>
</tbody>
</table>
<div class="pagination"><a class="next">Next</a></div>
</body></html>
`

func TestParseRankingsHTML(t *testing.T) {
	athletes, hasMore, err := parseRankingsHTML(rankingsFixture, "basketball")
	require.NoError(t, err)

	// Rows with a non-numeric rank or empty name are dropped
	require.Len(t, athletes, 2)
	assert.True(t, hasMore)

	first := athletes[0]
	assert.Equal(t, 1, first.Rank)
	assert.Equal(t, "Jordan Lee", first.Name)
	assert.Equal(t, "basketball", first.Sport)
	assert.Equal(t, "Oak Ridge High", first.School)
	assert.Equal(t, "CA", first.State)
	assert.Equal(t, 5, first.StarRating)

	// Star rating falls back to counting filled star elements
	second := athletes[1]
	assert.Equal(t, 2, second.Rank)
	assert.Equal(t, 3, second.StarRating)
}

func TestParseRankingsHTMLLastPage(t *testing.T) {
	html := `<html><body>
	<table class="rankings"><tbody>
	<tr><td>1</td><td>Solo Athlete</td><td>School</td><td>NY</td><td data-stars="2"></td></tr>
	</tbody></table>
	</body></html>`

	athletes, hasMore, err := parseRankingsHTML(html, "soccer")
	require.NoError(t, err)
	assert.Len(t, athletes, 1)
	assert.False(t, hasMore)
}

func TestParseRankingsHTMLEmpty(t *testing.T) {
	athletes, hasMore, err := parseRankingsHTML("<html><body></body></html>", "golf")
	require.NoError(t, err)
	assert.Empty(t, athletes)
	assert.False(t, hasMore)
}

func TestClampStars(t *testing.T) {
	assert.Equal(t, 0, clampStars(-1))
	assert.Equal(t, 3, clampStars(3))
	assert.Equal(t, 5, clampStars(9))
}

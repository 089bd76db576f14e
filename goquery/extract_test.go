package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/scholarly"
	"github.com/fwojciec/scholarly/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const profileHTML = `<!DOCTYPE html>
<html>
<body>
<div id="gsc_prf">
	<div id="gsc_prf_in">Grace Hopper</div>
	<div class="gsc_prf_il">Professor of Computer Science, Yale University</div>
	<div class="gsc_prf_il" id="gsc_prf_ivh">Verified email at yale.edu</div>
	<div class="gsc_prf_il" id="gsc_prf_int">
		<a class="gsc_prf_inta" href="#">Compilers</a>
		<a class="gsc_prf_inta" href="#">Programming Languages</a>
		<a class="gsc_prf_inta" href="#">COBOL</a>
	</div>
</div>
<table id="gsc_rsb_st">
	<thead><tr><th></th><th>All</th><th>Since 2019</th></tr></thead>
	<tbody>
		<tr><td class="gsc_rsb_sc1"><a>Citations</a></td><td class="gsc_rsb_std"> 1200 </td><td class="gsc_rsb_std">300</td></tr>
		<tr><td class="gsc_rsb_sc1"><a>h-index</a></td><td class="gsc_rsb_std">18</td><td class="gsc_rsb_std">9</td></tr>
		<tr><td class="gsc_rsb_sc1"><a>i10-index</a></td><td class="gsc_rsb_std">25</td><td class="gsc_rsb_std">11</td></tr>
	</tbody>
</table>
<table id="gsc_a_t">
	<tbody id="gsc_a_b">
		<tr class="gsc_a_tr">
			<td class="gsc_a_t">
				<a class="gsc_a_at" href="/citations?view_op=view_citation">Graph Algorithms</a>
				<div class="gs_gray">G Hopper, A Turing</div>
				<div class="gs_gray">Journal of Graphs 12 (3), 2019</div>
			</td>
			<td class="gsc_a_c"><a class="gsc_a_ac gs_ibl">42</a></td>
			<td class="gsc_a_y"><span class="gsc_a_h gsc_a_hc gs_ibl">2019</span></td>
		</tr>
		<tr class="gsc_a_tr">
			<td class="gsc_a_t">
				<a class="gsc_a_at" href="#">Untitled Draft</a>
				<div class="gs_gray">G Hopper</div>
			</td>
			<td class="gsc_a_c"></td>
			<td class="gsc_a_y"><span class="gsc_a_h">n/a</span></td>
		</tr>
		<tr class="gsc_a_tr">
			<td class="gsc_a_t">
				<div class="gs_gray">Row without a title</div>
			</td>
			<td class="gsc_a_c"><a class="gsc_a_ac">7</a></td>
			<td class="gsc_a_y"><span class="gsc_a_h">2001</span></td>
		</tr>
		<tr class="gsc_a_tr">
			<td class="gsc_a_t">
				<a class="gsc_a_at" href="#">Compiling Routines</a>
				<div class="gs_gray">G Hopper</div>
				<div class="gs_gray">Proceedings, 1952</div>
			</td>
			<td class="gsc_a_c"><a class="gsc_a_ac">12*</a></td>
			<td class="gsc_a_y"><span class="gsc_a_h">1952</span></td>
		</tr>
	</tbody>
</table>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts author fields", func(t *testing.T) {
		t.Parallel()

		profile, err := goquery.NewExtractor().Extract(profileHTML)

		require.NoError(t, err)
		assert.Equal(t, "Grace Hopper", profile.Author.Name)
		assert.Equal(t, "Professor of Computer Science, Yale University", profile.Author.Affiliation)
		assert.Equal(t, profile.Author.Affiliation, profile.Author.SummaryText)
		assert.Equal(t, []string{"Compilers", "Programming Languages", "COBOL"}, profile.Author.Interests)
	})

	t.Run("extracts metrics as trimmed display strings", func(t *testing.T) {
		t.Parallel()

		profile, err := goquery.NewExtractor().Extract(profileHTML)

		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"Citations": "1200",
			"h-index":   "18",
			"i10-index": "25",
		}, profile.Author.Metrics)
	})

	t.Run("extracts publications in document order", func(t *testing.T) {
		t.Parallel()

		profile, err := goquery.NewExtractor().Extract(profileHTML)

		require.NoError(t, err)
		require.Len(t, profile.Publications, 3)

		assert.Equal(t, scholarly.Publication{
			Title:     "Graph Algorithms",
			Authors:   "G Hopper, A Turing",
			Venue:     "Journal of Graphs 12 (3), 2019",
			Year:      2019,
			Citations: 42,
		}, profile.Publications[0])

		assert.Equal(t, "Compiling Routines", profile.Publications[2].Title)
	})

	t.Run("defaults malformed and missing numbers to zero", func(t *testing.T) {
		t.Parallel()

		profile, err := goquery.NewExtractor().Extract(profileHTML)

		require.NoError(t, err)
		draft := profile.Publications[1]
		assert.Equal(t, "Untitled Draft", draft.Title)
		assert.Equal(t, "G Hopper", draft.Authors)
		assert.Empty(t, draft.Venue)
		assert.Equal(t, 0, draft.Year)
		assert.Equal(t, 0, draft.Citations)

		// Footnote marker makes the count non-numeric.
		assert.Equal(t, 0, profile.Publications[2].Citations)
		assert.Equal(t, 1952, profile.Publications[2].Year)
	})

	t.Run("drops rows without a title anchor", func(t *testing.T) {
		t.Parallel()

		profile, err := goquery.NewExtractor().Extract(profileHTML)

		require.NoError(t, err)
		for _, p := range profile.Publications {
			assert.NotEqual(t, "Row without a title", p.Authors)
		}
	})

	t.Run("is a pure function of its input", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()

		first, err := e.Extract(profileHTML)
		require.NoError(t, err)
		second, err := e.Extract(profileHTML)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("degrades gracefully when sections are missing", func(t *testing.T) {
		t.Parallel()

		profile, err := goquery.NewExtractor().Extract(`<html><body><div id="gsc_prf_in">Solo</div></body></html>`)

		require.NoError(t, err)
		assert.Equal(t, "Solo", profile.Author.Name)
		assert.Empty(t, profile.Author.Affiliation)
		assert.Empty(t, profile.Author.SummaryText)
		assert.Empty(t, profile.Author.Interests)
		assert.Empty(t, profile.Author.Metrics)
		assert.Empty(t, profile.Publications)
		assert.False(t, profile.IsEmpty())
	})

	t.Run("returns empty profile for unrelated page", func(t *testing.T) {
		t.Parallel()

		profile, err := goquery.NewExtractor().Extract(`<html><body><p>Hello</p></body></html>`)

		require.NoError(t, err)
		assert.True(t, profile.IsEmpty())
	})

	t.Run("skips metric rows with fewer than two cells", func(t *testing.T) {
		t.Parallel()

		doc := `<table id="gsc_rsb_st">
			<tr><td>Citations</td></tr>
			<tr><td>h-index</td><td>4</td></tr>
		</table>`

		profile, err := goquery.NewExtractor().Extract(doc)

		require.NoError(t, err)
		assert.Equal(t, map[string]string{"h-index": "4"}, profile.Author.Metrics)
	})

	t.Run("later duplicate metric labels overwrite earlier ones", func(t *testing.T) {
		t.Parallel()

		doc := `<table id="gsc_rsb_st">
			<tr><td>h-index</td><td>4</td></tr>
			<tr><td>h-index</td><td>5</td></tr>
		</table>`

		profile, err := goquery.NewExtractor().Extract(doc)

		require.NoError(t, err)
		assert.Equal(t, "5", profile.Author.Metrics["h-index"])
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewExtractor().Extract("  ")

		require.Error(t, err)
		assert.Equal(t, scholarly.EINVALID, scholarly.ErrorCode(err))
	})
}

func TestExtractor_ExtractNode(t *testing.T) {
	t.Parallel()

	root, err := html.Parse(strings.NewReader(profileHTML))
	require.NoError(t, err)

	profile := goquery.NewExtractor().ExtractNode(root)

	assert.Equal(t, "Grace Hopper", profile.Author.Name)
	assert.Len(t, profile.Publications, 3)
}

func TestExtractor_WithLayout(t *testing.T) {
	t.Parallel()

	layout := goquery.ScholarLayout()
	layout.Name = "h1.author"

	profile, err := goquery.NewExtractor(goquery.WithLayout(layout)).Extract(`<h1 class="author"> Custom </h1>`)

	require.NoError(t, err)
	assert.Equal(t, "Custom", profile.Author.Name)
}

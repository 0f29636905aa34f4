package request_test

import (
	"strings"
	"testing"

	"github.com/sskutnik/deBOXER/boxer"
	"github.com/sskutnik/deBOXER/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keys(reqs []request.Request) []boxer.ReactionKey {
	out := make([]boxer.ReactionKey, len(reqs))
	for i, r := range reqs {
		out[i] = r.Key
	}

	return out
}

func TestParse(t *testing.T) {
	src := `# U-235 and Fe-56
1 9228 18
1 9228 102

3 2631 2 2631 4   elastic x inelastic
-1 0 0
0 0
1 9999 1
`
	reqs, err := request.Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []boxer.ReactionKey{
		{Type: 1, Mat: 9228, MT: 18},
		{Type: 1, Mat: 9228, MT: 102},
		{Type: 3, Mat: 2631, MT: 2, Mat1: 2631, MT1: 4},
		{Type: boxer.TypeListing},
	}, keys(reqs), "parsing stops at the 0 0 terminator")

	assert.Equal(t, "1 9228 18", reqs[0].Line)
	assert.Equal(t, 2, reqs[0].LineNo)
	assert.Equal(t, 5, reqs[2].LineNo)
	assert.True(t, reqs[3].Listing())
}

func TestParse_NoTerminator(t *testing.T) {
	reqs, err := request.Parse(strings.NewReader("2 125 2\n2 125 4 x y\n"))
	require.NoError(t, err)
	assert.Equal(t, []boxer.ReactionKey{
		{Type: 2, Mat: 125, MT: 2},
		{Type: 2, Mat: 125, MT: 4},
	}, keys(reqs), "a non-numeric pair is ignored")
}

func TestParse_Errors(t *testing.T) {
	for _, src := range []string{
		"1 9228\n",
		"1\n",
		"one 9228 18\n",
		"7 9228 18\n",
	} {
		_, err := request.Parse(strings.NewReader(src))
		assert.Error(t, err, "%q", src)
	}

	_, err := request.Parse(strings.NewReader("1 x 18\n"))
	assert.ErrorIs(t, err, request.ErrMalformedRequest)

	_, err = request.Parse(strings.NewReader("6 1 1\n"))
	assert.ErrorIs(t, err, boxer.ErrInvalidKey)
}

func TestByMaterial(t *testing.T) {
	reqs, err := request.Parse(strings.NewReader("1 26 1\n1 92 18\n1 26 2\n3 92 18 26 2\n"))
	require.NoError(t, err)

	groups := request.ByMaterial(reqs)
	require.Len(t, groups, 2)
	assert.Equal(t, 26, groups[0].Mat)
	assert.Equal(t, []boxer.ReactionKey{{Type: 1, Mat: 26, MT: 1}, {Type: 1, Mat: 26, MT: 2}}, keys(groups[0].Requests))
	assert.Equal(t, 92, groups[1].Mat)
	assert.Len(t, groups[1].Requests, 2)

	assert.Empty(t, request.ByMaterial(nil))
}

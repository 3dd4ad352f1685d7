package wordlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByPrefixUnique(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"aca", "academic"},
		{"aci", "acid"},
		{"zer", "zero"},
		{"satoshi", "satoshi"},
	}
	for _, tt := range tests {
		got, err := FindByPrefix(tt.query)
		require.NoErrorf(t, err, "FindByPrefix(%q)", tt.query)
		assert.Equal(t, tt.want, got, "FindByPrefix(%q)", tt.query)
	}
}

func TestFindByPrefixAmbiguous(t *testing.T) {
	_, err := FindByPrefix("ac")
	var amb *AmbiguousPrefixError
	require.ErrorAs(t, err, &amb)

	assert.Equal(t, "ac", amb.Prefix)
	assert.Greater(t, amb.Count, 1)
	assert.Len(t, amb.Matches, amb.Count)
	assert.Contains(t, amb.Matches, "academic")
	assert.Contains(t, amb.Matches, "acid")
	// The message lists every match, uncapped.
	assert.Contains(t, amb.Error(), "academic")
	assert.Contains(t, amb.Error(), "acid")
}

func TestFindByPrefixNotFound(t *testing.T) {
	_, err := FindByPrefix("xyz")
	var nf *WordNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "xyz", nf.Word)
}

func TestFindByPrefixNormalization(t *testing.T) {
	got, err := FindByPrefix("  ACA  ")
	require.NoError(t, err)
	assert.Equal(t, "academic", got)

	// Resolution of a raw query matches resolution of its normalized form.
	for _, variant := range []string{"ZER", " zer\t", "Zer"} {
		raw, rawErr := FindByPrefix(variant)
		norm, normErr := FindByPrefix(Normalize(variant))
		require.NoError(t, rawErr)
		require.NoError(t, normErr)
		assert.Equal(t, norm, raw, "variant %q", variant)
	}
}

func TestFindByPrefixExactMatchPrecedence(t *testing.T) {
	// The reference catalog has no word that is a prefix of another, so
	// exercise the rule on a catalog where one is.
	c, err := New([]string{"car", "carbon", "cat"})
	require.NoError(t, err)

	got, err := c.FindByPrefix("car")
	require.NoError(t, err)
	assert.Equal(t, "car", got, "exact match must win over the broader prefix match")

	// A genuine prefix of multiple entries is still ambiguous.
	_, err = c.FindByPrefix("ca")
	var amb *AmbiguousPrefixError
	require.ErrorAs(t, err, &amb)
	assert.Equal(t, 3, amb.Count)
}

func TestFindByPrefixAgreesWithMatches(t *testing.T) {
	// resolve(p) is Ambiguous iff len(matches) > 1, NotFound iff 0,
	// otherwise the unique match. Spot-check every 2-letter prefix.
	c := Default()
	for a := 'a'; a <= 'z'; a++ {
		for b := 'a'; b <= 'z'; b++ {
			p := string(a) + string(b)
			matches := c.Matches(p)
			got, err := c.FindByPrefix(p)
			switch len(matches) {
			case 0:
				var nf *WordNotFoundError
				assert.ErrorAs(t, err, &nf, "prefix %q", p)
			case 1:
				require.NoErrorf(t, err, "prefix %q", p)
				assert.Equal(t, matches[0], got, "prefix %q", p)
			default:
				var amb *AmbiguousPrefixError
				require.ErrorAsf(t, err, &amb, "prefix %q", p)
				assert.Equal(t, len(matches), amb.Count, "prefix %q", p)
			}
		}
	}
}

func TestFindMatches(t *testing.T) {
	matches := FindMatches("  AC ")
	assert.Greater(t, len(matches), 1)
	assert.Contains(t, matches, "academic")
	assert.Contains(t, matches, "acid")
}

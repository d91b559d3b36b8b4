package content

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Elden Ring ":              "elden-ring",
		"The Witcher 3: Wild Hunt": "the-witcher-3-wild-hunt",
		"  --Hello__World--  ":     "hello-world",
		"Pokémon Go":               "pok-mon-go",
		"DOOM (1993)":              "doom-1993",
		"2077":                     "2077",
	}
	for title, want := range cases {
		t.Run(title, func(t *testing.T) {
			got, err := Slugify(title)
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.Regexp(t, `^[a-z0-9]+(-[a-z0-9]+)*$`, got)
		})
	}
}

func TestSlugify_IsIdempotent(t *testing.T) {
	first, err := Slugify("Baldur's Gate 3")
	require.NoError(t, err)
	second, err := Slugify(first)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSlugify_NoAlphanumerics(t *testing.T) {
	for _, title := range []string{"", "   ", "!!!", "★★★"} {
		_, err := Slugify(title)
		require.Error(t, err, "title %q", title)
		assert.True(t, errors.Is(err, ErrValidation))

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "title", verr.Field)
	}
}

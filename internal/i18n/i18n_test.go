package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadAndTranslate(t *testing.T) {
	b, err := Load("../../locales", "en")
	require.NoError(t, err)
	require.Equal(t, "PRODUCTS", b.T("en", "nav.products"))
	require.Equal(t, "PRODUCTS", b.T("hi", "nav.products"))
	require.Equal(t, "Image 2 of 3", b.T("en", "product.image_of", 2, 3))
	require.Equal(t, "missing.key", b.T("en", "missing.key"))
}

func TestEveryNavKeyExists(t *testing.T) {
	b, err := Load("../../locales", "en")
	require.NoError(t, err)
	keys := b.Keys()
	for _, k := range []string{"nav.home", "nav.about", "nav.products", "nav.why", "nav.contact"} {
		require.Contains(t, keys, k)
	}
}

func TestMissingFallbackFails(t *testing.T) {
	_, err := Load(t.TempDir(), "en")
	require.Error(t, err)
}

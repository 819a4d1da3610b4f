package Trees

import (
	"sort"
	"strings"
	"testing"

	"github.com/openacid/testkeys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tKeyN = 20000

var keyCache = map[string][]string{}

// getKeys returns up to n keys of a testkeys asset in random order. Assets
// are sorted, inserting them as is would only build a chain.
func getKeys(fn string, n int) []string {
	ks, ok := keyCache[fn]
	if !ok {
		ks = testkeys.Load(fn)
		keyCache[fn] = ks
	}
	sh := append([]string(nil), ks...)
	rg.Shuffle(len(sh), func(i, j int) {
		sh[i], sh[j] = sh[j], sh[i]
	})
	return sh[:min(n, len(sh))]
}

func TestStringKeys(t *testing.T) {
	keys := getKeys("1mvl5_10", tKeyN)
	tree := New[string]()
	for _, k := range keys {
		tree.Insert(k)
	}
	want := append([]string(nil), keys...)
	sort.Strings(want)
	assert.Equal(t, want, tree.Traverse(In))
	assert.False(t, tree.Corrupt())
	t.Logf("height: %d, size: %d", tree.Height(), tree.Size())

	var prefixed []string
	for _, k := range want {
		if strings.HasPrefix(k, "z") {
			prefixed = append(prefixed, k)
		}
	}
	var got []string
	tree.Range("z", "z\xff", func(k string) bool {
		got = append(got, k)
		return true
	})
	assert.Equal(t, prefixed, got)

	data, err := tree.ToJSON()
	require.NoError(t, err)
	back := New[string]()
	require.NoError(t, back.FromJSON(data))
	assert.True(t, tree.Equal(back))

	half := len(keys) / 2
	for _, k := range keys[:half] {
		require.True(t, tree.Remove(k), k)
	}
	assert.Equal(t, len(keys)-half, tree.Size())
	assert.False(t, tree.Corrupt())
}

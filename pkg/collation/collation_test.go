package collation_test

import (
	"sync"
	"testing"

	"github.com/pseudomuto/chexpr/pkg/collation"
	"github.com/stretchr/testify/require"
)

func TestRegistryGet(t *testing.T) {
	tests := []struct {
		name    string
		locale  string
		wantErr bool
	}{
		{name: "underscore form", locale: "en_US"},
		{name: "hyphen form", locale: "de-DE"},
		{name: "language only", locale: "sv"},
		{name: "empty", locale: "", wantErr: true},
		{name: "blank", locale: "  ", wantErr: true},
		{name: "malformed", locale: "not a locale!", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := collation.NewRegistry().Get(tt.locale)
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, c)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.locale, c.Locale())
		})
	}
}

func TestRegistrySharesHandles(t *testing.T) {
	r := collation.NewRegistry()

	a, err := r.Get("en_US")
	require.NoError(t, err)
	b, err := r.Get("en_US")
	require.NoError(t, err)
	require.Same(t, a, b)

	c, err := r.Get("fr")
	require.NoError(t, err)
	require.NotSame(t, a, c)
	require.Equal(t, 2, r.Len())
}

func TestRegistryConcurrentGet(t *testing.T) {
	r := collation.NewRegistry()

	var wg sync.WaitGroup
	got := make([]*collation.Collator, 16)
	for i := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := r.Get("en_US")
			require.NoError(t, err)
			got[i] = c
		}()
	}
	wg.Wait()

	for _, c := range got {
		require.Same(t, got[0], c)
	}
}

func TestCollatorCompare(t *testing.T) {
	sv, err := collation.New("sv")
	require.NoError(t, err)
	en, err := collation.New("en")
	require.NoError(t, err)

	// Swedish sorts ö after z, English treats it as o with an accent.
	require.Equal(t, 1, sv.Compare("ö", "z"))
	require.Equal(t, -1, en.Compare("ö", "z"))
	require.Equal(t, 0, en.Compare("abc", "abc"))

	words := []string{"zebra", "apple", "Mango"}
	en.Sort(words)
	require.Equal(t, []string{"apple", "Mango", "zebra"}, words)
}

package code

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOccurrenceCounts(t *testing.T) {
	got := OccurrenceCounts("248cyuu8")
	want := Counts{'2': 1, '4': 1, '8': 2, 'c': 1, 'y': 1, 'u': 2}
	assert.Equal(t, want, got)
	assert.Empty(t, OccurrenceCounts(""))
}

func TestCounts_CloneIsIndependent(t *testing.T) {
	orig := OccurrenceCounts("aab")
	cp := orig.Clone()
	cp['a']--
	cp['z'] = 5

	assert.Equal(t, 2, orig['a'])
	assert.False(t, orig.Has('z'))
	assert.True(t, cp.Has('z'))
}

func TestGenerate(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		c := Generate(rng, DefaultLength, DefaultAlphabet)
		require.Len(t, c, DefaultLength)
		require.NoError(t, Validate(c, DefaultLength, DefaultAlphabet))
	}
}

func TestGenerate_SameSeedSameCode(t *testing.T) {
	a := Generate(rand.New(rand.NewPCG(7, 7)), 12, DefaultAlphabet)
	b := Generate(rand.New(rand.NewPCG(7, 7)), 12, DefaultAlphabet)
	assert.Equal(t, a, b)
}

func TestGenerate_Degenerate(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	assert.Equal(t, "", Generate(rng, 0, DefaultAlphabet))
	assert.Equal(t, "", Generate(rng, 4, ""))
	assert.Equal(t, strings.Repeat("x", 5), Generate(rng, 5, "x"))
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		code string
		want error
	}{
		{name: "ok", code: "248cyuu8", want: nil},
		{name: "short", code: "248", want: ErrLength},
		{name: "long", code: "248cyuu8x", want: ErrLength},
		{name: "upper", code: "248CYUU8", want: ErrAlphabet},
		{name: "symbol", code: "248cyu-8", want: ErrAlphabet},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.code, 8, DefaultAlphabet)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err=%v, want %v", err, tc.want)
			}
		})
	}
}

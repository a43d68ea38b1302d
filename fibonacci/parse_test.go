package fibonacci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIndex(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		for in, want := range map[string]int{"0": 0, "5": 5, " 42 ": 42, "+7": 7} {
			got, err := ParseIndex(in)
			require.NoError(t, err, in)
			assert.Equal(t, want, got, in)
		}
	})

	t.Run("not an integer", func(t *testing.T) {
		for _, in := range []string{"a", "3.14", "5.0", "", "None", "1e3"} {
			_, err := ParseIndex(in)
			require.Error(t, err, in)
			assert.ErrorIs(t, err, ErrNotInteger, in)
			assert.Equal(t, KindType, KindOf(err), in)
		}
	})

	t.Run("negative", func(t *testing.T) {
		for _, in := range []string{"-1", "-5", "-99999999999999999999999"} {
			_, err := ParseIndex(in)
			assert.ErrorIs(t, err, ErrNegativeIndex, in)
			assert.Equal(t, KindDomain, KindOf(err), in)
		}
	})

	t.Run("too large", func(t *testing.T) {
		_, err := ParseIndex("99999999999999999999999")
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("message", func(t *testing.T) {
		_, err := ParseIndex("a")
		assert.EqualError(t, err, `fibonacci("a"): k must be an integer`)
	})
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "type", KindType.String())
	assert.Equal(t, "domain", KindDomain.String())
	assert.Equal(t, "overflow", KindOverflow.String())
	assert.Equal(t, "unknown", KindUnknown.String())
	assert.Equal(t, KindUnknown, KindOf(assert.AnError))
}

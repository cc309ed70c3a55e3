package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records(n int) []SampleRecord {
	out := make([]SampleRecord, n)
	for i := range out {
		out[i] = NewRecord("ID", map[string]Value{"ID": Int(int64(i + 1))}, nil)
	}
	return out
}

func TestFirstN_SelectSample(t *testing.T) {
	data := records(40)
	strategy := FirstN{}

	for _, n := range []int{1, 5, 25, 40} {
		first := strategy.SelectSample(data, n)
		second := strategy.SelectSample(data, n)
		assert.Len(t, first, n)
		assert.Equal(t, first, second, "selection must be deterministic")
	}

	t.Run("DefaultCount", func(t *testing.T) {
		assert.Len(t, strategy.SelectSample(data, 0), DefaultSampleCount)
	})

	t.Run("SmallerDataset", func(t *testing.T) {
		assert.Len(t, strategy.SelectSample(records(3), 10), 3)
	})

	t.Run("DoesNotAliasInput", func(t *testing.T) {
		sel := strategy.SelectSample(data, 2)
		sel[0].ID = "changed"
		assert.Equal(t, "1", data[0].ID)
	})
}

func TestExtractIDs(t *testing.T) {
	ids, err := FirstN{}.ExtractIDs(records(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, ids)

	malformed := append(records(2), NewRecord("ID", map[string]Value{"title": String("x")}, nil))
	_, err = ExtractIDs(malformed)
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

package validation

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_JSON(t *testing.T) {
	var v Value
	require.NoError(t, json.Unmarshal([]byte(`"24"`), &v))
	assert.Equal(t, KindString, v.Kind())

	require.NoError(t, json.Unmarshal([]byte(`24`), &v))
	assert.Equal(t, KindNumber, v.Kind())
	assert.Equal(t, "24", v.Text())

	require.NoError(t, json.Unmarshal([]byte(`null`), &v))
	assert.True(t, v.IsNull())

	err := json.Unmarshal([]byte(`{"a":1}`), &v)
	assert.ErrorIs(t, err, ErrUnsupportedValue)

	assert.False(t, String("24").Equal(Int(24)))
	assert.True(t, Number(24).Equal(Int(24)))
}

func TestDecodeRecords(t *testing.T) {
	payload := `[
		{"ID": 177232, "title": "Some Test Post", "meta": {"color": ["red"], "size": "L"}},
		{"ID": 175300, "title": "Another Post", "meta": []},
		{"title": "No identifier"}
	]`

	recs, err := DecodeRecords([]byte(payload), "ID")
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, "177232", recs[0].ID)
	assert.Equal(t, Meta{"color": {"red"}, "size": {"L"}}, recs[0].Meta)
	assert.Equal(t, Meta{}, recs[1].Meta)
	assert.Empty(t, recs[2].ID)
	assert.Nil(t, recs[2].Meta)

	_, err = ExtractIDs(recs)
	assert.ErrorIs(t, err, ErrMalformedRecord)

	t.Run("NullPayload", func(t *testing.T) {
		recs, err := DecodeRecords([]byte("null"), "ID")
		require.NoError(t, err)
		assert.Empty(t, recs)
	})

	t.Run("NestedValueRejected", func(t *testing.T) {
		_, err := DecodeRecords([]byte(`[{"ID": 1, "tags": ["a"]}]`), "ID")
		assert.ErrorIs(t, err, ErrUnsupportedValue)
	})
}

func TestDataset_RoundTrip(t *testing.T) {
	ds := Dataset{
		Counts: Counts{"post": {"publish": 2}},
		Sample: []SampleRecord{post(10, "Hello", Meta{"k": {"v"}})},
		Relations: Relations{
			"10": {"category": {"news"}},
		},
	}

	data, err := json.Marshal(ds)
	require.NoError(t, err)

	var back Dataset
	require.NoError(t, json.Unmarshal(data, &back))
	AssignIDs(back.Sample, "ID")

	assert.Equal(t, ds.Counts, back.Counts)
	assert.Equal(t, ds.Relations, back.Relations)
	require.Len(t, back.Sample, 1)
	assert.Equal(t, "10", back.Sample[0].ID)
	assert.True(t, FieldComparator{IDField: "ID"}.Equal("meta", &ds.Sample[0], &back.Sample[0]))
}

func TestEmptyArrayPayloads(t *testing.T) {
	var counts Counts
	require.NoError(t, json.Unmarshal([]byte(`[]`), &counts))
	assert.Equal(t, Counts{}, counts)

	require.NoError(t, json.Unmarshal([]byte(`{"post":[],"page":{"publish":2}}`), &counts))
	assert.Equal(t, Counts{"post": {}, "page": {"publish": 2}}, counts)

	var rel Relations
	require.NoError(t, json.Unmarshal([]byte(`[]`), &rel))
	assert.Equal(t, Relations{}, rel)

	require.NoError(t, json.Unmarshal([]byte(`{"1":[],"2":{"category":"news"}}`), &rel))
	assert.Equal(t, Relations{"1": {}, "2": {"category": {"news"}}}, rel)

	var meta Meta
	require.NoError(t, json.Unmarshal([]byte(`[]`), &meta))
	assert.Equal(t, Meta{}, meta)

	err := json.Unmarshal([]byte(`{"post":{"publish":"many"}}`), &counts)
	assert.Error(t, err)
}

func TestFromAny_LargeUnsigned(t *testing.T) {
	v, err := FromAny(uint64(math.MaxUint64))
	require.NoError(t, err)
	assert.Equal(t, KindNumber, v.Kind())
	assert.True(t, v.Equal(Number(float64(math.MaxUint64))))
	assert.NotContains(t, v.Text(), "-")

	small, err := FromAny(uint64(42))
	require.NoError(t, err)
	assert.True(t, small.Equal(Int(42)))
}

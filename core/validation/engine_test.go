package validation

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubValidator records the order in which stages are invoked.
type stubValidator struct {
	source      *Dataset
	destination *Dataset
	sourceErr   error
	destErr     error
	calls       []string
	seenSource  *Dataset
}

func (s *stubValidator) Name() string { return "stub" }

func (s *stubValidator) SourceData(ctx context.Context) (*Dataset, error) {
	s.calls = append(s.calls, "source")
	return s.source, s.sourceErr
}

func (s *stubValidator) DestinationData(ctx context.Context, source *Dataset) (*Dataset, error) {
	s.calls = append(s.calls, "destination")
	s.seenSource = source
	return s.destination, s.destErr
}

func (s *stubValidator) Compare(source, destination *Dataset) Comparison {
	s.calls = append(s.calls, "compare")
	cmp := FieldComparator{IDField: "ID"}
	return Comparison{
		Counts:  CompareCounts(source.Counts, destination.Counts),
		Samples: cmp.CompareSamples(source.Sample, destination.Sample),
	}
}

func scenario(destTitle string, destCounts Counts) *stubValidator {
	return &stubValidator{
		source: &Dataset{
			Counts: Counts{"post": {"publish": 24331, "draft": 5}},
			Sample: []SampleRecord{post(177232, "Some Test Post", Meta{"color": {"red"}})},
		},
		destination: &Dataset{
			Counts: destCounts,
			Sample: []SampleRecord{post(177232, destTitle, Meta{"color": {"red"}})},
		},
	}
}

func TestValidate_Scenarios(t *testing.T) {
	ctx := context.Background()

	t.Run("MatchingCountsAndSample", func(t *testing.T) {
		v := scenario("Some Test Post", Counts{"post": {"publish": 24331, "draft": 5}})
		res, err := Validate(ctx, v, zap.NewNop())
		require.NoError(t, err)

		assert.Equal(t, []string{"source", "destination", "compare"}, v.calls)
		assert.Same(t, v.source, v.seenSource)
		assert.Equal(t, StageReported, res.Stage)

		assert.Equal(t, "✅ post publish count is 24331 vs 24331.", res.Report[SectionCounts]["post.publish"])
		assert.Equal(t, map[string]bool{"title": true, "meta": true}, res.Comparison.Samples[0].Fields)
		assert.Equal(t, `✅ Record 177232 matches 1:1 with the destination site.`, res.Report[SectionSamples]["177232"])
		assert.True(t, res.Summary().OK())
	})

	t.Run("DraftMismatch", func(t *testing.T) {
		v := scenario("Some Test Post", Counts{"post": {"publish": 24331, "draft": 3}})
		res, err := Validate(ctx, v, nil)
		require.NoError(t, err)

		diff := res.Comparison.Counts["post"]["draft"]
		assert.Equal(t, 2, diff.Diff())
		assert.Equal(t, "❌ post draft count is 5 vs 3 (diff 2).", res.Report[SectionCounts]["post.draft"])
		assert.Equal(t, 1, res.Summary().Failed)
	})

	t.Run("TranslatedTitle", func(t *testing.T) {
		v := scenario("Some Test Post (Translated)", Counts{"post": {"publish": 24331, "draft": 5}})
		res, err := Validate(ctx, v, nil)
		require.NoError(t, err)

		row := res.Comparison.Samples[0]
		assert.False(t, row.Fields["title"])
		assert.True(t, row.Fields["meta"])
		assert.Equal(t, "❌ Record 177232 differs between source and destination: title.", res.Report[SectionSamples]["177232"])
	})

	t.Run("NoOrphanSampleRows", func(t *testing.T) {
		v := scenario("Some Test Post", Counts{})
		v.destination.Sample = append(v.destination.Sample, post(42, "Extra", nil))
		res, err := Validate(ctx, v, nil)
		require.NoError(t, err)
		assert.Len(t, res.Report[SectionSamples], 1)
		assert.Contains(t, res.Report[SectionSamples], "177232")
	})
}

func TestValidate_FailFast(t *testing.T) {
	boom := errors.New("connection refused")

	t.Run("SourceError", func(t *testing.T) {
		v := scenario("x", Counts{})
		v.sourceErr = boom
		res, err := Validate(context.Background(), v, nil)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, []string{"source"}, v.calls, "destination must never be queried before the source")
	})

	t.Run("DestinationError", func(t *testing.T) {
		v := scenario("x", Counts{})
		v.destErr = boom
		res, err := Validate(context.Background(), v, nil)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "stub: fetch destination")
		assert.NotContains(t, v.calls, "compare")
	})

	t.Run("CancelledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		v := scenario("x", Counts{})
		_, err := Validate(ctx, v, nil)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestValidate_Idempotent(t *testing.T) {
	render := func() []byte {
		v := scenario("Some Test Post (Translated)", Counts{"post": {"publish": 24330, "draft": 5}})
		res, err := Validate(context.Background(), v, nil)
		require.NoError(t, err)
		data, err := json.Marshal(res.Report)
		require.NoError(t, err)
		return data
	}
	assert.Equal(t, render(), render())
}

func TestAssemble_DoesNotMutateInput(t *testing.T) {
	diff := CountDiff{Group: "post", Key: "publish", Source: 1, Destination: 1}
	sections := map[string]map[string]Verdict{SectionCounts: {"post.publish": diff}}
	first := Assemble(sections)
	second := Assemble(sections)
	assert.Equal(t, first, second)
	assert.Equal(t, diff, sections[SectionCounts]["post.publish"])
}

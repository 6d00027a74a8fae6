package lexical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/rankgo/model"
)

func newTestIndex() *Index {
	idx := New()
	idx.AddDocument(0, []string{"the", "cat", "sat", "on", "the", "mat"})
	idx.AddDocument(1, []string{"the", "dog", "barked"})
	idx.AddDocument(2, []string{"cat", "cat", "videos"})
	idx.AddDocument(3, []string{"quantum", "entanglement"})
	return idx
}

func TestIDF(t *testing.T) {
	idx := newTestIndex()

	t.Run("RareTermScoresHigher", func(t *testing.T) {
		// "the" appears in 2 docs, "quantum" in 1.
		assert.Greater(t, idx.IDF("quantum"), idx.IDF("the"))
	})

	t.Run("NonNegative", func(t *testing.T) {
		for _, term := range []string{"the", "cat", "quantum", "mat"} {
			assert.GreaterOrEqual(t, idx.IDF(term), 0.0)
		}
	})

	t.Run("UnseenTermIsZero", func(t *testing.T) {
		assert.Zero(t, idx.IDF("zebra"))
	})
}

func TestAddDocument(t *testing.T) {
	t.Run("CorpusStats", func(t *testing.T) {
		idx := newTestIndex()

		assert.Equal(t, 4, idx.DocCount())
		assert.Equal(t, 6, idx.DocLength(0))
		assert.InDelta(t, 14.0/4.0, idx.AvgDocLength(), 1e-9)
		assert.Equal(t, 2, idx.TermFrequency(2, "cat"))
		assert.Equal(t, 2, idx.DocFrequency("cat"))
	})

	t.Run("ReplaceOnReinsert", func(t *testing.T) {
		idx := newTestIndex()
		idx.AddDocument(0, []string{"fresh", "content"})

		assert.Equal(t, 4, idx.DocCount())
		assert.Equal(t, 2, idx.DocLength(0))
		assert.Zero(t, idx.TermFrequency(0, "cat"))
		assert.Equal(t, 1, idx.TermFrequency(0, "fresh"))
	})

	t.Run("Remove", func(t *testing.T) {
		idx := newTestIndex()
		idx.RemoveDocument(2)

		assert.Equal(t, 3, idx.DocCount())
		assert.Equal(t, 1, idx.DocFrequency("cat"))

		// Unknown id is a no-op.
		idx.RemoveDocument(99)
		assert.Equal(t, 3, idx.DocCount())
	})
}

func TestRetrieve(t *testing.T) {
	idx := newTestIndex()

	t.Run("RankedDescendingAllPositive", func(t *testing.T) {
		results, err := idx.Retrieve([]string{"cat", "mat"}, 10)
		require.NoError(t, err)
		require.Len(t, results, 2)

		for i, r := range results {
			assert.Greater(t, r.Score, float32(0))
			if i > 0 {
				assert.LessOrEqual(t, r.Score, results[i-1].Score)
			}
		}
	})

	t.Run("NonMatchingExcluded", func(t *testing.T) {
		results, err := idx.Retrieve([]string{"quantum"}, 10)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, uint32(3), results[0].ID)
	})

	t.Run("NoMatchesAtAll", func(t *testing.T) {
		results, err := idx.Retrieve([]string{"zebra"}, 10)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("TopKTruncates", func(t *testing.T) {
		results, err := idx.Retrieve([]string{"the", "cat"}, 1)
		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("EmptyQuery", func(t *testing.T) {
		_, err := idx.Retrieve(nil, 10)
		assert.ErrorIs(t, err, model.ErrEmptyInput)
	})

	t.Run("EmptyIndex", func(t *testing.T) {
		_, err := New().Retrieve([]string{"cat"}, 10)
		assert.ErrorIs(t, err, model.ErrEmptyInput)
	})

	t.Run("InvalidK", func(t *testing.T) {
		_, err := idx.Retrieve([]string{"cat"}, 0)
		assert.ErrorIs(t, err, model.ErrInvalidK)
	})

	t.Run("Variants", func(t *testing.T) {
		std, err := idx.Retrieve([]string{"quantum"}, 10)
		require.NoError(t, err)
		require.Len(t, std, 1)

		// BM25L and BM25+ shift each matching term's TF score by delta, so
		// a single-term match gains exactly idf*delta over standard BM25.
		l, err := idx.Retrieve([]string{"quantum"}, 10, func(p *Params) {
			*p = BM25LParams()
		})
		require.NoError(t, err)
		require.Len(t, l, 1)
		assert.InDelta(t, float64(std[0].Score)+0.5*idx.IDF("quantum"), float64(l[0].Score), 1e-5)

		plus, err := idx.Retrieve([]string{"quantum"}, 10, func(p *Params) {
			*p = BM25PlusParams()
		})
		require.NoError(t, err)
		require.Len(t, plus, 1)
		assert.InDelta(t, float64(std[0].Score)+idx.IDF("quantum"), float64(plus[0].Score), 1e-5)
	})

	t.Run("CustomParams", func(t *testing.T) {
		// b=0 disables length normalization: doc2 ("cat" twice) must beat
		// doc0 ("cat" once) on raw term frequency.
		results, err := idx.Retrieve([]string{"cat"}, 10, func(p *Params) {
			p.B = 0
		})
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, uint32(2), results[0].ID)
	})
}

func TestRetrieveTFIDF(t *testing.T) {
	idx := newTestIndex()

	t.Run("RankedDescending", func(t *testing.T) {
		results, err := idx.RetrieveTFIDF([]string{"cat"}, 10)
		require.NoError(t, err)
		require.Len(t, results, 2)

		// Log-scaled TF: doc2 has tf=2 and is shorter, ranks first.
		assert.Equal(t, uint32(2), results[0].ID)
		assert.Greater(t, results[0].Score, results[1].Score)
	})

	t.Run("LinearTF", func(t *testing.T) {
		score2 := idx.ScoreTFIDF(2, []string{"cat"}, func(p *TFIDFParams) {
			p.TF = TFLinear
		})
		score0 := idx.ScoreTFIDF(0, []string{"cat"}, func(p *TFIDFParams) {
			p.TF = TFLinear
		})
		assert.InDelta(t, 2*score0, score2, 1e-9)
	})

	t.Run("SmoothedIDFIsPositive", func(t *testing.T) {
		score := idx.ScoreTFIDF(0, []string{"the"}, func(p *TFIDFParams) {
			p.IDF = IDFSmoothed
		})
		assert.Greater(t, score, 0.0)
	})

	t.Run("EmptyQuery", func(t *testing.T) {
		_, err := idx.RetrieveTFIDF(nil, 10)
		assert.ErrorIs(t, err, model.ErrEmptyInput)
	})
}

func TestStats(t *testing.T) {
	idx := newTestIndex()

	stats := idx.Stats()
	assert.Equal(t, 4, stats.DocCount)
	assert.InDelta(t, 14.0/4.0, stats.AvgDocLength, 1e-9)
	assert.Greater(t, stats.TermCount, 0)
}

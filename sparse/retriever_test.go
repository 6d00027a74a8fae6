package sparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/rankgo/model"
)

func TestRetriever(t *testing.T) {
	t.Run("Retrieve", func(t *testing.T) {
		r := NewRetriever()
		r.AddDocument(0, NewUnchecked([]uint32{0, 1, 2}, []float32{1.0, 0.5, 0.3}))
		r.AddDocument(1, NewUnchecked([]uint32{1, 2, 3}, []float32{0.8, 0.6, 0.4}))
		r.AddDocument(2, NewUnchecked([]uint32{5}, []float32{2.0}))

		query := NewUnchecked([]uint32{1, 2}, []float32{1.0, 1.0})

		results, err := r.Retrieve(query, 2)
		require.NoError(t, err)
		require.Len(t, results, 2)

		// doc1: 0.8+0.6=1.4, doc0: 0.5+0.3=0.8, doc2: 0
		assert.Equal(t, uint32(1), results[0].ID)
		assert.InDelta(t, 1.4, results[0].Score, 1e-6)
		assert.Equal(t, uint32(0), results[1].ID)
	})

	t.Run("Score", func(t *testing.T) {
		r := NewRetriever()
		r.AddDocument(7, NewUnchecked([]uint32{1, 3}, []float32{2.0, 1.0}))

		score, ok := r.Score(7, NewUnchecked([]uint32{3}, []float32{0.5}))
		require.True(t, ok)
		assert.InDelta(t, 0.5, score, 1e-6)

		_, ok = r.Score(99, NewUnchecked([]uint32{3}, []float32{0.5}))
		assert.False(t, ok)
	})

	t.Run("ReplaceOnReinsert", func(t *testing.T) {
		r := NewRetriever()
		r.AddDocument(0, NewUnchecked([]uint32{1}, []float32{1.0}))
		r.AddDocument(0, NewUnchecked([]uint32{1}, []float32{3.0}))

		assert.Equal(t, 1, r.Len())

		score, ok := r.Score(0, NewUnchecked([]uint32{1}, []float32{1.0}))
		require.True(t, ok)
		assert.InDelta(t, 3.0, score, 1e-6)
	})

	t.Run("EmptyQuery", func(t *testing.T) {
		r := NewRetriever()
		r.AddDocument(0, NewUnchecked([]uint32{1}, []float32{1.0}))

		_, err := r.Retrieve(NewUnchecked(nil, nil), 5)
		assert.ErrorIs(t, err, model.ErrEmptyInput)
	})

	t.Run("EmptyIndex", func(t *testing.T) {
		r := NewRetriever()

		_, err := r.Retrieve(NewUnchecked([]uint32{1}, []float32{1.0}), 5)
		assert.ErrorIs(t, err, model.ErrEmptyInput)
	})

	t.Run("InvalidK", func(t *testing.T) {
		r := NewRetriever()
		r.AddDocument(0, NewUnchecked([]uint32{1}, []float32{1.0}))

		_, err := r.Retrieve(NewUnchecked([]uint32{1}, []float32{1.0}), 0)
		assert.ErrorIs(t, err, model.ErrInvalidK)
	})
}

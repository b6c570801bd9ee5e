package scoring

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestCollector_SetRating(t *testing.T) {
	collector := NewCollector()

	err := collector.SetRating("prep_1", 3)
	assert.NoError(t, err)

	rating, ok := collector.Rating("prep_1")
	assert.True(t, ok)
	assert.Equal(t, 3, rating)

	// Sobrescrever a nota de um item é permitido
	err = collector.SetRating("prep_1", 4)
	assert.NoError(t, err)

	rating, _ = collector.Rating("prep_1")
	assert.Equal(t, 4, rating)
}

func TestCollector_SetRatingForaDoIntervalo(t *testing.T) {
	collector := NewCollector()

	for _, rating := range []int{0, -1, 5} {
		err := collector.SetRating("prep_1", rating)
		assert.True(t, errors.Is(err, ErrRatingOutOfRange))
	}

	_, ok := collector.Rating("prep_1")
	assert.False(t, ok)
	assert.Equal(t, 0, collector.Len())
}

func TestCollector_Clear(t *testing.T) {
	collector := NewCollector()

	assert.NoError(t, collector.SetRating("prep_1", 2))
	assert.NoError(t, collector.SetRating("prob_1", 4))
	collector.SetExample("prep_1", "apresentou o portfólio completo")

	assert.Equal(t, 2, collector.Len())
	assert.Equal(t, "apresentou o portfólio completo", collector.Example("prep_1"))

	collector.Clear()

	assert.Equal(t, 0, collector.Len())
	assert.Equal(t, "", collector.Example("prep_1"))
}

func TestCollector_CopiasIndependentes(t *testing.T) {
	collector := NewCollector()
	assert.NoError(t, collector.SetRating("prep_1", 2))

	ratings := collector.Ratings()
	ratings["prep_1"] = 4

	original, _ := collector.Rating("prep_1")
	assert.Equal(t, 2, original)
}

package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProducts(t *testing.T) {
	p := NewStaticProvider()

	products := p.ListProducts()
	assert.Len(t, products, 6)

	for _, prod := range products {
		assert.NotEmpty(t, prod.ID)
		assert.Greater(t, prod.Price, 0.0)
		assert.Equal(t, "SAR", prod.Currency)
	}
}

func TestGetProduct(t *testing.T) {
	p := NewStaticProvider()

	prod, ok := p.GetProduct("proj_003")
	require.True(t, ok)
	assert.Equal(t, "Personal Training - 12 Sessions", prod.Name)
	assert.Equal(t, 12, prod.NumberOfClasses)

	_, ok = p.GetProduct("proj_999")
	assert.False(t, ok)
}

func TestListByCategory(t *testing.T) {
	p := NewStaticProvider()

	pilates := p.ListByCategory(CategoryPilates)
	assert.Len(t, pilates, 2)
	for _, prod := range pilates {
		assert.Equal(t, CategoryPilates, prod.Category)
	}

	wellness := p.ListByCategory(CategoryWellness)
	assert.Empty(t, wellness)
}

func TestParseCategory(t *testing.T) {
	category, err := ParseCategory("Yoga")
	require.NoError(t, err)
	assert.Equal(t, CategoryYoga, category)

	_, err = ParseCategory("swimming")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestProductWithoutTrainer(t *testing.T) {
	p := NewStaticProvider()

	prod, ok := p.GetProduct("proj_004")
	require.True(t, ok)
	assert.Nil(t, prod.Trainer)
}

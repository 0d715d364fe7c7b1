package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	t.Run("primera pagina con mas paginas", func(t *testing.T) {
		p := NewPagination(1, 10, 25)
		assert.Equal(t, 1, p.CurrentPage)
		assert.Equal(t, 3, p.TotalPages)
		assert.Equal(t, int64(25), p.TotalItems)
		require.NotNil(t, p.NextPage)
		assert.Equal(t, 2, *p.NextPage)
		assert.Nil(t, p.PreviousPage)
	})

	t.Run("ultima pagina", func(t *testing.T) {
		p := NewPagination(3, 10, 25)
		assert.Nil(t, p.NextPage)
		require.NotNil(t, p.PreviousPage)
		assert.Equal(t, 2, *p.PreviousPage)
	})

	t.Run("total exacto", func(t *testing.T) {
		p := NewPagination(2, 10, 20)
		assert.Equal(t, 2, p.TotalPages)
		assert.Nil(t, p.NextPage)
	})

	t.Run("sin resultados", func(t *testing.T) {
		p := NewPagination(1, 10, 0)
		assert.Equal(t, 0, p.TotalPages)
		assert.Nil(t, p.NextPage)
		assert.Nil(t, p.PreviousPage)
	})
}

func TestPageRequestDefaults(t *testing.T) {
	var p PageRequest
	p.DefaultPage()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)

	p = PageRequest{Page: 4, Limit: 50}
	p.DefaultPage()
	assert.Equal(t, 4, p.Page)
	assert.Equal(t, 50, p.Limit)
}

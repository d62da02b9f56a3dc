package scratch

import (
	"errors"
	"sync"
	"testing"

	dom "github.com/cuihairu/labcatalog/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue(t *testing.T) {
	s := NewStore()
	_, ok := s.Number.Get()
	assert.False(t, ok)
	s.Number.Set(42)
	v, ok := s.Number.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	s.Number.Clear()
	_, ok = s.Number.Get()
	assert.False(t, ok)

	s.Boolean.Set(false)
	b, ok := s.Boolean.Get()
	assert.True(t, ok)
	assert.False(t, b)
}

func TestListIndexing(t *testing.T) {
	var l List[string]
	assert.Equal(t, 1, l.Add("b"))
	n, err := l.InsertAt(0, "a")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	_, err = l.InsertAt(2, "c") // append position
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, l.All())

	got, err := l.At(1)
	require.NoError(t, err)
	assert.Equal(t, "b", got)

	for _, idx := range []int{-1, 3} {
		_, err = l.At(idx)
		var verr *dom.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "index", verr.Field)
	}
	n, err = l.InsertAt(5, "z")
	assert.True(t, errors.Is(err, dom.ErrValidation))
	assert.Equal(t, 3, n)

	l.Clear()
	assert.Empty(t, l.All())
	assert.Equal(t, 0, l.Len())
}

func TestStringSetRejectsDuplicates(t *testing.T) {
	var s StringSet
	n, err := s.Add("x")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	_, err = s.Add("y")
	require.NoError(t, err)
	n, err = s.Add("x")
	assert.True(t, errors.Is(err, dom.ErrConflict))
	assert.Equal(t, "String 'x' already exists in the set", err.Error())
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"x", "y"}, s.All())
	s.Clear()
	_, err = s.Add("x")
	assert.NoError(t, err)
}

func TestBoolCounter(t *testing.T) {
	var c BoolCounter
	assert.Empty(t, c.Counts())
	c.Add(true)
	c.Add(true)
	assert.Equal(t, 3, c.Add(false))
	assert.Equal(t, map[string]int{"true": 2, "false": 1}, c.Counts())
	c.Clear()
	assert.Equal(t, 0, c.Total())
}

func TestConcurrentAdds(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Numbers.Add(i)
			s.BooleanMap.Add(i%2 == 0)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, s.Numbers.Len())
	assert.Equal(t, 50, s.BooleanMap.Total())
	s.Reset()
	assert.Equal(t, 0, s.Numbers.Len())
}

func TestCoerce(t *testing.T) {
	n, err := CoerceInt("12")
	require.NoError(t, err)
	assert.Equal(t, 12, n)
	n, err = CoerceInt(float64(7))
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	_, err = CoerceInt("1.5")
	assert.True(t, errors.Is(err, dom.ErrValidation))
	_, err = CoerceInt(1.5)
	assert.Error(t, err)

	b, err := CoerceBool("TRUE")
	require.NoError(t, err)
	assert.True(t, b)
	_, err = CoerceBool("yes")
	assert.Error(t, err)

	_, err = CoerceString(true)
	assert.Error(t, err)
}

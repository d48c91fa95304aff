package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_ZeroValueIsMissing(t *testing.T) {
	var v Value

	assert.Equal(t, KindMissing, v.Kind())
	assert.True(t, v.IsMissing())
}

func TestNewNumber(t *testing.T) {
	v := NewNumber(3.5)

	assert.Equal(t, KindNumber, v.Kind())
	assert.False(t, v.IsMissing())

	f, ok := v.Number()
	assert.True(t, ok)
	assert.Equal(t, 3.5, f)
}

func TestNewNumber_NaNIsMissing(t *testing.T) {
	v := NewNumber(math.NaN())

	assert.Equal(t, KindNumber, v.Kind())
	assert.True(t, v.IsMissing())
}

func TestNewText(t *testing.T) {
	v := NewText("hello")

	assert.Equal(t, KindText, v.Kind())
	assert.False(t, v.IsMissing())

	s, ok := v.Text()
	assert.True(t, ok)
	assert.Equal(t, "hello", s)
}

func TestNewText_EmptyStringIsMissing(t *testing.T) {
	v := NewText("")

	assert.Equal(t, KindMissing, v.Kind())
	assert.True(t, v.IsMissing())
}

func TestValue_Number_WrongKind(t *testing.T) {
	_, ok := NewText("abc").Number()
	assert.False(t, ok)

	_, ok = Missing().Number()
	assert.False(t, ok)
}

func TestValue_Text_WrongKind(t *testing.T) {
	_, ok := NewNumber(1).Text()
	assert.False(t, ok)

	_, ok = Missing().Text()
	assert.False(t, ok)
}

func TestValue_Int(t *testing.T) {
	t.Run("number truncates toward zero", func(t *testing.T) {
		n, ok := NewNumber(2.7).Int()
		assert.True(t, ok)
		assert.Equal(t, int64(2), n)

		n, ok = NewNumber(-2.7).Int()
		assert.True(t, ok)
		assert.Equal(t, int64(-2), n)
	})

	t.Run("integer text converts", func(t *testing.T) {
		n, ok := NewText("42").Int()
		assert.True(t, ok)
		assert.Equal(t, int64(42), n)
	})

	t.Run("non-integer text does not convert", func(t *testing.T) {
		_, ok := NewText("a").Int()
		assert.False(t, ok)

		_, ok = NewText("1.5").Int()
		assert.False(t, ok)
	})

	t.Run("missing does not convert", func(t *testing.T) {
		_, ok := Missing().Int()
		assert.False(t, ok)
	})

	t.Run("NaN and Inf do not convert", func(t *testing.T) {
		_, ok := NewNumber(math.NaN()).Int()
		assert.False(t, ok)

		_, ok = NewNumber(math.Inf(1)).Int()
		assert.False(t, ok)
	})
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "None", Missing().String())
	assert.Equal(t, "hello", NewText("hello").String())
	assert.Equal(t, "1.5", NewNumber(1.5).String())
	assert.Equal(t, "3", NewNumber(3).String())
}

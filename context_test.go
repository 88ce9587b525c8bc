package minilisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextCreate(t *testing.T) {
	newContext := NewContext()
	assert.NotNil(t, newContext)
	assert.Equal(t, 0, newContext.Len())
}

func TestContextSetGet(t *testing.T) {
	ctx := NewContext()

	{
		v, ok := ctx.Get("foo")
		assert.False(t, ok)
		assert.Nil(t, v)
	}

	{
		ctx.Set("foo", True)

		v, ok := ctx.Get("foo")
		assert.True(t, ok)
		assert.Equal(t, True, v)
	}

	{
		ctx.Set("foo", NewNumberValue(3))

		v, ok := ctx.Get("foo")
		assert.True(t, ok)
		assert.Equal(t, int64(3), v.Int())
		assert.Equal(t, 1, ctx.Len())
	}
}

func TestContextFalsyValues(t *testing.T) {
	ctx := NewContext()
	ctx.Set("zero", NewNumberValue(0))
	ctx.Set("no", False)

	v, ok := ctx.Get("zero")
	assert.True(t, ok)
	assert.Equal(t, int64(0), v.Int())

	v, ok = ctx.Get("no")
	assert.True(t, ok)
	assert.Equal(t, False, v)
}

func TestContextUndefined(t *testing.T) {
	ctx := NewContext()
	ctx.Set("foo", Undefined)
	ctx.Set("bar", nil)

	_, ok := ctx.Get("foo")
	assert.False(t, ok)

	_, ok = ctx.Get("bar")
	assert.False(t, ok)

	assert.Equal(t, 2, ctx.Len())
}

func TestContextClone(t *testing.T) {
	ctx := NewContext()
	ctx.Set("foo", True)

	newCtx := ctx.Clone()

	{
		v, ok := newCtx.Get("foo")
		assert.True(t, ok)
		assert.Equal(t, True, v)
	}

	{
		newCtx.Set("foo", False)
		newCtx.Set("bar", True)

		v, ok := ctx.Get("foo")
		assert.True(t, ok)
		assert.Equal(t, True, v)

		_, ok = ctx.Get("bar")
		assert.False(t, ok)
	}

	{
		ctx.Set("baz", True)

		_, ok := newCtx.Get("baz")
		assert.False(t, ok)
	}
}

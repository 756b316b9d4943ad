package languages_test

import (
	"testing"

	"github.com/dmitrymomot/languages"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueAccessors(t *testing.T) {
	t.Parallel()

	t.Run("string value", func(t *testing.T) {
		t.Parallel()
		v := languages.NewString("Hello world!")

		assert.True(t, v.IsString())
		assert.False(t, v.IsBoolean())
		assert.Equal(t, languages.KindString, v.Kind())

		s, err := v.GetString()
		require.NoError(t, err)
		assert.Equal(t, "Hello world!", s)
	})

	t.Run("integer value", func(t *testing.T) {
		t.Parallel()
		v := languages.NewInteger(42)

		assert.True(t, v.IsInteger())
		assert.False(t, v.IsFloat())

		i, err := v.GetInteger()
		require.NoError(t, err)
		assert.Equal(t, int64(42), i)
	})

	t.Run("float value", func(t *testing.T) {
		t.Parallel()
		v := languages.NewFloat(3.14)

		assert.True(t, v.IsFloat())

		f, err := v.GetFloat()
		require.NoError(t, err)
		assert.InDelta(t, 3.14, f, 0.0001)
	})

	t.Run("boolean value", func(t *testing.T) {
		t.Parallel()
		v := languages.NewBoolean(true)

		assert.True(t, v.IsBoolean())

		b, err := v.GetBoolean()
		require.NoError(t, err)
		assert.True(t, b)
	})

	t.Run("mapping value", func(t *testing.T) {
		t.Parallel()
		v := languages.NewMapping(map[string]languages.Value{
			"title": languages.NewString("Home page"),
		})

		assert.True(t, v.IsMapping())

		m, err := v.GetMapping()
		require.NoError(t, err)
		require.Contains(t, m, "title")
		assert.True(t, m["title"].Equal(languages.NewString("Home page")))
	})

	t.Run("sequence value", func(t *testing.T) {
		t.Parallel()
		v := languages.NewSequence([]languages.Value{
			languages.NewString("Message 1"),
			languages.NewString("Message 2"),
		})

		assert.True(t, v.IsSequence())

		s, err := v.GetSequence()
		require.NoError(t, err)
		require.Len(t, s, 2)
		assert.True(t, s[0].Equal(languages.NewString("Message 1")))
	})

	t.Run("wrong variant fails with type mismatch", func(t *testing.T) {
		t.Parallel()
		v := languages.NewBoolean(true)

		_, err := v.GetString()
		require.Error(t, err)
		assert.ErrorIs(t, err, languages.ErrTypeMismatch)

		_, err = v.GetInteger()
		assert.ErrorIs(t, err, languages.ErrTypeMismatch)

		_, err = v.GetMapping()
		assert.ErrorIs(t, err, languages.ErrTypeMismatch)

		_, err = v.GetSequence()
		assert.ErrorIs(t, err, languages.ErrTypeMismatch)
	})
}

func TestValueEqual(t *testing.T) {
	t.Parallel()

	t.Run("same variant and contents", func(t *testing.T) {
		t.Parallel()
		assert.True(t, languages.NewString("Hi").Equal(languages.NewString("Hi")))
		assert.True(t, languages.NewInteger(1).Equal(languages.NewInteger(1)))
		assert.True(t, languages.NewBoolean(false).Equal(languages.NewBoolean(false)))
	})

	t.Run("different contents", func(t *testing.T) {
		t.Parallel()
		assert.False(t, languages.NewString("Hi").Equal(languages.NewString("Bye")))
		assert.False(t, languages.NewInteger(1).Equal(languages.NewInteger(2)))
	})

	t.Run("different variants", func(t *testing.T) {
		t.Parallel()
		assert.False(t, languages.NewString("1").Equal(languages.NewInteger(1)))
		assert.False(t, languages.NewInteger(1).Equal(languages.NewFloat(1)))
	})

	t.Run("nested structures", func(t *testing.T) {
		t.Parallel()
		a := languages.NewMapping(map[string]languages.Value{
			"messages": languages.NewSequence([]languages.Value{
				languages.NewString("Message 1"),
			}),
		})
		b := languages.NewMapping(map[string]languages.Value{
			"messages": languages.NewSequence([]languages.Value{
				languages.NewString("Message 1"),
			}),
		})
		c := languages.NewMapping(map[string]languages.Value{
			"messages": languages.NewSequence([]languages.Value{
				languages.NewString("Message 2"),
			}),
		})

		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(c))
	})
}

func TestValueString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Hello world!", languages.NewString("Hello world!").String())
	assert.Equal(t, "42", languages.NewInteger(42).String())
	assert.Equal(t, "true", languages.NewBoolean(true).String())

	seq := languages.NewSequence([]languages.Value{
		languages.NewString("a"),
		languages.NewString("b"),
	})
	assert.Equal(t, "[a, b]", seq.String())

	mapping := languages.NewMapping(map[string]languages.Value{
		"b": languages.NewString("2"),
		"a": languages.NewString("1"),
	})
	assert.Equal(t, "{ a: 1, b: 2 }", mapping.String())
}

func TestValueImmutability(t *testing.T) {
	t.Parallel()

	t.Run("mapping input is copied", func(t *testing.T) {
		t.Parallel()
		src := map[string]languages.Value{"key": languages.NewString("old")}
		v := languages.NewMapping(src)

		src["key"] = languages.NewString("new")

		m, err := v.GetMapping()
		require.NoError(t, err)
		assert.True(t, m["key"].Equal(languages.NewString("old")))
	})

	t.Run("accessor result is a copy", func(t *testing.T) {
		t.Parallel()
		v := languages.NewMapping(map[string]languages.Value{
			"key": languages.NewString("old"),
		})

		m, err := v.GetMapping()
		require.NoError(t, err)
		m["key"] = languages.NewString("new")

		again, err := v.GetMapping()
		require.NoError(t, err)
		assert.True(t, again["key"].Equal(languages.NewString("old")))
	})
}

package url_test

import (
	"testing"

	"github.com/corewhatwg/url"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLSearchParamsParsing(t *testing.T) {
	t.Parallel()

	p := url.NewURLSearchParams("?a=1&b=2&a=3")

	assert.Equal(t, 3, p.Size())
	assert.Equal(t, []string{"1", "3"}, p.GetAll("a"))

	v, ok := p.Get("b")
	require.True(t, ok)
	assert.Equal(t, "2", v)
}

func TestURLSearchParamsAppendAndDelete(t *testing.T) {
	t.Parallel()

	p := url.NewURLSearchParams("")

	p.Append("x", "1")
	p.Append("y", "2")
	p.Append("x", "3")

	assert.Equal(t, []string{"1", "3"}, p.GetAll("x"))

	p.Delete("x", nil)
	assert.Equal(t, 1, p.Size())
	assert.False(t, p.Has("x", nil))
}

func TestURLSearchParamsDeleteByValue(t *testing.T) {
	t.Parallel()

	p := url.NewURLSearchParams("x=1&x=2")

	v := "1"
	p.Delete("x", &v)

	assert.Equal(t, []string{"2"}, p.GetAll("x"))
}

func TestURLSearchParamsSet(t *testing.T) {
	t.Parallel()

	p := url.NewURLSearchParams("a=1&b=2&a=3")

	p.Set("a", "9")

	assert.Equal(t, [][2]string{{"a", "9"}, {"b", "2"}}, p.Entries())
}

func TestURLSearchParamsSort(t *testing.T) {
	t.Parallel()

	p := url.NewURLSearchParams("c=3&a=1&b=2")

	p.Sort()

	assert.Equal(t, []string{"a", "b", "c"}, p.Keys())
}

func TestURLSearchParamsString(t *testing.T) {
	t.Parallel()

	p := url.NewURLSearchParams("")
	p.Append("name", "jane doe")
	p.Append("tag", "a+b")

	assert.Equal(t, "name=jane+doe&tag=a%2Bb", p.String())
}

func TestURLSearchParamsForEach(t *testing.T) {
	t.Parallel()

	p := url.NewURLSearchParams("a=1&b=2")

	var keys []string

	p.ForEach(func(key, _ string) {
		keys = append(keys, key)
	})

	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestNewURLSearchParamsFromEntries(t *testing.T) {
	t.Parallel()

	p := url.NewURLSearchParamsFromEntries([][2]string{{"a", "1"}, {"b", "2"}})

	assert.Equal(t, "a=1&b=2", p.String())
}

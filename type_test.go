// FILE: lixenwraith/parseit/type_test.go
package parseit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/parseit"
)

func TestTypedAccessors(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"app.json": `{
			"name": "svc",
			"port": 8080,
			"ratio": 0.25,
			"debug": true,
			"tags": ["a", "b"],
			"nothing": null,
			"obj": {"k": "v"}
		}`,
	})

	r := newResolver(t, dir, func(o *parseit.Options) {
		o.Priority = []parseit.Source{parseit.SourceCLI, parseit.SourceJSON}
		o.Args = []string{
			"--timeout", "1m30s",
			"--hosts", "a.local, b.local",
			"--count", "12",
			"--word", "hello",
		}
	})

	t.Run("String", func(t *testing.T) {
		s, err := r.String("name")
		require.NoError(t, err)
		assert.Equal(t, "svc", s)

		s, err = r.String("port")
		require.NoError(t, err)
		assert.Equal(t, "8080", s)

		s, err = r.String("nothing")
		require.NoError(t, err)
		assert.Empty(t, s)

		s, err = r.String("missing", parseit.WithDefault("fallback"))
		require.NoError(t, err)
		assert.Equal(t, "fallback", s)
	})

	t.Run("Int64", func(t *testing.T) {
		i, err := r.Int64("port")
		require.NoError(t, err)
		assert.Equal(t, int64(8080), i)

		i, err = r.Int64("count")
		require.NoError(t, err)
		assert.Equal(t, int64(12), i)

		i, err = r.Int64("ratio")
		require.NoError(t, err)
		assert.Equal(t, int64(0), i)

		_, err = r.Int64("word")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "word")

		_, err = r.Int64("nothing")
		assert.Error(t, err)
	})

	t.Run("Float64", func(t *testing.T) {
		f, err := r.Float64("ratio")
		require.NoError(t, err)
		assert.Equal(t, 0.25, f)

		f, err = r.Float64("port")
		require.NoError(t, err)
		assert.Equal(t, 8080.0, f)
	})

	t.Run("Bool", func(t *testing.T) {
		b, err := r.Bool("debug")
		require.NoError(t, err)
		assert.True(t, b)

		b, err = r.Bool("missing", parseit.WithDefault(0))
		require.NoError(t, err)
		assert.False(t, b)

		_, err = r.Bool("word")
		assert.Error(t, err)
	})

	t.Run("Duration", func(t *testing.T) {
		d, err := r.Duration("timeout")
		require.NoError(t, err)
		assert.Equal(t, 90*time.Second, d)
	})

	t.Run("StringSlice", func(t *testing.T) {
		s, err := r.StringSlice("hosts")
		require.NoError(t, err)
		assert.Equal(t, []string{"a.local", "b.local"}, s)

		s, err = r.StringSlice("tags")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, s)

		s, err = r.StringSlice("nothing")
		require.NoError(t, err)
		assert.Nil(t, s)
	})

	t.Run("RequiredPropagates", func(t *testing.T) {
		_, err := r.String("missing", parseit.Required())
		assert.ErrorIs(t, err, parseit.ErrMissingRequired)
	})

	t.Run("ConversionFailure", func(t *testing.T) {
		_, err := r.Int64("obj")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, parseit.ErrMissingRequired)
	})
}

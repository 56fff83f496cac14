// FILE: lixenwraith/parseit/convenience_test.go
package parseit_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/parseit"
)

// TestQuickFunctions tests the convenience Quick* functions
func TestQuickFunctions(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"quick.toml": "quick_host = \"quickhost\"\nquick_port = 7777\n",
	})

	t.Run("Quick", func(t *testing.T) {
		t.Setenv("QUICKTEST_QUICK_PORT", "8888")

		r, err := parseit.Quick(dir, "QUICKTEST_")
		require.NoError(t, err)
		assert.Equal(t, dir, r.Folder())
		assert.Equal(t, parseit.DefaultPriority(), r.Priority())

		host, err := r.Resolve("quick_host")
		require.NoError(t, err)
		assert.Equal(t, "quickhost", host)

		port, err := r.Resolve("quick_port")
		require.NoError(t, err)
		assert.Equal(t, int64(8888), port)
	})

	t.Run("MustQuickPanics", func(t *testing.T) {
		assert.Panics(t, func() {
			parseit.MustQuick(filepath.Join(dir, "missing"), "")
		})
	})

	t.Run("MustQuick", func(t *testing.T) {
		assert.NotPanics(t, func() {
			r := parseit.MustQuick(dir, "QUICKTEST_")
			assert.NotNil(t, r)
		})
	})
}

func TestTrace(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.json":      `{"level": "json-a"}`,
		"b.json":      `{"other": 1}`,
		"conf/c.toml": "level = \"toml-c\"\n",
	})
	t.Setenv("TRACETEST_LEVEL", "env")

	r := newResolver(t, dir, func(o *parseit.Options) {
		o.EnvPrefix = "TRACETEST_"
		o.Args = []string{"--level", "cli"}
	})

	t.Run("EverySourceInOrder", func(t *testing.T) {
		results, err := r.Trace("level")
		require.NoError(t, err)
		require.Len(t, results, 4)

		assert.Equal(t, parseit.SourceCLI, results[0].Source)
		assert.Equal(t, "level", results[0].Origin)
		assert.Equal(t, parseit.SourceEnv, results[1].Source)
		assert.Equal(t, "TRACETEST_LEVEL", results[1].Origin)
		assert.Equal(t, parseit.SourceJSON, results[2].Source)
		assert.Equal(t, "a.json", results[2].Origin)
		assert.Equal(t, parseit.SourceTOML, results[3].Source)
		assert.Equal(t, filepath.Join("conf", "c.toml"), results[3].Origin)
		assert.Equal(t, "toml-c", results[3].Value)

		for _, res := range results {
			assert.True(t, res.Found)
		}
	})

	t.Run("FirstMatchesLookup", func(t *testing.T) {
		results, err := r.Trace("level")
		require.NoError(t, err)
		res, err := r.Lookup("level")
		require.NoError(t, err)
		assert.Equal(t, results[0], res)
	})

	t.Run("Undefined", func(t *testing.T) {
		results, err := r.Trace("nothing_here")
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("EmptyKey", func(t *testing.T) {
		_, err := r.Trace("")
		assert.ErrorIs(t, err, parseit.ErrInvalidKey)
	})
}

func TestExplain(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"app.yaml": "mode: yaml\n",
	})

	r := newResolver(t, dir, func(o *parseit.Options) {
		o.EnvPrefix = "EXPLAINTEST_"
		o.Args = []string{"--mode=cli"}
	})

	out := r.Explain("mode")
	assert.Contains(t, out, "mode:\n")
	assert.Contains(t, out, "* cli_args (mode): cli")
	assert.Contains(t, out, "  yaml (app.yaml): yaml")

	assert.Equal(t, "absent: not defined in any source\n", r.Explain("absent"))
	assert.Contains(t, r.Explain(""), "error:")
}

func TestDebug(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"one.json":       `{}`,
		"nested/two.ini": "a = 1\n",
	})

	r := newResolver(t, dir, func(o *parseit.Options) {
		o.Priority = []parseit.Source{parseit.SourceINI, parseit.SourceCLI, parseit.SourceJSON, parseit.SourceINI}
		o.EnvPrefix = "DBG_"
		o.GlobalDefault = "fallback"
		o.Args = []string{"--zeta", "1", "--alpha"}
	})

	out := r.Debug()
	assert.Contains(t, out, "Resolver Debug Info:")
	assert.Contains(t, out, "Folder: "+dir+" (recurse: true)")
	assert.Contains(t, out, `Env prefix: "DBG_" (uppercase: true)`)
	assert.Contains(t, out, "Type estimate: true")
	assert.Contains(t, out, "Global default: fallback")
	assert.Contains(t, out, "CLI flags: [alpha zeta]")
	assert.Contains(t, out, "  json: 1\n    one.json\n")
	assert.Contains(t, out, "  ini: 1\n    "+filepath.Join("nested", "two.ini")+"\n")

	// duplicated priority entries list their files once
	assert.Equal(t, 1, strings.Count(out, "  ini: 1"))
}

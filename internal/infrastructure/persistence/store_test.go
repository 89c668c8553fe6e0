package persistence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testDoc struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Price float64 `json:"price"`
}

func TestResource_Load(t *testing.T) {
	t.Run("missing file returns default", func(t *testing.T) {
		res := NewResource[testDoc](filepath.Join(t.TempDir(), "missing.json"), zap.NewNop())

		def := testDoc{Name: "fallback", Count: 7}
		assert.Equal(t, def, res.Load(def))
	})

	t.Run("malformed content returns default", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
		res := NewResource[testDoc](path, zap.NewNop())

		def := testDoc{Name: "fallback"}
		assert.Equal(t, def, res.Load(def))
	})

	t.Run("valid document round-trips", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "doc.json")
		res := NewResource[testDoc](path, zap.NewNop())

		doc := testDoc{Name: "Mug", Count: 3, Price: 5.0}
		require.NoError(t, res.Save(doc))
		assert.Equal(t, doc, res.Load(testDoc{}))
	})

	t.Run("externally edited file with extra keys still loads", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "doc.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"name":"Mug","extra":true}`), 0644))
		res := NewResource[testDoc](path, zap.NewNop())

		loaded := res.Load(testDoc{})
		assert.Equal(t, "Mug", loaded.Name)
		assert.Equal(t, 0, loaded.Count)
	})
}

func TestResource_Save(t *testing.T) {
	t.Run("creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "doc.json")
		res := NewResource[testDoc](path, zap.NewNop())

		require.NoError(t, res.Save(testDoc{Name: "Mug"}))
		assert.FileExists(t, path)
	})

	t.Run("write failure is returned, not fatal", func(t *testing.T) {
		dir := t.TempDir()
		// The resource path collides with an existing directory.
		path := filepath.Join(dir, "blocked")
		require.NoError(t, os.Mkdir(path, 0755))
		res := NewResource[testDoc](path, zap.NewNop())

		assert.Error(t, res.Save(testDoc{Name: "Mug"}))
	})
}

func TestResource_IsCanonical(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	res := NewResource[testDoc](path, zap.NewNop())
	doc := testDoc{Name: "Mug", Count: 1}

	t.Run("missing file is not canonical", func(t *testing.T) {
		assert.False(t, res.IsCanonical(doc))
	})

	t.Run("saved document is canonical", func(t *testing.T) {
		require.NoError(t, res.Save(doc))
		assert.True(t, res.IsCanonical(doc))
	})

	t.Run("hand-edited document is not canonical", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte(`{"name":"Mug","count":1,"price":0}`), 0644))
		assert.False(t, res.IsCanonical(doc))
	})
}

func TestReadText(t *testing.T) {
	t.Run("reads file content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "license.txt")
		require.NoError(t, os.WriteFile(path, []byte("PRO_ALL-1"), 0644))

		content, err := ReadText(path)
		require.NoError(t, err)
		assert.Equal(t, "PRO_ALL-1", content)
	})

	t.Run("absent file reports os.ErrNotExist", func(t *testing.T) {
		_, err := ReadText(filepath.Join(t.TempDir(), "absent.txt"))

		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

package media

import (
	"bytes"
	"mime/multipart"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("media", filename)
	assert.NoError(t, err)
	_, err = fw.Write([]byte(content))
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	assert.NoError(t, err)
	return form.File["media"][0]
}

func TestSaveTemp(t *testing.T) {
	fh := makeFileHeader(t, "picked.png", "contenu du fichier")

	path, err := SaveTemp(fh)
	assert.NoError(t, err)
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "contenu du fichier", string(data))
}

func TestSaveTempSameFilenameDistinctPaths(t *testing.T) {
	// Deux clients peuvent envoyer "photo.png" en même temps : chaque
	// requête doit obtenir son propre fichier temporaire
	first := makeFileHeader(t, "photo.png", "premier")
	second := makeFileHeader(t, "photo.png", "second")

	firstPath, err := SaveTemp(first)
	assert.NoError(t, err)
	defer os.Remove(firstPath)

	secondPath, err := SaveTemp(second)
	assert.NoError(t, err)
	defer os.Remove(secondPath)

	assert.NotEqual(t, firstPath, secondPath)

	firstData, _ := os.ReadFile(firstPath)
	secondData, _ := os.ReadFile(secondPath)
	assert.Equal(t, "premier", string(firstData))
	assert.Equal(t, "second", string(secondData))
}

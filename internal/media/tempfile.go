package media

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// SaveTemp copie un fichier multipart vers un fichier temporaire au chemin
// unique (deux requêtes simultanées portant le même nom de fichier ne se
// marchent pas dessus). L'appelant supprime le fichier après usage.
func SaveTemp(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("ouverture du média reçu: %w", err)
	}
	defer src.Close()

	dst, err := os.CreateTemp("", "upload-*"+filepath.Ext(fh.Filename))
	if err != nil {
		return "", fmt.Errorf("création du fichier temporaire: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("copie du média reçu: %w", err)
	}
	return dst.Name(), nil
}

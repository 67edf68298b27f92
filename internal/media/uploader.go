package media

import (
	"context"
	"fmt"
	"os"
	"time"
)

// ObjectStore est le contrat minimal attendu du stockage d'objets.
// Put doit échouer si la clé existe déjà (pas d'écrasement).
type ObjectStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
}

// UploadError : échec de mise en stockage (réseau, quota ou collision de
// clé). L'appelant doit abandonner l'opération en cours, rien n'est rejoué.
type UploadError struct {
	Key string
	Err error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload échoué (%s): %v", e.Key, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// Uploader pousse un fichier local vers le stockage d'objets et retourne
// sa clé durable.
type Uploader struct {
	Store ObjectStore

	// Surchageables en test ; nil = valeurs réelles.
	Now      func() time.Time
	ReadFile func(string) ([]byte, error)
}

func NewUploader(store ObjectStore) *Uploader {
	return &Uploader{Store: store}
}

// Upload lit le fichier entier en mémoire puis fait un unique PUT non
// repris vers "/<dossier>/<millis>.<ext>". L'extension est fixée par le
// type déclaré (png pour image, mp4 sinon), jamais sniffée depuis le
// contenu. Deux uploads dans la même milliseconde depuis le même process
// entrent en collision : le second PUT échoue (upsert=false), risque connu
// et accepté.
func (u *Uploader) Upload(ctx context.Context, folder string, file LocalFile) (RemoteKey, error) {
	readFile := u.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}

	data, err := readFile(file.Path)
	if err != nil {
		return RemoteKey{}, &UploadError{Key: file.Path, Err: err}
	}

	key := u.filePath(folder, file.Kind())

	contentType := "video/*"
	if file.Kind() == KindImage {
		contentType = "image/*"
	}

	if err := u.Store.Put(ctx, key, data, contentType); err != nil {
		return RemoteKey{}, &UploadError{Key: key, Err: err}
	}
	return RemoteKey{Key: key}, nil
}

func (u *Uploader) filePath(folder string, kind Kind) string {
	now := u.Now
	if now == nil {
		now = time.Now
	}
	ext := ".mp4"
	if kind == KindImage {
		ext = ".png"
	}
	return fmt.Sprintf("/%s/%d%s", folder, now().UnixMilli(), ext)
}

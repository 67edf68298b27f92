package media

import (
	"fmt"
	"strings"
)

type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// Dossiers de stockage. Le nom du dossier est la seule source de vérité
// pour retrouver le type d'un média déjà stocké (voir RemoteKey.Kind).
const (
	FolderPostImages = "postImages"
	FolderPostVideos = "postVideos"
	FolderProfiles   = "profiles"
)

// Ref référence un média : soit un fichier local fraîchement choisi
// (pas encore durable), soit une clé d'objet déjà stockée.
// L'interface est scellée : les deux seuls cas sont LocalFile et RemoteKey.
type Ref interface {
	Kind() Kind
	isRef()
}

// LocalFile : fichier sur le disque local, produit par le sélecteur de
// médias. Path est directement affichable par la couche de présentation.
type LocalFile struct {
	Path     string
	FileKind Kind
}

func (LocalFile) isRef() {}

func (f LocalFile) Kind() Kind { return f.FileKind }

// RemoteKey : clé d'objet durable, ex. "/postImages/1712345678901.png".
type RemoteKey struct {
	Key string
}

func (RemoteKey) isRef() {}

// Kind déduit le type depuis le segment de dossier de la clé : "postImages"
// => image, tout le reste => vidéo. Une clé mal rangée sera mal classée ;
// l'heuristique est conservée telle quelle car c'est le seul discriminant
// disponible pour les médias déjà stockés.
func (r RemoteKey) Kind() Kind {
	if strings.Contains(r.Key, FolderPostImages) {
		return KindImage
	}
	return KindVideo
}

// Resolver construit les URI affichables à partir d'une Ref.
type Resolver struct {
	BaseURL string // URL du projet Supabase, sans slash final
	Bucket  string
}

// URI retourne l'adresse affichable du média : le chemin local tel quel
// pour un LocalFile, l'URL publique du bucket pour une RemoteKey.
// Aucune requête réseau : construction de chaîne pure.
// Retourne "" quand ref est absente.
func (rv Resolver) URI(ref Ref) string {
	switch r := ref.(type) {
	case LocalFile:
		return r.Path
	case RemoteKey:
		if r.Key == "" {
			return ""
		}
		return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
			strings.TrimSuffix(rv.BaseURL, "/"),
			rv.Bucket,
			strings.TrimPrefix(r.Key, "/"))
	}
	return ""
}

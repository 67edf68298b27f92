package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoteKeyKind(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected Kind
	}{
		{
			name:     "Post image key",
			key:      "/postImages/1712345678901.png",
			expected: KindImage,
		},
		{
			name:     "Post video key",
			key:      "/postVideos/1712345678901.mp4",
			expected: KindVideo,
		},
		{
			name:     "Unknown folder falls back to video",
			key:      "/profiles/1712345678901.png",
			expected: KindVideo,
		},
		{
			name:     "Key without folder falls back to video",
			key:      "whatever.bin",
			expected: KindVideo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RemoteKey{Key: tt.key}.Kind())
		})
	}
}

func TestLocalFileKind(t *testing.T) {
	assert.Equal(t, KindImage, LocalFile{Path: "/tmp/a.heic", FileKind: KindImage}.Kind())
	assert.Equal(t, KindVideo, LocalFile{Path: "/tmp/b.mov", FileKind: KindVideo}.Kind())
}

func TestClassification(t *testing.T) {
	// Le type de la Ref suffit à distinguer local/distant, sans inspection
	var local Ref = LocalFile{Path: "/tmp/picked.png", FileKind: KindImage}
	var remote Ref = RemoteKey{Key: "/postImages/1.png"}

	_, isLocal := local.(LocalFile)
	assert.True(t, isLocal)

	_, isRemote := remote.(RemoteKey)
	assert.True(t, isRemote)
}

func TestResolverURI(t *testing.T) {
	resolver := Resolver{BaseURL: "https://project.supabase.co", Bucket: "uploads"}

	tests := []struct {
		name     string
		ref      Ref
		expected string
	}{
		{
			name:     "Local file resolves to its own path",
			ref:      LocalFile{Path: "/data/user/0/cache/picked.png", FileKind: KindImage},
			expected: "/data/user/0/cache/picked.png",
		},
		{
			name:     "Remote key resolves to public bucket URL",
			ref:      RemoteKey{Key: "/postImages/1712345678901.png"},
			expected: "https://project.supabase.co/storage/v1/object/public/uploads/postImages/1712345678901.png",
		},
		{
			name:     "Missing ref resolves to empty",
			ref:      nil,
			expected: "",
		},
		{
			name:     "Empty remote key resolves to empty",
			ref:      RemoteKey{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolver.URI(tt.ref))
		})
	}
}

func TestResolverURITrailingSlash(t *testing.T) {
	resolver := Resolver{BaseURL: "https://project.supabase.co/", Bucket: "uploads"}
	assert.Equal(t,
		"https://project.supabase.co/storage/v1/object/public/uploads/postVideos/42.mp4",
		resolver.URI(RemoteKey{Key: "/postVideos/42.mp4"}))
}

// internal/domain/models/media.go
package models

import (
	"fmt"
	"strings"
)

// MediaKind is the closed set of media a gallery can show.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// MediaKinds is the canonical list of kinds, in display order.
var MediaKinds = []MediaKind{MediaImage, MediaVideo}

// ParseMediaKind maps catalog text to a MediaKind. Blank text means image;
// anything else that is not a known kind is an error.
func ParseMediaKind(s string) (MediaKind, error) {
	switch MediaKind(strings.ToLower(strings.TrimSpace(s))) {
	case "", MediaImage:
		return MediaImage, nil
	case MediaVideo:
		return MediaVideo, nil
	default:
		return "", fmt.Errorf("unknown media kind %q (want one of %v)", s, MediaKinds)
	}
}

// UnmarshalText lets MediaKind be decoded from YAML/JSON strings.
func (k *MediaKind) UnmarshalText(b []byte) error {
	parsed, err := ParseMediaKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func (k MediaKind) String() string { return string(k) }

// MediaItem is one image or video in a project gallery.
type MediaItem struct {
	Source  string    `yaml:"src" validate:"required" label:"Media source"`
	Label   string    `yaml:"alt" validate:"required" label:"Media label"`
	Caption string    `yaml:"caption,omitempty"`
	Kind    MediaKind `yaml:"type,omitempty"`
}

// IsVideo reports whether the item renders through the video branch.
func (m MediaItem) IsVideo() bool {
	switch m.Kind {
	case MediaVideo:
		return true
	case MediaImage, "":
		return false
	default:
		panic(fmt.Sprintf("models: unhandled media kind %q", m.Kind))
	}
}

// KindLabel is the human word used in accessible labels ("image", "video").
func (m MediaItem) KindLabel() string {
	if m.IsVideo() {
		return "video"
	}
	return "image"
}

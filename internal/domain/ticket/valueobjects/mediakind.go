package valueobjects

import "fmt"

type MediaKind string

const (
	MediaPhoto    MediaKind = "photo"
	MediaDocument MediaKind = "document"
	MediaVideo    MediaKind = "video"
	MediaAudio    MediaKind = "audio"
	MediaVoice    MediaKind = "voice"
)

var validMediaKinds = map[MediaKind]bool{
	MediaPhoto:    true,
	MediaDocument: true,
	MediaVideo:    true,
	MediaAudio:    true,
	MediaVoice:    true,
}

func (mk MediaKind) String() string {
	return string(mk)
}

func (mk MediaKind) IsValid() bool {
	return validMediaKinds[mk]
}

func NewMediaKind(s string) (MediaKind, error) {
	mk := MediaKind(s)
	if !mk.IsValid() {
		return "", fmt.Errorf("invalid media kind: %s", s)
	}
	return mk, nil
}

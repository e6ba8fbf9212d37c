package model

import (
	"fmt"
	"strings"
)

// MediaType is the kind of media a download produces
type MediaType string

const (
	MediaTypeAudio MediaType = "audio"
	MediaTypeVideo MediaType = "video"
)

// MediaCompany is the site a media URL belongs to
type MediaCompany string

const (
	CompanyYouTube    MediaCompany = "YouTube"
	CompanySoundCloud MediaCompany = "SoundCloud"
)

// File extensions produced for each media type
var (
	AudioExtensions = []string{".mp3"}
	VideoExtensions = []string{".mp4", ".mkv", ".webm", ".mov"}
)

// ParseMediaType accepts "audio"/"video" plus the legacy "mp3" alias
func ParseMediaType(s string) (MediaType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "audio", "mp3":
		return MediaTypeAudio, nil
	case "video":
		return MediaTypeVideo, nil
	default:
		return "", fmt.Errorf("unknown media type: %q", s)
	}
}

// ParseMediaCompany matches a company name case-insensitively
func ParseMediaCompany(s string) (MediaCompany, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "youtube":
		return CompanyYouTube, nil
	case "soundcloud":
		return CompanySoundCloud, nil
	default:
		return "", fmt.Errorf("unknown media company: %q", s)
	}
}

// String returns the string representation of MediaType
func (m MediaType) String() string {
	return string(m)
}

// IsValid reports whether m is one of the known media types
func (m MediaType) IsValid() bool {
	return m == MediaTypeAudio || m == MediaTypeVideo
}

// Extensions returns the file extensions a download of this type produces
func (m MediaType) Extensions() []string {
	switch m {
	case MediaTypeAudio:
		return AudioExtensions
	case MediaTypeVideo:
		return VideoExtensions
	default:
		return nil
	}
}

// String returns the string representation of MediaCompany
func (c MediaCompany) String() string {
	return string(c)
}

// IsValid reports whether c is one of the supported companies
func (c MediaCompany) IsValid() bool {
	return c == CompanyYouTube || c == CompanySoundCloud
}

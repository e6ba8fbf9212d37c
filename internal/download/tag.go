package download

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bogem/id3v2/v2"
)

// ID3Tagger fills empty ID3 frames of MP3 files
type ID3Tagger struct{}

// NewID3Tagger creates an MP3 tagger
func NewID3Tagger() *ID3Tagger {
	return &ID3Tagger{}
}

// Tag writes title, artist, album and year into path. Frames that already
// carry a value are left alone and non-MP3 files are ignored.
func (t *ID3Tagger) Tag(path string, meta *Metadata) error {
	if meta == nil || !strings.EqualFold(filepath.Ext(path), ".mp3") {
		return nil
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("failed to open %s for tagging: %w", filepath.Base(path), err)
	}
	defer tag.Close()

	tag.SetDefaultEncoding(id3v2.EncodingUTF8)

	changed := false
	if tag.Title() == "" && meta.Title != "" {
		tag.SetTitle(meta.Title)
		changed = true
	}
	if tag.Artist() == "" && meta.Artist != "" {
		tag.SetArtist(meta.Artist)
		changed = true
	}
	if tag.Album() == "" && meta.Album != "" {
		tag.SetAlbum(meta.Album)
		changed = true
	}
	if tag.Year() == "" && meta.Year > 0 {
		tag.SetYear(strconv.Itoa(meta.Year))
		changed = true
	}

	if !changed {
		return nil
	}
	if err := tag.Save(); err != nil {
		return fmt.Errorf("failed to save tags for %s: %w", filepath.Base(path), err)
	}
	return nil
}

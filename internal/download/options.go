package download

import (
	"github.com/ytget/cm-util/internal/model"
)

// yt-dlp format settings
const (
	OutputTemplate = "%(title)s.%(ext)s"

	AudioFormatSelector = "bestaudio/best"
	AudioCodec          = "mp3"
	AudioQuality        = "192"

	VideoFormatSelector = "bestvideo*+bestaudio/best"
	VideoMergeFormat    = "mp4"
	VideoFormatSort     = "res,ext:mp4:m4a"
)

// FormatOptions are the extractor settings for one media type
type FormatOptions struct {
	Format            string
	FormatSort        string
	MergeOutputFormat string
	ExtractAudio      bool
	AudioFormat       string
	AudioQuality      string
	OutputTemplate    string
	IgnoreErrors      bool
	CookiesBrowser    string
}

// BuildFormatOptions returns the extractor settings for mediaType. Cookies
// are only read for audio downloads.
func BuildFormatOptions(mediaType model.MediaType, cookiesBrowser string) (FormatOptions, error) {
	switch mediaType {
	case model.MediaTypeAudio:
		return FormatOptions{
			Format:         AudioFormatSelector,
			ExtractAudio:   true,
			AudioFormat:    AudioCodec,
			AudioQuality:   AudioQuality,
			OutputTemplate: OutputTemplate,
			IgnoreErrors:   true,
			CookiesBrowser: cookiesBrowser,
		}, nil
	case model.MediaTypeVideo:
		return FormatOptions{
			Format:            VideoFormatSelector,
			FormatSort:        VideoFormatSort,
			MergeOutputFormat: VideoMergeFormat,
			OutputTemplate:    OutputTemplate,
		}, nil
	default:
		return FormatOptions{}, model.Validationf("format options", "invalid media type: %q", mediaType)
	}
}

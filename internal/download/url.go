package download

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ytget/cm-util/internal/model"
)

// URL templates
const (
	SoundCloudLikesURLTemplate = "https://soundcloud.com/%s/likes"
)

var urlPatterns = map[model.MediaCompany][]*regexp.Regexp{
	model.CompanyYouTube: {
		regexp.MustCompile(`^https?://(www\.)?youtube\.com/watch\?v=[\w-]+`),
		regexp.MustCompile(`^https?://(www\.)?youtube\.com/playlist\?list=[\w-]+`),
		regexp.MustCompile(`^https?://youtu\.be/[\w-]+`),
	},
	model.CompanySoundCloud: {
		regexp.MustCompile(`^https?://(www\.)?soundcloud\.com/.+`),
	},
}

var usernamePattern = regexp.MustCompile(`^[\w-]+$`)

// CleanURL strips the backslashes shells insert before ? and = in YouTube
// URLs. Other URLs are returned unchanged.
func CleanURL(url string, company model.MediaCompany) string {
	url = strings.TrimSpace(url)
	if strings.EqualFold(string(company), string(model.CompanyYouTube)) {
		return strings.ReplaceAll(url, `\`, "")
	}
	return url
}

// ValidateURL checks url against the URL shapes accepted for company
func ValidateURL(url string, company model.MediaCompany) error {
	patterns, ok := urlPatterns[company]
	if !ok {
		return model.Validationf("validate url", "unsupported media company: %q", company)
	}
	for _, pattern := range patterns {
		if pattern.MatchString(url) {
			return nil
		}
	}
	return model.Validationf("validate url", "invalid %s URL: %s", company, url)
}

// DetectCompany returns the company whose URL shapes match url
func DetectCompany(url string) (model.MediaCompany, error) {
	for _, company := range []model.MediaCompany{model.CompanyYouTube, model.CompanySoundCloud} {
		if ValidateURL(CleanURL(url, company), company) == nil {
			return company, nil
		}
	}
	return "", model.Validationf("validate url", "URL is neither YouTube nor SoundCloud: %s", url)
}

// IsPlaylistURL reports whether url carries a playlist ID
func IsPlaylistURL(url string) bool {
	return strings.Contains(url, "list=")
}

// SoundCloudLikesURL builds the likes page URL for a SoundCloud user
func SoundCloudLikesURL(username string) (string, error) {
	username = strings.TrimSpace(username)
	if !usernamePattern.MatchString(username) {
		return "", model.Validationf("soundcloud likes", "invalid SoundCloud username: %q", username)
	}
	return fmt.Sprintf(SoundCloudLikesURLTemplate, username), nil
}

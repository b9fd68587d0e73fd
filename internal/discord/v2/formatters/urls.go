// Package formatters turns gamedata records into pages: one embed per page, in
// the order the pager shows them.
package formatters

import (
	"net/url"
	"strings"
)

const (
	// DefaultImageBaseURL hosts portraits and full character art
	DefaultImageBaseURL = "https://raw.githubusercontent.com/Aceship/AN-EN-Tags/master/img"

	// DefaultAudioBaseURL hosts voice line recordings
	DefaultAudioBaseURL = "https://aceship.github.io/AN-EN-Tags/etc/voice"
)

// Assets builds the image and audio links used in pages. Links are never fetched.
type Assets struct {
	ImageBaseURL string
	AudioBaseURL string
}

// DefaultAssets points at the Aceship asset mirrors
func DefaultAssets() Assets {
	return Assets{
		ImageBaseURL: DefaultImageBaseURL,
		AudioBaseURL: DefaultAudioBaseURL,
	}
}

// OperatorPortrait is the small portrait shown as an operator's thumbnail
func (a Assets) OperatorPortrait(charID string) string {
	return a.image("portraits", escapePath(charID)+"_1.png")
}

// SkinArt is the full art of a skin
func (a Assets) SkinArt(portraitID string) string {
	return a.image("characters", escapePath(portraitID)+".png")
}

// SkinPortrait is the portrait of a skin, already transformed with ThumbnailID
func (a Assets) SkinPortrait(thumbnailID string) string {
	return a.image("portraits", escapePath(thumbnailID)+".png")
}

// VoiceLine links the recording of a voice asset such as "char_002_amiya/CN_001"
func (a Assets) VoiceLine(asset string) string {
	return strings.TrimRight(a.AudioBaseURL, "/") + "/" + asset + ".mp3"
}

func (a Assets) image(dir, file string) string {
	return strings.TrimRight(a.ImageBaseURL, "/") + "/" + dir + "/" + file
}

// escapePath percent-encodes everything but unreserved characters and '/',
// so '+' and '#' in portrait ids survive as %2B and %23
func escapePath(s string) string {
	escaped := url.QueryEscape(s)
	escaped = strings.ReplaceAll(escaped, "+", "%20")
	return strings.ReplaceAll(escaped, "%2F", "/")
}

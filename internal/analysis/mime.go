package analysis

import (
	"encoding/hex"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const (
	MimeWebM = "video/webm"
	MimeMP4  = "video/mp4"
	MimeFLV  = "video/x-flv"
	MimeJPEG = "image/jpeg"
)

var videoSignatures = []struct {
	prefix string
	mime   string
}{
	{prefix: "1A45DFA3", mime: MimeWebM},
	{prefix: "00000018", mime: MimeMP4},
	{prefix: "00000020", mime: MimeMP4},
	{prefix: "464C5601", mime: MimeFLV},
}

// SniffVideoMime classifies a video container by its first four bytes.
// It is a heuristic and never fails: unrecognized input is reported as mp4.
func SniffVideoMime(media []byte) string {
	if len(media) < 4 {
		return MimeMP4
	}

	signature := strings.ToUpper(hex.EncodeToString(media[:4]))
	for _, s := range videoSignatures {
		if strings.HasPrefix(signature, s.prefix) {
			return s.mime
		}
	}

	return MimeMP4
}

// SniffImageMime detects the image type of a photo, defaulting to jpeg
// for anything that is not recognized as an image.
func SniffImageMime(image []byte) string {
	detected := mimetype.Detect(image)
	for m := detected; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "image/") {
			return m.String()
		}
	}
	return MimeJPEG
}

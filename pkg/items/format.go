package items

import (
	"fmt"

	"jellyfront/pkg/domain"
)

//nolint: gochecknoglobals
var fileSizeUnits = []string{"B", "kiB", "MiB", "GiB", "TiB", "PiB"}

// FormatFileSize formats a byte count using binary units with two decimals,
// e.g. "1.00 kiB" for 1024. Zero is formatted as "0 B". Sizes beyond the
// largest unit are expressed in PiB.
func FormatFileSize(size int64) string {
	if size == 0 {
		return "0 B"
	}

	sign := ""
	magnitude := float64(size)
	if size < 0 {
		sign = "-"
		magnitude = -magnitude
	}

	i := 0
	for magnitude >= 1024 && i < len(fileSizeUnits)-1 {
		magnitude /= 1024
		i++
	}

	return fmt.Sprintf("%s%.2f %s", sign, magnitude, fileSizeUnits[i])
}

// FormatBitRate formats a bitrate in bits per second as kilobits, e.g. "18112.27 kbps".
func FormatBitRate(bitrate int64) string {
	return fmt.Sprintf("%.2f kbps", float64(bitrate)/1000)
}

// MediaStreams returns the streams of the given type (e.g. "Audio", "Subtitle").
// The returned streams are copies whose Index is renumbered from zero in the
// order they appear; the input slice is left untouched.
func MediaStreams(streams []domain.MediaStream, streamType string) []domain.MediaStream {
	out := make([]domain.MediaStream, 0, len(streams))
	for _, s := range streams {
		if s.Type != streamType {
			continue
		}
		s.Index = len(out)
		out = append(out, s)
	}

	return out
}

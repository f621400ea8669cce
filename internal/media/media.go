package media

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mcorpas/podarc/internal/domain"
)

var mimeTypes = map[string]string{
	".mp3": "audio/mpeg",
	".m4a": "audio/mp4",
	".wav": "audio/wav",
	".ogg": "audio/ogg",
}

// MIMEType maps an audio file extension to its enclosure MIME type.
// Unknown extensions fall back to audio/mpeg.
func MIMEType(path string) string {
	if t, ok := mimeTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return t
	}
	return "audio/mpeg"
}

// Prober reads audio durations with the external ffprobe binary.
type Prober struct {
	BinaryPath string
}

func NewProber() (*Prober, error) {
	path, err := exec.LookPath("ffprobe")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFFProbeNotFound, err)
	}
	return &Prober{BinaryPath: path}, nil
}

// Duration returns the audio length in whole seconds.
func (p *Prober) Duration(ctx context.Context, path string) (int, error) {
	cmd := exec.CommandContext(ctx, p.BinaryPath,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return 0, fmt.Errorf("ffprobe failed for %s: %w", path, err)
	}

	secs, err := strconv.ParseFloat(strings.TrimSpace(out.String()), 64)
	if err != nil {
		return 0, fmt.Errorf("ffprobe returned unparseable duration for %s: %w", path, err)
	}

	return int(secs), nil
}

// Package snapshot writes on-demand plain-text captures of the current frame.
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/khooz/Watch-Cmd/render"
)

// Sink writes frames as timestamped UTF-8 text files under Dir. A zero Dir
// disables the sink; Save becomes a no-op.
type Sink struct {
	Dir string

	// now is swappable for tests.
	now func() time.Time
}

// New returns a sink writing under dir.
func New(dir string) *Sink {
	return &Sink{Dir: dir, now: time.Now}
}

// Save writes header, separator and lines to a new file and returns its path.
// Names are second-resolution timestamps; collisions within the same second
// get a numeric suffix.
func (s *Sink) Save(header, separator string, lines []string) (string, error) {
	if s.Dir == "" {
		return "", nil
	}

	var b strings.Builder
	b.WriteString(render.Strip(header))
	b.WriteByte('\n')
	b.WriteString(separator)
	b.WriteByte('\n')
	for _, l := range lines {
		b.WriteString(render.Strip(l))
		b.WriteByte('\n')
	}

	path := s.nextPath()
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}
	return path, nil
}

func (s *Sink) nextPath() string {
	stamp := s.now().Format("20060102-150405")
	path := filepath.Join(s.Dir, fmt.Sprintf("watch-%s.txt", stamp))
	for n := 1; ; n++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path
		}
		path = filepath.Join(s.Dir, fmt.Sprintf("watch-%s-%d.txt", stamp, n))
	}
}

// Package artifact implements the export side effects for generated
// documents: downloads are written to the export directory and previews are
// opened in the system browser.
package artifact

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/Iron-Ham/planner/internal/config"
	"github.com/Iron-Ham/planner/internal/logging"
)

// Sink saves documents to disk and opens previews with the platform opener.
// It satisfies render.ArtifactSink.
type Sink struct {
	dir         string
	openCommand string
	previewDir  string
	logger      *logging.Logger

	// start launches the opener; replaced in tests.
	start func(cmd *exec.Cmd) error
}

// NewSink creates a sink from the export configuration. An empty Dir saves
// into the working directory.
func NewSink(cfg config.ExportConfig, logger *logging.Logger) *Sink {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Sink{
		dir:         cfg.Dir,
		openCommand: cfg.OpenCommand,
		previewDir:  os.TempDir(),
		logger:      logger.WithComponent("artifact"),
		start:       func(cmd *exec.Cmd) error { return cmd.Start() },
	}
}

// Path returns where Save writes a document called name.
func (s *Sink) Path(name string) string {
	if s.dir == "" {
		return name
	}
	return filepath.Join(s.dir, name)
}

// Save writes data to the export directory under name, replacing any
// previous file of that name.
func (s *Sink) Save(data []byte, name string) error {
	if s.dir != "" {
		if err := os.MkdirAll(s.dir, 0o755); err != nil {
			return fmt.Errorf("creating export directory: %w", err)
		}
	}

	target := s.Path(name)
	tmp, err := os.CreateTemp(filepath.Dir(target), "."+name+".*")
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing export file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing export file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("setting export file mode: %w", err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("saving export file: %w", err)
	}

	s.logger.Info("document saved", "path", target, "bytes", len(data))
	return nil
}

// Preview writes content to a temporary file and opens it with the
// configured command or the platform default browser opener.
func (s *Sink) Preview(content string) error {
	f, err := os.CreateTemp(s.previewDir, "planner-preview-*.html")
	if err != nil {
		return fmt.Errorf("creating preview file: %w", err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return fmt.Errorf("writing preview file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing preview file: %w", err)
	}

	cmd, err := s.opener(f.Name())
	if err != nil {
		return err
	}
	if err := s.start(cmd); err != nil {
		return fmt.Errorf("opening preview: %w", err)
	}

	s.logger.Debug("preview opened", "path", f.Name(), "opener", cmd.Path)
	return nil
}

// opener builds the command that shows path.
func (s *Sink) opener(path string) (*exec.Cmd, error) {
	if fields := strings.Fields(s.openCommand); len(fields) > 0 {
		args := append(fields[1:], path)
		return exec.Command(fields[0], args...), nil
	}

	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", path), nil
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}

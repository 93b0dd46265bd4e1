package render

import "github.com/Iron-Ham/planner/internal/logging"

// DownloadFilename is the name every exported document is saved under.
const DownloadFilename = "project-plan.html"

// HTMLContentType is the media type of exported documents.
const HTMLContentType = "text/html"

// Artifact is a named document ready to be saved.
type Artifact struct {
	Name        string
	ContentType string
	Data        []byte
}

// ArtifactSink performs the platform side effects of exporting a document.
type ArtifactSink interface {
	// Save stores data under name.
	Save(data []byte, name string) error
	// Preview shows content on a new, independent display surface.
	Preview(content string) error
}

// BuildDownload wraps html as a downloadable artifact without altering it.
func BuildDownload(html string) Artifact {
	return Artifact{
		Name:        DownloadFilename,
		ContentType: HTMLContentType,
		Data:        []byte(html),
	}
}

// Download builds the artifact for html and hands it to sink.
func Download(sink ArtifactSink, html string) (Artifact, error) {
	a := BuildDownload(html)
	return a, sink.Save(a.Data, a.Name)
}

// OpenPreview asks sink to display html. Failures are logged and otherwise
// ignored: a preview that cannot be opened is a no-op.
func OpenPreview(sink ArtifactSink, html string, logger *logging.Logger) {
	if sink == nil {
		return
	}
	if err := sink.Preview(html); err != nil && logger != nil {
		logger.Warn("preview unavailable", "error", err.Error())
	}
}

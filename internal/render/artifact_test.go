package render

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/Iron-Ham/planner/internal/logging"
)

type recordingSink struct {
	savedName  string
	savedData  []byte
	previewed  []string
	saveErr    error
	previewErr error
}

func (s *recordingSink) Save(data []byte, name string) error {
	s.savedName = name
	s.savedData = data
	return s.saveErr
}

func (s *recordingSink) Preview(content string) error {
	s.previewed = append(s.previewed, content)
	return s.previewErr
}

func TestBuildDownload(t *testing.T) {
	doc := "<!DOCTYPE html>\n<html><body><h1>Plan</h1>**not markdown**</body></html>\n"
	a := BuildDownload(doc)

	if a.Name != "project-plan.html" {
		t.Errorf("Name = %q", a.Name)
	}
	if a.ContentType != "text/html" {
		t.Errorf("ContentType = %q", a.ContentType)
	}
	if !bytes.Equal(a.Data, []byte(doc)) {
		t.Errorf("Data was altered: %q", a.Data)
	}
}

func TestBuildDownload_ConstantName(t *testing.T) {
	if BuildDownload("a").Name != BuildDownload("<html>b</html>").Name {
		t.Error("download name should not depend on content")
	}
}

func TestDownload(t *testing.T) {
	sink := &recordingSink{}
	a, err := Download(sink, "<html></html>")
	if err != nil {
		t.Fatalf("Download() = %v", err)
	}
	if sink.savedName != DownloadFilename || string(sink.savedData) != "<html></html>" {
		t.Errorf("sink got name=%q data=%q", sink.savedName, sink.savedData)
	}
	if a.Name != DownloadFilename {
		t.Errorf("artifact name = %q", a.Name)
	}

	sink.saveErr = fmt.Errorf("disk full")
	if _, err := Download(sink, "x"); err == nil {
		t.Error("Download() should report save failures")
	}
}

func TestOpenPreview(t *testing.T) {
	sink := &recordingSink{}
	OpenPreview(sink, "<html>doc</html>", logging.NopLogger())
	if len(sink.previewed) != 1 || sink.previewed[0] != "<html>doc</html>" {
		t.Errorf("previewed = %q", sink.previewed)
	}
}

func TestOpenPreview_SwallowsFailures(t *testing.T) {
	sink := &recordingSink{previewErr: fmt.Errorf("popup blocked")}

	// Neither call may panic or surface an error.
	OpenPreview(sink, "<html></html>", logging.NopLogger())
	OpenPreview(sink, "<html></html>", nil)
	OpenPreview(nil, "<html></html>", nil)

	if len(sink.previewed) != 2 {
		t.Errorf("expected 2 preview attempts, got %d", len(sink.previewed))
	}
}

package cmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/beeptrack/beeptrack"
	"github.com/beeptrack/beeptrack/cmd"
	"github.com/beeptrack/beeptrack/tracker"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/zap"
)

func TestOpenMissingDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.yml")
	doc, err := cmd.OpenDocument(path, zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("OpenDocument failed: %v", err)
	}
	if doc.FilePath() != path {
		t.Errorf("expected the path to be remembered, got %q", doc.FilePath())
	}
	if diff := cmp.Diff(beeptrack.DefaultSong(), doc.Song(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("expected the default song (-want +got):\n%s", diff)
	}
}

func TestResizeSongAndSave(t *testing.T) {
	log := zap.NewNop().Sugar()
	path := filepath.Join(t.TempDir(), "song.yml")
	doc, err := cmd.OpenDocument(path, log)
	if err != nil {
		t.Fatal(err)
	}
	values := map[tracker.Param]string{
		tracker.ParamBeats:    "4",
		tracker.ParamBars:     "1000",
		tracker.ParamPatterns: "two",
	}
	if err := cmd.ResizeSong(doc, values, log); err != nil {
		t.Fatalf("ResizeSong failed: %v", err)
	}
	if err := cmd.SaveDocument(doc, path); err != nil {
		t.Fatalf("SaveDocument failed: %v", err)
	}
	reopened, err := cmd.OpenDocument(path, log)
	if err != nil {
		t.Fatal(err)
	}
	song := reopened.Song()
	// "two" has no digits left after key filtering, so it normalizes to the minimum
	want := [4]int{4, beeptrack.BarsMax, beeptrack.PatternsMin, 1}
	if got := [4]int{song.Beats, song.Bars, song.Patterns, song.Instruments}; got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
	if doc.History().Len() != 1 {
		t.Errorf("expected the resize to be one history entry, got %d", doc.History().Len())
	}
}

func TestOpenDocumentRejectsInvalidSong(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("beats: 100\nbars: 1\npatterns: 1\ninstruments: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := cmd.OpenDocument(path, nil); err == nil {
		t.Errorf("expected an invalid song to be rejected")
	}
}

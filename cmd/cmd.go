// Package cmd contains the setup shared by the beeptrack binaries.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/beeptrack/beeptrack"
	"github.com/beeptrack/beeptrack/tracker"
	"go.uber.org/zap"
)

// NewLogger returns a development logger when debug is set and a production
// one otherwise.
func NewLogger(debug bool) *zap.SugaredLogger {
	if debug {
		return zap.Must(zap.NewDevelopment()).Sugar()
	}
	return zap.Must(zap.NewProduction()).Sugar()
}

// OpenDocument creates a document for the song file at path. An empty path,
// or a path that does not exist yet, gives the default song; the path is still
// remembered so the song can be saved there.
func OpenDocument(path string, log *zap.SugaredLogger) (*tracker.Document, error) {
	doc := tracker.NewDocument(beeptrack.DefaultSong(), log)
	if path == "" {
		return doc, nil
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		doc.SetFilePath(path)
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open song: %w", err)
	}
	if err := doc.ReadSong(f); err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}
	return doc, nil
}

// SaveDocument writes the song to path.
func SaveDocument(doc *tracker.Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create song file: %w", err)
	}
	return doc.WriteSong(f)
}

// ResizeSong fills in the song size prompt of doc with the given texts and
// confirms it, as a user would in the editor. Parameters missing from values
// keep their current value.
func ResizeSong(doc *tracker.Document, values map[tracker.Param]string, log *zap.SugaredLogger) error {
	stack := tracker.NewPromptStack(log)
	stack.SongSize(doc).Do()
	prompt, ok := stack.Active().(*tracker.SongSizePrompt)
	if !ok {
		return errors.New("song size prompt did not open")
	}
	for _, param := range tracker.Params {
		text, ok := values[param]
		if !ok {
			continue
		}
		e := prompt.Editor(param)
		e.Focus()
		e.Replace(text)
		e.Blur()
	}
	prompt.Tree().Button(tracker.OkayKey).Click()
	return nil
}

package tracker

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/beeptrack/beeptrack"
)

// SetSong replaces the song with a validated copy of song, as one undoable
// change.
func (d *Document) SetSong(song beeptrack.Song) error {
	if err := song.Validate(); err != nil {
		return err
	}
	d.history.Record(newSongChange(d, song))
	return nil
}

// ReadSong loads a song from r and closes it. If r is a file, the document
// remembers its path.
func (d *Document) ReadSong(r io.ReadCloser) error {
	song, err := beeptrack.ReadSong(r)
	if cerr := r.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("could not close song file: %w", cerr)
	}
	if err != nil {
		return err
	}
	if err := d.SetSong(song); err != nil {
		return err
	}
	if f, ok := r.(*os.File); ok {
		d.filePath = f.Name()
		// the song was just loaded from the file, so it is persisted
		d.changedSinceSave = false
	}
	d.log.Infow("loaded song", "path", d.filePath)
	return nil
}

// WriteSong writes the song to w and closes it. The format is chosen from the
// file extension when w is a file, defaulting to YAML.
func (d *Document) WriteSong(w io.WriteCloser) error {
	path := ""
	if f, ok := w.(*os.File); ok {
		path = f.Name()
	}
	if err := beeptrack.WriteSong(w, d.song, filepath.Ext(path)); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("could not close song file: %w", err)
	}
	if path != "" {
		d.filePath = path
		d.changedSinceSave = false
	}
	d.log.Infow("saved song", "path", path)
	return nil
}

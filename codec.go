package beeptrack

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ReadSong reads a song in either JSON or YAML format and validates it.
func ReadSong(r io.Reader) (Song, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Song{}, fmt.Errorf("could not read song: %w", err)
	}
	var song Song
	if errJSON := json.Unmarshal(b, &song); errJSON != nil {
		song = Song{}
		if errYaml := yaml.Unmarshal(b, &song); errYaml != nil {
			return Song{}, fmt.Errorf("could not unmarshal song: %v / %w", errJSON, errYaml)
		}
	}
	if err := song.Validate(); err != nil {
		return Song{}, err
	}
	return song, nil
}

// WriteSong writes the song as JSON if ext is ".json" and as YAML otherwise.
func WriteSong(w io.Writer, song Song, ext string) error {
	var contents []byte
	var err error
	if strings.EqualFold(ext, ".json") {
		contents, err = json.MarshalIndent(song, "", "  ")
	} else {
		contents, err = yaml.Marshal(song)
	}
	if err != nil {
		return fmt.Errorf("could not marshal song: %w", err)
	}
	if _, err := w.Write(contents); err != nil {
		return fmt.Errorf("could not write song: %w", err)
	}
	return nil
}

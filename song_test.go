package beeptrack_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/beeptrack/beeptrack"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func testSong() beeptrack.Song {
	s := beeptrack.DefaultSong()
	s.Instruments = 3
	s.Channels[0].Sequence[0] = 1
	s.Channels[0].Sequence[5] = 8
	s.Channels[0].Patterns[0] = beeptrack.Pattern{
		Instrument: 2,
		Notes: []beeptrack.Note{
			{Pitches: []int{36}, Start: 0, End: 4},
			{Pitches: []int{40, 43}, Start: 12, End: 20},
			{Pitches: []int{48}, Start: 28, End: 32},
		},
	}
	s.Channels[beeptrack.DrumChannel].Sequence[15] = 2
	return s
}

func TestDefaultSongIsValid(t *testing.T) {
	s := beeptrack.DefaultSong()
	if err := s.Validate(); err != nil {
		t.Fatalf("default song should be valid: %v", err)
	}
	if len(s.Channels) != beeptrack.ChannelCount {
		t.Errorf("expected %d channels, got %d", beeptrack.ChannelCount, len(s.Channels))
	}
}

func TestCopyIsDeep(t *testing.T) {
	s := testSong()
	c := s.Copy()
	c.Channels[0].Sequence[0] = 7
	c.Channels[0].Patterns[0].Notes[0].Pitches[0] = 99
	if s.Channels[0].Sequence[0] != 1 || s.Channels[0].Patterns[0].Notes[0].Pitches[0] != 36 {
		t.Errorf("modifying a copy changed the original song")
	}
}

func TestSetBeats(t *testing.T) {
	s := testSong()
	s.SetBeats(4) // bar is now 16 parts long
	notes := s.Channels[0].Patterns[0].Notes
	want := []beeptrack.Note{
		{Pitches: []int{36}, Start: 0, End: 4},
		{Pitches: []int{40, 43}, Start: 12, End: 16},
	}
	if diff := cmp.Diff(want, notes); diff != "" {
		t.Errorf("notes mismatch (-want +got):\n%s", diff)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("song invalid after SetBeats: %v", err)
	}
}

func TestSetBars(t *testing.T) {
	s := testSong()
	s.SetBars(4)
	for i, c := range s.Channels {
		if len(c.Sequence) != 4 {
			t.Errorf("channel %d: expected 4 bars, got %d", i, len(c.Sequence))
		}
	}
	s.SetBars(20)
	if got := s.Channels[0].Sequence; got[0] != 1 || got[19] != 0 || len(got) != 20 {
		t.Errorf("unexpected sequence after growing: %v", got)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("song invalid after SetBars: %v", err)
	}
}

func TestSetPatterns(t *testing.T) {
	s := testSong()
	s.SetPatterns(4)
	if s.Channels[0].Sequence[5] != 0 {
		t.Errorf("bar referring to a removed pattern should become silent, got %d", s.Channels[0].Sequence[5])
	}
	if s.Channels[0].Sequence[0] != 1 {
		t.Errorf("bar referring to a kept pattern should not change")
	}
	for i, c := range s.Channels {
		if len(c.Patterns) != 4 {
			t.Errorf("channel %d: expected 4 patterns, got %d", i, len(c.Patterns))
		}
	}
	if err := s.Validate(); err != nil {
		t.Errorf("song invalid after SetPatterns: %v", err)
	}
}

func TestSetInstruments(t *testing.T) {
	s := testSong()
	s.SetInstruments(2)
	if got := s.Channels[0].Patterns[0].Instrument; got != 1 {
		t.Errorf("expected instrument to be clamped to 1, got %d", got)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("song invalid after SetInstruments: %v", err)
	}
}

func TestSettersClamp(t *testing.T) {
	s := beeptrack.DefaultSong()
	s.SetBeats(100)
	s.SetBars(-3)
	s.SetPatterns(1000)
	s.SetInstruments(0)
	if s.Beats != beeptrack.BeatsMax || s.Bars != beeptrack.BarsMin || s.Patterns != beeptrack.PatternsMax || s.Instruments != beeptrack.InstrumentsMin {
		t.Errorf("setters did not clamp: %+v", s)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		modify func(s *beeptrack.Song)
	}{
		{"BeatsTooSmall", func(s *beeptrack.Song) { s.Beats = 2 }},
		{"BarsTooLarge", func(s *beeptrack.Song) { s.Bars = 129 }},
		{"MissingChannel", func(s *beeptrack.Song) { s.Channels = s.Channels[:3] }},
		{"ShortSequence", func(s *beeptrack.Song) { s.Channels[1].Sequence = s.Channels[1].Sequence[:3] }},
		{"DanglingPattern", func(s *beeptrack.Song) { s.Channels[2].Sequence[0] = 9 }},
		{"MissingInstrument", func(s *beeptrack.Song) { s.Channels[0].Patterns[1].Instrument = 3 }},
		{"LongNote", func(s *beeptrack.Song) { s.Channels[0].Patterns[0].Notes[2].End = 40 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSong()
			tt.modify(&s)
			if err := s.Validate(); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}

func TestReadWriteSong(t *testing.T) {
	for _, ext := range []string{".yml", ".json"} {
		t.Run(ext, func(t *testing.T) {
			var buf bytes.Buffer
			want := testSong()
			if err := beeptrack.WriteSong(&buf, want, ext); err != nil {
				t.Fatalf("WriteSong: %v", err)
			}
			got, err := beeptrack.ReadSong(&buf)
			if err != nil {
				t.Fatalf("ReadSong: %v", err)
			}
			if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("song mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadSongRejectsInvalid(t *testing.T) {
	if _, err := beeptrack.ReadSong(strings.NewReader("beats: 99\n")); err == nil {
		t.Errorf("expected an error for an out of range song")
	}
	if _, err := beeptrack.ReadSong(strings.NewReader("{{{")); err == nil {
		t.Errorf("expected an error for garbage input")
	}
}

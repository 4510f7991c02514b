package beeptrack

type (
	// Song is the arrangement of a piece: Beats per bar, Bars in the song, and
	// for each of the channels a sequence telling which pattern plays in which
	// bar. Each channel owns Patterns patterns, and each pattern plays with one
	// of the Instruments instruments of its channel.
	Song struct {
		Beats       int       `validate:"min=3,max=15"`
		Bars        int       `validate:"min=1,max=128"`
		Patterns    int       `validate:"min=1,max=32"`
		Instruments int       `validate:"min=1,max=10"`
		Channels    []Channel `validate:"len=4,dive"`
	}

	// Channel holds the patterns of one channel and the Sequence of pattern
	// numbers, one per bar. Pattern numbers are 1-based; 0 means the bar is
	// silent.
	Channel struct {
		Sequence []int     `yaml:",flow" validate:"dive,min=0"`
		Patterns []Pattern `validate:"dive"`
	}

	// Pattern is one bar worth of notes, played with the Instrument of the
	// channel.
	Pattern struct {
		Instrument int    `yaml:",omitempty" validate:"min=0"`
		Notes      []Note `validate:"dive"`
	}

	// Note is a chord of Pitches held from Start until End. Start and End are
	// measured in parts from the beginning of the bar, there being
	// PartsPerBeat parts in a beat.
	Note struct {
		Pitches []int `yaml:",flow" validate:"min=1,dive,min=0,max=127"`
		Start   int   `validate:"min=0"`
		End     int
	}
)

const (
	BeatsMin       = 3
	BeatsMax       = 15
	BarsMin        = 1
	BarsMax        = 128
	PatternsMin    = 1
	PatternsMax    = 32
	InstrumentsMin = 1
	InstrumentsMax = 10

	// PartsPerBeat is the resolution of note timing inside a beat.
	PartsPerBeat = 4
	// ChannelCount is the number of channels: three pitched channels and one
	// drum channel.
	ChannelCount = 4
	// DrumChannel is the index of the drum channel.
	DrumChannel = ChannelCount - 1
)

// DefaultSong returns an empty song with all channels present.
func DefaultSong() Song {
	s := Song{Beats: 8, Bars: 16, Patterns: 8, Instruments: 1}
	s.Channels = make([]Channel, ChannelCount)
	for i := range s.Channels {
		s.Channels[i] = Channel{
			Sequence: make([]int, s.Bars),
			Patterns: make([]Pattern, s.Patterns),
		}
	}
	return s
}

// Copy makes a deep copy of a Song.
func (s *Song) Copy() Song {
	channels := make([]Channel, len(s.Channels))
	for i, c := range s.Channels {
		channels[i] = c.Copy()
	}
	return Song{Beats: s.Beats, Bars: s.Bars, Patterns: s.Patterns, Instruments: s.Instruments, Channels: channels}
}

// Copy makes a deep copy of a Channel.
func (c *Channel) Copy() Channel {
	patterns := make([]Pattern, len(c.Patterns))
	for i, p := range c.Patterns {
		patterns[i] = p.Copy()
	}
	return Channel{Sequence: append([]int{}, c.Sequence...), Patterns: patterns}
}

// Copy makes a deep copy of a Pattern.
func (p *Pattern) Copy() Pattern {
	notes := make([]Note, len(p.Notes))
	for i, n := range p.Notes {
		notes[i] = Note{Pitches: append([]int{}, n.Pitches...), Start: n.Start, End: n.End}
	}
	return Pattern{Instrument: p.Instrument, Notes: notes}
}

// BarLength returns the length of a bar in parts.
func (s *Song) BarLength() int {
	return s.Beats * PartsPerBeat
}

// PatternAt returns the pattern playing in the given channel and bar, or nil
// if the bar is silent or out of range.
func (s *Song) PatternAt(channel, bar int) *Pattern {
	if channel < 0 || channel >= len(s.Channels) {
		return nil
	}
	c := &s.Channels[channel]
	if bar < 0 || bar >= len(c.Sequence) {
		return nil
	}
	n := c.Sequence[bar]
	if n < 1 || n > len(c.Patterns) {
		return nil
	}
	return &c.Patterns[n-1]
}

// SetBeats changes the number of beats per bar. Notes that would start past
// the end of the shortened bar are removed and notes extending past it are
// truncated.
func (s *Song) SetBeats(beats int) {
	s.Beats = clamp(beats, BeatsMin, BeatsMax)
	barLength := s.BarLength()
	for c := range s.Channels {
		for p := range s.Channels[c].Patterns {
			pattern := &s.Channels[c].Patterns[p]
			notes := pattern.Notes[:0]
			for _, n := range pattern.Notes {
				if n.Start >= barLength {
					continue
				}
				n.End = min(n.End, barLength)
				notes = append(notes, n)
			}
			pattern.Notes = notes
		}
	}
}

// SetBars changes the length of the song. New bars are silent.
func (s *Song) SetBars(bars int) {
	s.Bars = clamp(bars, BarsMin, BarsMax)
	for c := range s.Channels {
		seq := s.Channels[c].Sequence
		if len(seq) > s.Bars {
			seq = seq[:s.Bars]
		}
		for len(seq) < s.Bars {
			seq = append(seq, 0)
		}
		s.Channels[c].Sequence = seq
	}
}

// SetPatterns changes the number of patterns in each channel. Bars that
// referred to a removed pattern become silent.
func (s *Song) SetPatterns(patterns int) {
	s.Patterns = clamp(patterns, PatternsMin, PatternsMax)
	for c := range s.Channels {
		channel := &s.Channels[c]
		if len(channel.Patterns) > s.Patterns {
			channel.Patterns = channel.Patterns[:s.Patterns]
		}
		for len(channel.Patterns) < s.Patterns {
			channel.Patterns = append(channel.Patterns, Pattern{})
		}
		for i, n := range channel.Sequence {
			if n > s.Patterns {
				channel.Sequence[i] = 0
			}
		}
	}
}

// SetInstruments changes the number of instruments in each channel.
// Patterns using a removed instrument are moved to the last remaining one.
func (s *Song) SetInstruments(instruments int) {
	s.Instruments = clamp(instruments, InstrumentsMin, InstrumentsMax)
	for c := range s.Channels {
		for p := range s.Channels[c].Patterns {
			pattern := &s.Channels[c].Patterns[p]
			pattern.Instrument = min(pattern.Instrument, s.Instruments-1)
		}
	}
}

func clamp(value, lo, hi int) int {
	return max(min(value, hi), lo)
}

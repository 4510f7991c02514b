package beeptrack

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var songValidator = newSongValidator()

func newSongValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(validateSongStructure, Song{})
	return v
}

// Validate checks that all the song parameters are within their bounds and
// that the channel data agrees with them: every sequence has one entry per
// bar, every channel has exactly Patterns patterns, no bar refers to a
// missing pattern, no pattern uses a missing instrument and no note extends
// past the end of the bar.
func (s *Song) Validate() error {
	if err := songValidator.Struct(s); err != nil {
		return fmt.Errorf("invalid song: %w", err)
	}
	return nil
}

func validateSongStructure(sl validator.StructLevel) {
	s := sl.Current().Interface().(Song)
	barLength := s.BarLength()
	for c, channel := range s.Channels {
		if len(channel.Sequence) != s.Bars {
			sl.ReportError(channel.Sequence, fmt.Sprintf("Channels[%d].Sequence", c), "Sequence", "bars", fmt.Sprint(s.Bars))
		}
		if len(channel.Patterns) != s.Patterns {
			sl.ReportError(channel.Patterns, fmt.Sprintf("Channels[%d].Patterns", c), "Patterns", "patterns", fmt.Sprint(s.Patterns))
		}
		for b, n := range channel.Sequence {
			if n > s.Patterns {
				sl.ReportError(n, fmt.Sprintf("Channels[%d].Sequence[%d]", c, b), "Sequence", "maxpattern", fmt.Sprint(s.Patterns))
			}
		}
		for p, pattern := range channel.Patterns {
			if pattern.Instrument >= s.Instruments {
				sl.ReportError(pattern.Instrument, fmt.Sprintf("Channels[%d].Patterns[%d].Instrument", c, p), "Instrument", "maxinstrument", fmt.Sprint(s.Instruments-1))
			}
			for i, n := range pattern.Notes {
				if n.End <= n.Start || n.End > barLength {
					sl.ReportError(n.End, fmt.Sprintf("Channels[%d].Patterns[%d].Notes[%d].End", c, p, i), "End", "notespan", fmt.Sprint(barLength))
				}
			}
		}
	}
}

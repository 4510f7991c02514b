package tracker

import "github.com/beeptrack/beeptrack"

// Param identifies one of the structural parameters of a song that can be
// edited in the song size prompt.
type Param int

const (
	ParamBeats Param = iota
	ParamBars
	ParamPatterns
	ParamInstruments

	paramCount
)

// Params lists all the parameters in the order their changes are committed.
var Params = [paramCount]Param{ParamBeats, ParamBars, ParamPatterns, ParamInstruments}

func (p Param) String() string {
	switch p {
	case ParamBeats:
		return "Beats"
	case ParamBars:
		return "Bars"
	case ParamPatterns:
		return "Patterns"
	case ParamInstruments:
		return "Instruments"
	}
	return "Unknown"
}

// Range returns the bounds of the parameter.
func (p Param) Range() RangeInclusive {
	switch p {
	case ParamBeats:
		return RangeInclusive{beeptrack.BeatsMin, beeptrack.BeatsMax}
	case ParamBars:
		return RangeInclusive{beeptrack.BarsMin, beeptrack.BarsMax}
	case ParamPatterns:
		return RangeInclusive{beeptrack.PatternsMin, beeptrack.PatternsMax}
	case ParamInstruments:
		return RangeInclusive{beeptrack.InstrumentsMin, beeptrack.InstrumentsMax}
	}
	return RangeInclusive{}
}

func (p Param) value(s *beeptrack.Song) int {
	switch p {
	case ParamBeats:
		return s.Beats
	case ParamBars:
		return s.Bars
	case ParamPatterns:
		return s.Patterns
	case ParamInstruments:
		return s.Instruments
	}
	return 0
}

func (p Param) apply(s *beeptrack.Song, value int) {
	switch p {
	case ParamBeats:
		s.SetBeats(value)
	case ParamBars:
		s.SetBars(value)
	case ParamPatterns:
		s.SetPatterns(value)
	case ParamInstruments:
		s.SetInstruments(value)
	}
}

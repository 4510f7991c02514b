package tracker

import (
	"github.com/beeptrack/beeptrack"
	"go.uber.org/zap"
)

// Document holds the song being edited and its undo history. It is owned by
// the GUI goroutine; nothing in it is safe for concurrent use.
//
// The song is only modified through Changes, which are recorded into the
// History.
type Document struct {
	song             beeptrack.Song
	history          History
	filePath         string
	changedSinceSave bool
	log              *zap.SugaredLogger
}

// NewDocument creates a document editing a copy of song. A nil logger
// disables logging.
func NewDocument(song beeptrack.Song, log *zap.SugaredLogger) *Document {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Document{
		song:    song.Copy(),
		history: History{log: log},
		log:     log,
	}
}

// Song returns a copy of the current song.
func (d *Document) Song() beeptrack.Song { return d.song.Copy() }

// History returns the undo history of the document.
func (d *Document) History() *History { return &d.history }

func (d *Document) FilePath() string        { return d.filePath }
func (d *Document) ChangedSinceSave() bool  { return d.changedSinceSave }
func (d *Document) SetFilePath(path string) { d.filePath = path }

func (d *Document) changed() { d.changedSinceSave = true }

// Param returns an Int view of one of the song parameters. Setting the value
// records a single ParamChange into the history.
func (d *Document) Param(p Param) Int { return MakeInt(&paramValue{doc: d, param: p}) }

func (d *Document) Beats() Int       { return d.Param(ParamBeats) }
func (d *Document) Bars() Int        { return d.Param(ParamBars) }
func (d *Document) Patterns() Int    { return d.Param(ParamPatterns) }
func (d *Document) Instruments() Int { return d.Param(ParamInstruments) }

type paramValue struct {
	doc   *Document
	param Param
}

func (v *paramValue) Value() int            { return v.param.value(&v.doc.song) }
func (v *paramValue) Range() RangeInclusive { return v.param.Range() }
func (v *paramValue) SetValue(value int) bool {
	return v.doc.history.Record(NewParamChange(v.doc, v.param, value))
}

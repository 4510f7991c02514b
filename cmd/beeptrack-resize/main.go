// Command beeptrack-resize changes the size of a song file without opening the
// editor. It fills in the song size prompt the same way a user would and
// confirms it, so the values are bounded and normalized exactly as in the GUI.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/beeptrack/beeptrack/cmd"
	"github.com/beeptrack/beeptrack/tracker"
	"github.com/beeptrack/beeptrack/version"
)

func main() {
	values := map[tracker.Param]*string{
		tracker.ParamBeats:       flag.String("beats", "", "Beats per bar."),
		tracker.ParamBars:        flag.String("bars", "", "Bars per song."),
		tracker.ParamPatterns:    flag.String("patterns", "", "Patterns per channel."),
		tracker.ParamInstruments: flag.String("instruments", "", "Instruments per channel."),
	}
	output := flag.String("o", "", "Write the result to `file` instead of overwriting the input.")
	debug := flag.Bool("debug", false, "Log at debug level.")
	versionFlag := flag.Bool("v", false, "Print version.")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] song.yml\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.String(filepath.Base(os.Args[0])))
		os.Exit(0)
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	log := cmd.NewLogger(*debug)
	defer log.Sync()
	doc, err := cmd.OpenDocument(flag.Arg(0), log)
	if err != nil {
		log.Fatal(err)
	}
	texts := map[tracker.Param]string{}
	for param, value := range values {
		if *value != "" {
			texts[param] = *value
		}
	}
	if err := cmd.ResizeSong(doc, texts, log); err != nil {
		log.Fatal(err)
	}
	out := *output
	if out == "" {
		out = flag.Arg(0)
	}
	if err := cmd.SaveDocument(doc, out); err != nil {
		log.Fatal(err)
	}
	size := doc.Song()
	fmt.Printf("%s: %d beats, %d bars, %d patterns, %d instruments\n", out, size.Beats, size.Bars, size.Patterns, size.Instruments)
}

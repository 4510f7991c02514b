package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gioui.org/app"
	"github.com/beeptrack/beeptrack/cmd"
	"github.com/beeptrack/beeptrack/tracker/gioui"
	"github.com/beeptrack/beeptrack/version"
)

func main() {
	debug := flag.Bool("debug", false, "Log at debug level.")
	versionFlag := flag.Bool("v", false, "Print version.")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [song.yml]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.String(filepath.Base(os.Args[0])))
		os.Exit(0)
	}
	log := cmd.NewLogger(*debug)
	defer log.Sync()
	doc, err := cmd.OpenDocument(flag.Arg(0), log)
	if err != nil {
		log.Fatal(err)
	}
	trackerUi := gioui.NewTracker(doc, log)
	go func() {
		if err := trackerUi.Main(); err != nil {
			log.Errorw("window closed with an error", "error", err)
			log.Sync()
			os.Exit(1)
		}
		log.Sync()
		os.Exit(0)
	}()
	app.Main()
}

//    ThemataGoEngine
//    Copyright: P Themelis 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"os"

	"github.com/pkg/profile"

	"github.com/p-themelis/ThemataGoEngine/internal/lnch"
	"github.com/p-themelis/ThemataGoEngine/internal/msg"
	"github.com/p-themelis/ThemataGoEngine/internal/vv"
)

// the engine proper lives in internal/; this wrapper only wires a tokenized
// corpus through it and formats what comes back

var (
	Config    lnch.CurrentConfiguration
	messenger *msg.MessageMaker
)

// emit - send a message to the terminal; alias for "messenger.Emit(s, i)"
func emit(s string, i int) {
	messenger.Emit(s, i)
}

// chke - check an error; alias for messenger.Error(e)
func chke(e error) {
	messenger.Error(e)
}

func main() {
	Config = lnch.ConfigAtLaunch()
	messenger = msg.New(Config.LogLevel)

	if Config.Profile {
		// go tool pprof --pdf ./ThemataGoEngine /path/to/cpu.pprof > profile.pdf
		defer profile.Start().Stop()
	}

	versioninfo := fmt.Sprintf("%s (v.%s) [loglevel=%d]", vv.MYNAME, vv.VERSION, Config.LogLevel)
	emit(versioninfo, vv.MSGMAND)

	if Config.Input == "" {
		emit("no input file given: nothing to model (see -h)", vv.MSGCRIT)
		os.Exit(1)
	}

	docs, err := readtokenfile(Config.Input)
	chke(err)
	emit(fmt.Sprintf("read %d documents from '%s'", len(docs), Config.Input), vv.MSGNOTE)

	runpipeline(docs)
}

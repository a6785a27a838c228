//    ThemataGoEngine
//    Copyright: P Themelis 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package msg

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/p-themelis/ThemataGoEngine/internal/vv"
)

//
// TERMINAL OUTPUT/MESSAGES
//

const (
	RESET   = "\033[0m"
	BLUE2   = "\033[38;5;68m"  // SteelBlue3
	CYAN2   = "\033[38;5;117m" // SkyBlue1
	GREEN   = "\033[38;5;70m"  // Chartreuse3
	RED1    = "\033[38;5;160m" // Red3
	YELLOW1 = "\033[38;5;178m" // Gold3
	YELLOW2 = "\033[38;5;143m" // DarkKhaki
	GREY3   = "\033[38;5;242m" // Grey42
	WHITE   = "\033[38;5;255m" // Grey93
	PANIC   = "[%s%s v.%s%s] %sUNRECOVERABLE ERROR%s\n"
)

type MessageMaker struct {
	Name      string
	Shortname string
	Version   string
	LogLevel  int
	Win       bool
}

// New - build a MessageMaker; windows terminals get colorless output
func New(loglevel int) *MessageMaker {
	w := false
	if runtime.GOOS == "windows" {
		w = true
	}
	return &MessageMaker{
		Name:      vv.MYNAME,
		Shortname: vv.SHORTNAME,
		Version:   vv.VERSION,
		LogLevel:  loglevel,
		Win:       w,
	}
}

// Emit - send a message to the terminal, perhaps adding color to it
func (m *MessageMaker) Emit(message string, threshold int) {
	// sample output: "[TGE] gibbs sampler: 500 sweeps over 1204 tokens"

	if m.LogLevel < threshold {
		return
	}

	if !m.Win {
		var color string

		switch threshold {
		case vv.MSGMAND:
			color = GREEN
		case vv.MSGCRIT:
			color = RED1
		case vv.MSGWARN:
			color = YELLOW2
		case vv.MSGNOTE:
			color = YELLOW1
		case vv.MSGFYI:
			color = CYAN2
		case vv.MSGPEEK:
			color = BLUE2
		case vv.MSGTMI:
			color = GREY3
		default:
			color = WHITE
		}
		fmt.Printf("[%s%s%s] %s%s%s\n", YELLOW1, m.Shortname, RESET, color, message, RESET)
	} else {
		fmt.Printf("[%s] %s\n", m.Shortname, message)
	}
}

// Error - report an unrecoverable error and quit
func (m *MessageMaker) Error(err error) {
	if err != nil {
		fmt.Printf(PANIC, YELLOW2, m.Name, m.Version, RESET, RED1, RESET)
		fmt.Println(err)
		os.Exit(1)
	}
}

// Timer - report how much time elapsed between A and B
func (m *MessageMaker) Timer(letter string, o string, start time.Time, previous time.Time) {
	const (
		TEMPL = "[%s: %.3fs][Δ: %.3fs] %s"
	)
	d := fmt.Sprintf(TEMPL, letter, time.Now().Sub(start).Seconds(), time.Now().Sub(previous).Seconds(), o)
	m.Emit(d, vv.MSGFYI)
}

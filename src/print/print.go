package print

import (
	"fmt"

	"github.com/fatih/color"
)

// Title is the tool name used as the prefix of every log line.
const Title = "Fix-LWJGL"

var (
	isVerbose  = false
	isColoured = false
	infoStyle  = color.New(color.FgBlack).Add(color.BgYellow)
	warnStyle  = color.New(color.FgBlack).Add(color.BgHiRed)
	erroStyle  = color.New(color.FgRed).Add(color.BgBlack)
)

// SetVerbose activates all the Verb calls
func SetVerbose() {
	isVerbose = true
}

// SetColoured activates ANSI colour codes
func SetColoured() {
	isColoured = true
}

func prefix(level string) string {
	return fmt.Sprintf("[%s/%s]:", Title, level)
}

// Verb prints a message only if verbose mode is set
func Verb(a ...interface{}) {
	if isVerbose {
		Info(a...)
	}
}

// Info is for general purpose messages that are always shown
func Info(a ...interface{}) {
	if isColoured {
		fmt.Print(infoStyle.Sprint(prefix("INFO")), " ", color.WhiteString(fmt.Sprintln(a...)))
	} else {
		fmt.Print(prefix("INFO"), " ", fmt.Sprintln(a...))
	}
}

// Warn is for warnings that do not prevent the command from finishing
func Warn(a ...interface{}) {
	if isColoured {
		fmt.Print(warnStyle.Sprint(prefix("WARN")), " ", color.YellowString(fmt.Sprintln(a...)))
	} else {
		fmt.Print(prefix("WARN"), " ", fmt.Sprintln(a...))
	}
}

// Erro is for fatal errors, announced with an audible alert marker
func Erro(a ...interface{}) {
	msg := fmt.Sprintln(a...)
	msg = msg[:len(msg)-1] + "\a\n"
	if isColoured {
		fmt.Print(erroStyle.Sprint(prefix("ERROR")), " ", color.RedString(msg))
	} else {
		fmt.Print(prefix("ERROR"), " ", msg)
	}
}

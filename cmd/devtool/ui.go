package main

import (
	"fmt"
	"os"
)

type level struct {
	color  string
	symbol string
}

var (
	levelInfo    = level{"\033[0;34m", "ℹ"}
	levelSuccess = level{"\033[0;32m", "✓"}
	levelWarning = level{"\033[1;33m", "⚠"}
	levelError   = level{"\033[0;31m", "✗"}
)

const colorReset = "\033[0m"

// NO_COLOR disables escape codes, see no-color.org
var useColor = os.Getenv("NO_COLOR") == ""

func printLevel(l level, format string, a ...interface{}) {
	msg := l.symbol + " " + fmt.Sprintf(format, a...)
	if useColor {
		msg = l.color + msg + colorReset
	}
	fmt.Println(msg)
}

func PrintInfo(format string, a ...interface{})    { printLevel(levelInfo, format, a...) }
func PrintSuccess(format string, a ...interface{}) { printLevel(levelSuccess, format, a...) }
func PrintWarning(format string, a ...interface{}) { printLevel(levelWarning, format, a...) }
func PrintError(format string, a ...interface{})   { printLevel(levelError, format, a...) }

func PrintHeader(title string) {
	fmt.Println()
	if useColor {
		fmt.Printf("%s=== %s ===%s\n", levelWarning.color, title, colorReset)
		return
	}
	fmt.Printf("=== %s ===\n", title)
}

package main

import (
	"fmt"
	"os"
	"strings"
)

// uiMode is the value of diag --ui.
type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	switch mode := uiMode(strings.ToLower(strings.TrimSpace(value))); mode {
	case "":
		return uiModeAuto, nil
	case uiModeAuto, uiModeOn, uiModeOff:
		return mode, nil
	}
	return "", fmt.Errorf("unknown ui mode %q (want auto, on or off)", value)
}

// progressUIEnabled reports whether diag draws the progress view. In auto
// mode the view needs stdout to be a terminal, since it redraws in place.
func progressUIEnabled(mode uiMode, quiet bool) bool {
	if quiet {
		return false
	}
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	}
	return isTerminal(os.Stdout)
}

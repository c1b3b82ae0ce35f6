package main

import (
	"fmt"
	"io"
	"strings"
)

// uiMode is the --ui value: progress UI always, never, or on a terminal.
type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	mode := uiMode(strings.ToLower(strings.TrimSpace(value)))
	switch mode {
	case "":
		return uiModeAuto, nil
	case uiModeAuto, uiModeOn, uiModeOff:
		return mode, nil
	}
	return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
}

// shouldUseTUI: в auto режиме рисуем только в терминал.
func shouldUseTUI(mode uiMode, w io.Writer) bool {
	return mode == uiModeOn || (mode == uiModeAuto && isTerminal(w))
}

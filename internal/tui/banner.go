package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner writes the CLI banner with a warm gradient.
func PrintBanner() {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{`                _                               _     `, "#f59e0b"},
		{`  ___  __ _  __| | ___  ___  ___ ___   __ _  ___| |__  `, "#f97316"},
		{` / __|/ _' |/ _' |/ _ \/ __|/ __/ _ \ / _' |/ __| '_ \ `, "#fb7185"},
		{` \__ \ (_| | (_| |  __/\__ \ (_| (_) | (_| | (__| | | |`, "#e879f9"},
		{` |___/\__,_|\__,_|\___||___/\___\___/ \__,_|\___|_| |_|`, "#c084fc"},
	}

	fmt.Println()
	for _, l := range lines {
		fmt.Println(termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Println()
}

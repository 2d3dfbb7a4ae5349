package display

import (
	"fmt"
	"os"

	"github.com/backmassage/rendstat/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, ` ____                _ ____  _        _
|  _ \ ___ _ __   __| / ___|| |_ __ _| |_
| |_) / _ \ '_ \ / _`+"`"+` \___ \| __/ _`+"`"+` | __|
|  _ <  __/ | | | (_| |___) | || (_| | |_
|_| \_\___|_| |_|\__,_|____/ \__\__,_|\__|
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}

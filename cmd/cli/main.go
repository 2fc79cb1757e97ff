// fvrc-calendar converts pasted weekly/monthly schedule text into files a
// calendar application can import.
package main

import (
	"os"

	"github.com/DuquetteLiam/fvrc-calendar/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}

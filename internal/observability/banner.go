package observability

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

var startTime = time.Now()

const (
	colorReset    = "\033[0m"
	colorBold     = "\033[1m"
	colorPurple   = "\033[35m"
	colorNeonCyan = "\033[96m"
	colorNeonMag  = "\033[95m"
)

func termWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 80
	}
	return w
}

func PrintBanner() {
	banner := `
    ______ ____  ____________  __
   / ____// __ \/  _/_  __/ / / /
  / __/  / / / // /  / / / /_/ /
 / /___ / /_/ // /  / / / __  /
/_____//_____/___/ /_/ /_/ /_/

   >> LLM-DRIVEN UI QA HARNESS <<
`

	width := termWidth()
	for _, l := range strings.Split(banner, "\n") {
		padding := (width - len(l)) / 2
		if padding < 0 {
			padding = 0
		}
		fmt.Printf("%s%s%s\n", strings.Repeat(" ", padding), colorNeonCyan+l, colorReset)
	}
}

// PrintRunSummary writes the closing line for one pipeline run.
func PrintRunSummary(goal, verdict string, elapsed time.Duration) {
	fmt.Printf("\n%s%s%s\n", colorBold, verdict, colorReset)
	fmt.Printf("%sGoal:%s %s\n", colorPurple, colorReset, goal)
	fmt.Printf("%sTime:%s %s (uptime %s)\n\n",
		colorPurple, colorReset,
		elapsed.Round(time.Millisecond),
		time.Since(startTime).Round(time.Second))
}

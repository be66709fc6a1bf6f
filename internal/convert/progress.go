package convert

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// barLength is the number of cells in the console progress bar.
const barLength = 20

// progressBar renders a carriage-returned progress bar, overwriting itself on
// each call. When progress reaches total the bar is finished with a newline.
func progressBar(w io.Writer, total, progress int) {
	if total <= 0 {
		return
	}

	frac := float64(progress) / float64(total)

	status := ""
	if frac >= 1 {
		frac = 1
		status = "\r\n"
	}

	block := int(math.Round(barLength * frac))
	bar := strings.Repeat("#", block) + strings.Repeat("-", barLength-block)

	fmt.Fprintf(w, "\r[%s] %.0f%% %s", bar, math.Round(frac*100), status)
}

package fallback

import (
	"log/slog"

	"github.com/roach88/regrid/internal/grid"
)

// Match filters templates by outer dimensions and length signature.
// Returns the template and true iff exactly one matches.
func Match(sig string, width, height int, templates []grid.Grid) (grid.Grid, bool) {
	var match grid.Grid
	count := 0

	for _, tpl := range templates {
		if tpl.Width() != width || tpl.Height() != height {
			continue
		}
		if grid.LengthSignature(tpl) != sig {
			continue
		}
		count++
		match = tpl
	}

	if count != 1 {
		if count > 1 {
			slog.Debug("template fallback ambiguous", "matches", count, "signature", sig)
		}
		return nil, false
	}
	return match, true
}

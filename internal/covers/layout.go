package covers

import (
	"fmt"
	"strings"
)

// includeGraphics embeds one image stretched to the target dimensions.
// keepaspectratio is off on purpose: covers are printed at exactly the
// requested size.
const includeGraphicsTemplate = `\includegraphics[width=%dmm, height=%dmm, keepaspectratio=false]{%s}`

// rowPrefix and imageSeparator give the fixed inter-image spacing.
const (
	rowPrefix      = `\noindent\vspace{0.1mm}`
	imageSeparator = `\hspace{0.5mm}`
)

// ComposeBody packs filenames into rows of size.PerRow images, in
// collector order, and repeats each row size.Copies times. The final
// underfull row is emitted the same way, so even an empty input yields
// one (empty) row block per copy. Rows are joined with a blank line.
func ComposeBody(filenames []string, size Size) string {
	var rows []string

	remaining := filenames
	for len(remaining) > size.PerRow {
		row := composeRow(remaining[:size.PerRow], size)
		remaining = remaining[size.PerRow:]
		for i := 0; i < size.Copies; i++ {
			rows = append(rows, row)
		}
	}

	last := composeRow(remaining, size)
	for i := 0; i < size.Copies; i++ {
		rows = append(rows, last)
	}

	return strings.Join(rows, "\n\n")
}

// composeRow renders one row of image-embedding directives.
func composeRow(filenames []string, size Size) string {
	directives := make([]string, len(filenames))
	for i, f := range filenames {
		directives[i] = fmt.Sprintf(includeGraphicsTemplate, size.X, size.Y, f)
	}
	return rowPrefix + strings.Join(directives, imageSeparator)
}

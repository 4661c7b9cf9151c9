package covers

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/eoertel/go-printables/internal/dateutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750
	filePermissions = 0o644
)

// documentTemplate wraps a body in a minimal A4 document with 1cm
// margins.
const documentTemplate = `\documentclass[a4]{article}
\usepackage{geometry}
\geometry{a4paper,margin=1cm}
\usepackage{graphicx}
\begin{document}
%s
\end{document}
`

// Writer turns composed bodies into .tex files on disk.
type Writer struct {
	// Now supplies the timestamp embedded in output names. Called once
	// per size, so two sizes written within the same second share a
	// timestamp but never a name.
	Now func() time.Time

	// TimestampFormat uses the dateutil token syntax. Empty means
	// dateutil.DefaultTimestampFormat.
	TimestampFormat string
}

// WriteDocuments composes one document per size from the collected
// filenames and writes it under outDir, creating the directory if
// needed. Returns the written paths in size order.
func (w *Writer) WriteDocuments(outDir string, filenames []string, sizes []Size) ([]string, error) {
	if err := os.MkdirAll(outDir, dirPermissions); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	format := w.TimestampFormat
	if format == "" {
		format = dateutil.DefaultTimestampFormat
	}

	paths := make([]string, 0, len(sizes))
	for _, size := range sizes {
		stamp, err := dateutil.Timestamp(format, w.Now())
		if err != nil {
			return nil, err
		}

		path := filepath.Join(outDir, fmt.Sprintf("covers_%s_%s.tex", size.Name, stamp))
		body := ComposeBody(filenames, size)
		document := fmt.Sprintf(documentTemplate, body)

		// #nosec G306 -- generated documents are meant to be readable
		if err := os.WriteFile(path, []byte(document), filePermissions); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

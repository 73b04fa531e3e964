package outwriter

import (
	"io"

	"github.com/relgate/relgate/internal/contract"
)

// WriteReport prints a rendered release document, honoring --output-file.
// The content is already formatted (markdown or JSON) by the caller.
func WriteReport(content string, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		_, err := io.WriteString(w, content)
		return err
	}, "Wrote report")
}

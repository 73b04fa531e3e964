package outwriter

import (
	"fmt"
	"io"

	"github.com/relgate/relgate/internal/contract"
	"github.com/relgate/relgate/schema"
)

// WriteLanguageList prints the language labels with registered handlers.
func WriteLanguageList(labels []string, cfg *contract.Config) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, labels)
		}, "Wrote JSON")
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, "Supported languages (%d):\n", len(labels)); err != nil {
			return err
		}
		for _, label := range labels {
			if _, err := fmt.Fprintf(w, "  - %s\n", label); err != nil {
				return err
			}
		}
		return nil
	}, "Wrote languages")
}

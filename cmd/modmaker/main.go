// Package main is the modmaker command line tool.
package main

import (
	"errors"
	"log/slog"
	"os"

	apperrors "github.com/TinyTaru/VintagestoryModmaker/internal/application/errors"
)

func main() {
	if err := Execute(); err != nil {
		slog.Error("command failed", "error", err)
		var verr *apperrors.ValidationError
		if errors.As(err, &verr) {
			for _, detail := range verr.Details {
				slog.Error("validation issue", "field", verr.Field, "issue", detail)
			}
		}
		os.Exit(1)
	}
}

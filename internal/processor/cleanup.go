package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Archive moves the recording and its sidecar SRT to the archived folder.
func (p *implProcessor) Archive(ctx context.Context, inputPath string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	for _, src := range []string{inputPath, srtPathFor(inputPath)} {
		if _, err := os.Stat(src); os.IsNotExist(err) {
			continue
		}
		dest := filepath.Join(p.cfg.Paths.Archived, filepath.Base(src))
		p.logger.Info(ctx, "Moving to archived folder: %s -> %s", src, dest)
		if err := os.Rename(src, dest); err != nil {
			return fmt.Errorf("move to archived: %w", err)
		}
	}
	return nil
}

package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/vanderheijden86/liftsheet/pkg/tracker"
)

// maxParallelWrites bounds open files during bulk export.
const maxParallelWrites = 8

// WriteAll writes one <slug>.md per sheet into dir, creating dir if
// needed, and returns the written paths in sheet order.
func WriteAll(ctx context.Context, dir string, details []tracker.SheetDetail) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating export directory: %w", err)
	}

	slugs := Slugs(details)
	paths := make([]string, len(details))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelWrites)

	for i, d := range details {
		path := filepath.Join(dir, slugs[i]+".md")
		paths[i] = path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(SheetMarkdown(d)), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", sheetTitle(d.Sheet), err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

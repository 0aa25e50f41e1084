package git

import (
	"context"
	"fmt"
)

// ListFiles returns tracked and untracked files, skipping ignored ones.
// Paths are relative to the working directory.
func (r *Runner) ListFiles(ctx context.Context) ([]string, error) {
	files, err := r.RunLines(ctx, "ls-files", "--cached", "--others", "--exclude-standard")
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	return files, nil
}

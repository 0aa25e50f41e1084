package git

import (
	"context"
	"fmt"
)

// PruneRemote removes remote-tracking refs whose branches no longer exist on the remote
func (r *Runner) PruneRemote(ctx context.Context) error {
	_, err := r.Run(ctx, "remote", "prune", r.remote)
	if err != nil {
		return fmt.Errorf("failed to prune %s: %w", r.remote, err)
	}
	return nil
}

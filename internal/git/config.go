package git

import (
	"context"
	"fmt"
)

// GetConfig returns a git config value, or "" when the key is unset
func (r *Runner) GetConfig(ctx context.Context, key string) (string, error) {
	value, err := r.runQuiet(ctx, "config", "--get", key)
	if err != nil {
		// git config exits 1 for a missing key
		if exitCode(err) == 1 {
			return "", nil
		}
		return "", fmt.Errorf("failed to read git config %s: %w", key, err)
	}
	return value, nil
}

// SetGlobalConfig writes a value to the user's global git config.
// Values may be secrets, so the command is not reported through OnCommand.
func (r *Runner) SetGlobalConfig(ctx context.Context, key, value string) error {
	_, err := r.runQuiet(ctx, "config", "--global", key, value)
	if err != nil {
		return fmt.Errorf("failed to write git config %s: %w", key, err)
	}
	return nil
}

// Package gitrepo queries the primary repository checkout.
package gitrepo

import (
	"fmt"
	"os/exec"
	"strings"
)

// CurrentBranch returns the branch currently checked out in dir.
func CurrentBranch(dir string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "--abbrev-ref", "HEAD")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("querying branch in %s: %w", dir, err)
	}
	return strings.TrimSpace(string(out)), nil
}

package nixos

import (
	gogit "github.com/go-git/go-git/v5"

	"github.com/AnyTimeTraveler/dotscripts/errors"
)

// HasStagedChanges reports whether the index of the repository at dir
// differs from HEAD.
func HasStagedChanges(dir string) (bool, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return false, errors.Wrapf(err, "Failed to open git repository at %s", dir)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return false, errors.Wrap(err, "Failed to get worktree")
	}

	status, err := wt.Status()
	if err != nil {
		return false, errors.Wrap(err, "Failed to get worktree status")
	}

	for _, s := range status {
		if s.Staging != gogit.Unmodified && s.Staging != gogit.Untracked {
			return true, nil
		}
	}
	return false, nil
}

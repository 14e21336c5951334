package service

import (
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// removeLocalAttachments deletes the spooled attachment files for a claim.
// A path that is already gone counts as removed: cleanup races with the
// maintenance sweep and both deleters must treat absence as success.
func removeLocalAttachments(paths []string) (removed, failed int) {
	for _, path := range paths {
		err := os.Remove(path)
		if err == nil || os.IsNotExist(err) {
			removed++
			continue
		}
		failed++
		log.WithError(err).Warnf("Failed to delete attachment %s", filepath.Base(path))
	}
	return removed, failed
}

// removeClaimDirIfEmpty removes the per-claim directory once its files are
// gone. Non-empty and already-deleted directories are both left alone
// without error.
func removeClaimDirIfEmpty(paths []string) {
	if len(paths) == 0 {
		return
	}
	dir := filepath.Dir(paths[0])

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return
	}
	if err != nil {
		log.WithError(err).Warnf("Failed to inspect claim directory %s", dir)
		return
	}
	if len(entries) > 0 {
		return
	}

	if err := os.Remove(dir); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warnf("Failed to delete claim directory %s", dir)
	}
}

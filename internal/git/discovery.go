package git

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// MetadataDir is the directory git keeps its object database in.
const MetadataDir = ".git"

// FindRepos walks root depth-first and returns every directory that directly
// contains a .git directory, in the order the filesystem lists entries.
//
// .git directories are not descended into. Hidden directories and
// directories named in skip are not scanned at all. Directories that cannot
// be read and broken symlinks are skipped silently. Symlinks to directories
// are followed; a directory reached twice is scanned once, so link cycles
// terminate. Repositories are reported under the path they were reached by.
func FindRepos(root string, skip []string) []string {
	skipSet := make(map[string]bool, len(skip))
	for _, name := range skip {
		skipSet[name] = true
	}

	var repos []string
	visited := make(map[string]bool)
	var scan func(dir string)
	scan = func(dir string) {
		if real, err := filepath.EvalSymlinks(dir); err == nil {
			if visited[real] {
				return
			}
			visited[real] = true
		}

		// A partial listing is still scanned.
		entries, _ := readDirUnsorted(dir)
		for _, entry := range entries {
			if !isDir(dir, entry) {
				continue
			}
			name := entry.Name()
			switch {
			case name == MetadataDir:
				repos = append(repos, dir)
			case strings.HasPrefix(name, "."), skipSet[name]:
				// not scanned
			default:
				scan(filepath.Join(dir, name))
			}
		}
	}
	scan(root)

	return repos
}

// isDir reports whether entry is a directory, following a symlink to its
// target. A broken link is not a directory.
func isDir(dir string, entry os.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	return err == nil && info.IsDir()
}

// readDirUnsorted lists dir in filesystem order; os.ReadDir would sort.
func readDirUnsorted(dir string) ([]os.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.ReadDir(-1)
}

// DisplayPath returns repo relative to base, or "." for base itself.
// Paths outside base, or that cannot be related, are returned unchanged.
func DisplayPath(base, repo string) string {
	rel, err := filepath.Rel(base, repo)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return repo
	}
	return rel
}

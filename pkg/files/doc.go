// Package files implements the server file manager: path-validated
// operations inside a single server's data directory.
//
// Every client-supplied path goes through ValidatePath before any
// operation touches the filesystem:
//
//	client path ─▶ trim "/" ─▶ join onto <data_dir>/<uuid> ─▶ resolve
//	symlinks ─▶ reject unless inside the resolved root
//
// Paths that do not exist yet (write targets, mkdir, rename
// destinations) are validated through their parent directory instead.
//
// Core Components:
//
//   - ValidatePath: the containment gate. Returns a canonical absolute
//     path or a PathTraversal error.
//   - ListDirectory: directory listing sorted directories-first then
//     case-insensitively, each entry carrying size, mtime, and a mime
//     type guessed from the extension.
//   - ReadFile / WriteFile: bounded reads (10 MiB cap) and writes that
//     create missing parents.
//   - Compress / Decompress: deflate zip archives out, zip or gzipped
//     tar in. Archive entry names are re-validated on extraction so a
//     hostile archive cannot write outside its destination.
//
// Usage:
//
//	path, err := files.ValidatePath(root, req.Path)
//	if err != nil {
//	    return err
//	}
//	entries, err := files.ListDirectory(path)
//
// Integration Points:
//
//   - pkg/api: every /files route resolves paths here before acting.
package files

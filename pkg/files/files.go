package files

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"errors"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/nexus-panel/wings/pkg/types"
)

// MaxFileSize caps single-file reads served over the API.
const MaxFileSize = 10 * 1024 * 1024

func init() {
	// Minimal images ship without /etc/mime.types; pin the extensions the
	// Panel file browser actually renders so listings stay stable.
	for ext, typ := range map[string]string{
		".txt":        "text/plain",
		".log":        "text/plain",
		".properties": "text/plain",
		".conf":       "text/plain",
		".yml":        "application/yaml",
		".yaml":       "application/yaml",
		".toml":       "application/toml",
		".sh":         "application/x-sh",
		".jar":        "application/java-archive",
		".zip":        "application/zip",
		".gz":         "application/gzip",
		".tgz":        "application/gzip",
	} {
		_ = mime.AddExtensionType(ext, typ)
	}
}

// Entry describes one directory entry in a listing.
type Entry struct {
	Name        string    `json:"name"`
	IsDirectory bool      `json:"is_directory"`
	Size        uint64    `json:"size"`
	Modified    time.Time `json:"modified"`
	MimeType    string    `json:"mime_type"`
}

// ValidatePath resolves a client-supplied path against the server root and
// rejects anything that escapes it. The leading slash is dropped so Panel
// paths are always root-relative. Existing paths are resolved through
// symlinks before the containment check; for paths that do not exist yet,
// the parent must exist and resolve inside the root.
func ValidatePath(serverRoot, requested string) (string, error) {
	clean := strings.TrimLeft(requested, "/")
	joined := filepath.Join(serverRoot, clean)

	canonicalRoot, err := filepath.EvalSymlinks(serverRoot)
	if err != nil {
		return "", types.IOError(errors.New("Server root does not exist"))
	}

	var canonical string
	if _, err := os.Stat(joined); err == nil {
		canonical, err = filepath.EvalSymlinks(joined)
		if err != nil {
			return "", types.IOError(err)
		}
	} else {
		base := filepath.Base(joined)
		if base == "/" || base == "." || base == ".." {
			return "", types.PathTraversal()
		}
		parent, err := filepath.EvalSymlinks(filepath.Dir(joined))
		if err != nil {
			return "", types.IOError(err)
		}
		if !within(parent, canonicalRoot) {
			return "", types.PathTraversal()
		}
		canonical = filepath.Join(parent, base)
	}

	if !within(canonical, canonicalRoot) {
		return "", types.PathTraversal()
	}
	return canonical, nil
}

// within reports whether path sits at or under root, comparing whole path
// components so /data/ab does not pass for root /data/a.
func within(path, root string) bool {
	if path == root {
		return true
	}
	return strings.HasPrefix(path, root+string(filepath.Separator))
}

// ListDirectory returns the entries of a directory sorted directories
// first, then case-insensitively by name. File mime types are guessed from
// the extension; directories report the pseudo-type "directory".
func ListDirectory(path string) ([]Entry, error) {
	dirents, err := os.ReadDir(path)
	if err != nil {
		return nil, types.IOError(err)
	}

	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		info, err := d.Info()
		if err != nil {
			return nil, types.IOError(err)
		}

		mimeType := "directory"
		if !info.IsDir() {
			mimeType = mime.TypeByExtension(filepath.Ext(d.Name()))
			if mimeType == "" {
				mimeType = "application/octet-stream"
			}
		}

		entries = append(entries, Entry{
			Name:        d.Name(),
			IsDirectory: info.IsDir(),
			Size:        uint64(info.Size()),
			Modified:    info.ModTime().UTC(),
			MimeType:    mimeType,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDirectory != entries[j].IsDirectory {
			return entries[i].IsDirectory
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
	return entries, nil
}

// ReadFile returns the file's content, refusing files over MaxFileSize.
func ReadFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", types.IOError(err)
	}
	if info.Size() > MaxFileSize {
		return "", types.FileTooLarge()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", types.IOError(err)
	}
	return string(data), nil
}

// WriteFile writes content, creating parent directories as needed.
func WriteFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return types.IOError(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return types.IOError(err)
	}
	return nil
}

// CreateDirectory makes the directory and any missing parents.
func CreateDirectory(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return types.IOError(err)
	}
	return nil
}

// Rename moves a file or directory to a new validated path.
func Rename(from, to string) error {
	if err := os.Rename(from, to); err != nil {
		return types.IOError(err)
	}
	return nil
}

// Delete removes each path: files are unlinked, directories removed
// recursively. Symlinks are unlinked, never followed.
func Delete(paths []string) error {
	for _, path := range paths {
		info, err := os.Lstat(path)
		if err != nil {
			return types.IOError(err)
		}
		if info.IsDir() {
			err = os.RemoveAll(path)
		} else {
			err = os.Remove(path)
		}
		if err != nil {
			return types.IOError(err)
		}
	}
	return nil
}

// Compress writes a deflate zip of the given paths to dest. Directories
// are archived recursively under their own name so extraction recreates
// them; bare files are archived by basename.
func Compress(paths []string, dest string) error {
	out, err := os.Create(dest)
	if err != nil {
		return types.IOError(err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			zw.Close()
			return types.IOError(err)
		}

		if info.IsDir() {
			base := filepath.Dir(path)
			err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				rel, err := filepath.Rel(base, p)
				if err != nil {
					return err
				}
				name := filepath.ToSlash(rel)
				if d.IsDir() {
					_, err := zw.Create(name + "/")
					return err
				}
				return addToZip(zw, p, name)
			})
		} else {
			err = addToZip(zw, path, filepath.Base(path))
		}
		if err != nil {
			zw.Close()
			return types.IOError(err)
		}
	}

	if err := zw.Close(); err != nil {
		return types.IOError(err)
	}
	return nil
}

func addToZip(zw *zip.Writer, path, name string) error {
	w, err := zw.Create(name)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(w, f)
	return err
}

// Decompress extracts an archive into dest, dispatching on the file
// extension: .zip, or .gz/.tgz for gzipped tarballs. Entry names are
// contained to dest; an entry that escapes aborts the extraction.
func Decompress(archive, dest string) error {
	ext := strings.TrimPrefix(filepath.Ext(archive), ".")
	switch ext {
	case "zip":
		return extractZip(archive, dest)
	case "gz", "tgz":
		return extractTarGz(archive, dest)
	default:
		return types.Configf("Unsupported archive format: %s", ext)
	}
}

func extractZip(archive, dest string) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return types.IOError(err)
	}
	defer r.Close()

	for _, f := range r.File {
		target, ok := containedPath(dest, f.Name)
		if !ok {
			return types.PathTraversal()
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return types.IOError(err)
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return types.IOError(err)
		}

		rc, err := f.Open()
		if err != nil {
			return types.IOError(err)
		}
		err = writeExtracted(target, rc, f.Mode().Perm())
		rc.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func extractTarGz(archive, dest string) error {
	f, err := os.Open(archive)
	if err != nil {
		return types.IOError(err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return types.IOError(err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return types.IOError(err)
		}

		target, ok := containedPath(dest, hdr.Name)
		if !ok {
			return types.PathTraversal()
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return types.IOError(err)
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return types.IOError(err)
			}
			if err := writeExtracted(target, tr, fs.FileMode(hdr.Mode).Perm()); err != nil {
				return err
			}
		default:
			// symlinks and special files are not extracted
		}
	}
}

func writeExtracted(target string, r io.Reader, perm fs.FileMode) error {
	if perm == 0 {
		perm = 0o644
	}
	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return types.IOError(err)
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return types.IOError(err)
	}
	if err := out.Close(); err != nil {
		return types.IOError(err)
	}
	return nil
}

// containedPath joins an archive entry name onto dest and reports whether
// the result stays inside dest.
func containedPath(dest, name string) (string, bool) {
	target := filepath.Join(dest, filepath.FromSlash(name))
	if !within(target, filepath.Clean(dest)) {
		return "", false
	}
	return target, true
}

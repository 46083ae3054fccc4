package api

import (
	"io"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"

	"github.com/nexus-panel/wings/pkg/files"
	"github.com/nexus-panel/wings/pkg/types"
)

// serverRoot is the on-disk data directory holding a server's files.
func (s *HTTPServer) serverRoot(uuid string) string {
	return filepath.Join(s.cfg.Storage.DataDir, uuid)
}

// validate resolves a client-supplied path against the server root,
// answering the error itself when the path is rejected.
func (s *HTTPServer) validate(w http.ResponseWriter, uuid, requested string) (string, bool) {
	resolved, err := files.ValidatePath(s.serverRoot(uuid), requested)
	if err != nil {
		writeError(w, err)
		return "", false
	}
	return resolved, true
}

func (s *HTTPServer) handleListFiles(w http.ResponseWriter, r *http.Request) {
	uuid := mux.Vars(r)["uuid"]

	requested := r.URL.Query().Get("path")
	if requested == "" {
		requested = "/"
	}

	resolved, ok := s.validate(w, uuid, requested)
	if !ok {
		return
	}

	entries, err := files.ListDirectory(resolved)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"files": entries})
}

func (s *HTTPServer) handleReadFile(w http.ResponseWriter, r *http.Request) {
	uuid := mux.Vars(r)["uuid"]

	resolved, ok := s.validate(w, uuid, r.URL.Query().Get("path"))
	if !ok {
		return
	}

	content, err := files.ReadFile(resolved)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, content)
}

// writeFileRequest carries the content; the path arrives in the query
// string from the Panel, or in the body from older clients.
type writeFileRequest struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

func (s *HTTPServer) handleWriteFile(w http.ResponseWriter, r *http.Request) {
	uuid := mux.Vars(r)["uuid"]

	var body writeFileRequest
	if !s.decode(w, r, &body) {
		return
	}

	requested := firstNonEmpty(r.URL.Query().Get("path"), body.Path)
	resolved, ok := s.validate(w, uuid, requested)
	if !ok {
		return
	}

	if err := files.WriteFile(resolved, body.Content); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type createDirectoryRequest struct {
	Path string `json:"path"`
}

func (s *HTTPServer) handleCreateDirectory(w http.ResponseWriter, r *http.Request) {
	uuid := mux.Vars(r)["uuid"]

	var body createDirectoryRequest
	if !s.decode(w, r, &body) {
		return
	}

	resolved, ok := s.validate(w, uuid, body.Path)
	if !ok {
		return
	}

	if err := files.CreateDirectory(resolved); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// renameFileRequest accepts both shapes seen in the wild: {from, to} and
// {path, newName}. A newName containing a slash is root-relative;
// otherwise the entry keeps its directory.
type renameFileRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Path    string `json:"path"`
	NewName string `json:"newName"`
}

func (r *renameFileRequest) resolve() (string, string) {
	if r.From != "" || r.To != "" {
		return r.From, r.To
	}
	if strings.Contains(r.NewName, "/") {
		return r.Path, r.NewName
	}
	return r.Path, path.Join(path.Dir(r.Path), r.NewName)
}

func (s *HTTPServer) handleRenameFile(w http.ResponseWriter, r *http.Request) {
	uuid := mux.Vars(r)["uuid"]

	var body renameFileRequest
	if !s.decode(w, r, &body) {
		return
	}

	fromRequested, toRequested := body.resolve()
	from, ok := s.validate(w, uuid, fromRequested)
	if !ok {
		return
	}
	to, ok := s.validate(w, uuid, toRequested)
	if !ok {
		return
	}

	if err := files.Rename(from, to); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type deleteFilesRequest struct {
	Paths []string `json:"paths"`
}

func (s *HTTPServer) handleDeleteFiles(w http.ResponseWriter, r *http.Request) {
	uuid := mux.Vars(r)["uuid"]

	var body deleteFilesRequest
	if !s.decode(w, r, &body) {
		return
	}

	resolved := make([]string, 0, len(body.Paths))
	for _, requested := range body.Paths {
		p, ok := s.validate(w, uuid, requested)
		if !ok {
			return
		}
		resolved = append(resolved, p)
	}

	if err := files.Delete(resolved); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type compressFilesRequest struct {
	Paths       []string `json:"paths"`
	Destination string   `json:"destination"`
}

func (s *HTTPServer) handleCompressFiles(w http.ResponseWriter, r *http.Request) {
	uuid := mux.Vars(r)["uuid"]

	var body compressFilesRequest
	if !s.decode(w, r, &body) {
		return
	}

	resolved := make([]string, 0, len(body.Paths))
	for _, requested := range body.Paths {
		p, ok := s.validate(w, uuid, requested)
		if !ok {
			return
		}
		resolved = append(resolved, p)
	}

	dest, ok := s.validate(w, uuid, body.Destination)
	if !ok {
		return
	}

	if err := files.Compress(resolved, dest); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type decompressFileRequest struct {
	Path        string `json:"path"`
	Destination string `json:"destination"`
}

func (s *HTTPServer) handleDecompressFile(w http.ResponseWriter, r *http.Request) {
	uuid := mux.Vars(r)["uuid"]

	var body decompressFileRequest
	if !s.decode(w, r, &body) {
		return
	}

	archive, ok := s.validate(w, uuid, body.Path)
	if !ok {
		return
	}
	dest, ok := s.validate(w, uuid, body.Destination)
	if !ok {
		return
	}

	if err := files.Decompress(archive, dest); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// handleUploadFile writes each part of a multipart form to the server
// root under the part's filename. Filenames are validated like any other
// client path, so traversal attempts are rejected.
func (s *HTTPServer) handleUploadFile(w http.ResponseWriter, r *http.Request) {
	uuid := mux.Vars(r)["uuid"]

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid multipart form: " + err.Error()})
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	for _, headers := range r.MultipartForm.File {
		for _, fh := range headers {
			resolved, ok := s.validate(w, uuid, fh.Filename)
			if !ok {
				return
			}

			src, err := fh.Open()
			if err != nil {
				writeError(w, types.IOError(err))
				return
			}
			data, err := io.ReadAll(src)
			_ = src.Close()
			if err != nil {
				writeError(w, types.IOError(err))
				return
			}

			if err := files.WriteFile(resolved, string(data)); err != nil {
				writeError(w, err)
				return
			}
		}
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

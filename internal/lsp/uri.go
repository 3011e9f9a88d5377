package lsp

import (
	"net/url"
	"path/filepath"
)

func uriToPath(uri string) string {
	if uri == "" {
		return ""
	}
	parsed, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	if parsed.Scheme != "" && parsed.Scheme != "file" {
		return ""
	}
	path := parsed.Path
	if parsed.Scheme == "" {
		// Сырой путь без схемы: url.Parse его не декодировал.
		path = uri
		if unescaped, err := url.PathUnescape(path); err == nil {
			path = unescaped
		}
	}
	path = filepath.FromSlash(path)
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return path
}

func pathToURI(path string) string {
	if path == "" {
		return ""
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u.String()
}

// canonicalURI normalizes file URIs so the same document always maps
// to the same key. Non-file URIs (untitled buffers) pass through.
func canonicalURI(uri string) string {
	if uri == "" {
		return ""
	}
	if path := uriToPath(uri); path != "" {
		return pathToURI(path)
	}
	return uri
}

// Package urilist implements the text/uri-list clipboard format: one
// file:// URI per line, CRLF terminated, with lines starting with '#'
// treated as comments. It also handles the path/URI conversions the
// format requires, including percent-encoding of special characters.
package urilist

import (
	"fmt"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
)

// Parse extracts local file-system paths from a text/uri-list payload.
// Carriage returns are stripped, blank lines and comment lines are
// skipped, and entries that fail URI-to-path conversion are dropped.
// Absolute-path lines are accepted as-is: clipboard reads may hand back
// the plain-text fallback representation instead of the URI list,
// depending on which target the platform's paste path negotiates.
func Parse(data string) []string {
	var paths []string
	for _, line := range strings.Split(data, "\n") {
		line = strings.ReplaceAll(line, "\r", "")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		path, err := ToPath(line)
		if err != nil {
			if filepath.IsAbs(line) {
				paths = append(paths, line)
			}
			continue
		}
		paths = append(paths, path)
	}
	return paths
}

// Serialize joins URIs into a text/uri-list payload. Every entry gets a
// CRLF terminator, including the last one, as the format requires.
func Serialize(uris []string) string {
	var b strings.Builder
	for _, uri := range uris {
		b.WriteString(uri)
		b.WriteString("\r\n")
	}
	return b.String()
}

// PlainText builds the plain-text fallback representation: one path per
// line, newline separated, no trailing newline.
func PlainText(paths []string) string {
	return strings.Join(paths, "\n")
}

// ToURI converts an absolute file-system path to a file:// URI. Relative
// paths are rejected because the receiving application has no way to
// resolve them.
func ToURI(path string) (string, error) {
	if !filepath.IsAbs(path) {
		return "", fmt.Errorf("path is not absolute: %q", path)
	}
	slashed := filepath.ToSlash(path)
	// Windows drive-letter paths need a leading slash so the drive is not
	// parsed as a URL host: C:/foo becomes file:///C:/foo.
	if !strings.HasPrefix(slashed, "/") {
		slashed = "/" + slashed
	}
	u := url.URL{Scheme: "file", Path: slashed}
	return u.String(), nil
}

// ToPath converts a file:// URI back to a local path, decoding any
// percent-encoded characters. URIs with a non-file scheme or a remote
// host are rejected.
func ToPath(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("parse %q: %w", uri, err)
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("unsupported scheme %q in %q", u.Scheme, uri)
	}
	if u.Host != "" && u.Host != "localhost" {
		return "", fmt.Errorf("remote host %q in %q", u.Host, uri)
	}
	if u.Path == "" {
		return "", fmt.Errorf("empty path in %q", uri)
	}
	p := u.Path
	// Strip the slash ToURI added before a drive letter.
	if runtime.GOOS == "windows" && len(p) >= 3 && p[0] == '/' && p[2] == ':' {
		p = p[1:]
	}
	return filepath.FromSlash(p), nil
}

// ConvertPaths converts paths to URIs, preserving order. Paths that fail
// conversion are returned separately so callers can decide whether to
// drop them or fail the batch.
func ConvertPaths(paths []string) (uris []string, skipped []string) {
	for _, p := range paths {
		uri, err := ToURI(p)
		if err != nil {
			skipped = append(skipped, p)
			continue
		}
		uris = append(uris, uri)
	}
	return uris, skipped
}

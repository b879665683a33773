package util

import (
	"path/filepath"
	"strings"
)

const unnamedUpload = "upload"

// DisplayFileName reduces a client-supplied upload name to a bare, printable base name.
// Empty or dot-only names become "upload".
func DisplayFileName(name string) string {
	s := strings.ReplaceAll(strings.TrimSpace(name), "\\", "/")
	s = filepath.Base(s)
	s = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
	s = strings.TrimSpace(s)
	if s == "" || s == "." || s == ".." || s == "/" {
		return unnamedUpload
	}
	return s
}

// Package util holds small helpers shared by the commands and interactive views.
package util

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/lifo-cli/lifo/filesystem"
	"golang.org/x/term"
)

var (
	unsafeRune  = regexp.MustCompile(`[\\/<>:;"'|?!*{}#%&^+,~\s]`)
	underscores = regexp.MustCompile(`__+`)
	trimmable   = regexp.MustCompile(`^[_\-.]+|[_\-.]+$`)
)

// SanitizeFilename turns name into something every filesystem accepts.
// Unsafe characters become underscores, runs of underscores collapse and separators are trimmed at both ends.
func SanitizeFilename(name string) string {
	name = unsafeRune.ReplaceAllString(name, "_")
	name = underscores.ReplaceAllString(name, "_")
	return trimmable.ReplaceAllString(name, "")
}

// Quantify formats count with the matching noun, e.g. "1 item" or "3 items".
func Quantify(count int, singular, plural string) string {
	noun := plural
	if count == 1 {
		noun = singular
	}
	return fmt.Sprintf("%d %s", count, noun)
}

// StdinPiped reports whether stdin is redirected from a pipe or file rather than a terminal.
func StdinPiped() bool {
	return !term.IsTerminal(int(os.Stdin.Fd()))
}

// FileStem is the base name of path without its extension.
func FileStem(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}

// PrintErasable writes msg on the current line. Calling the returned func blanks it out again.
func PrintErasable(msg string) (erase func()) {
	fmt.Fprint(os.Stdout, "\r"+msg)
	return func() {
		fmt.Fprint(os.Stdout, "\r"+strings.Repeat(" ", len(msg))+"\r")
	}
}

// Ignore calls f and drops its error, for deferred Close calls.
func Ignore(f func() error) {
	_ = f()
}

// Delete removes path from the active filesystem, recursing into directories.
func Delete(path string) error {
	fs := filesystem.API()

	info, err := fs.Stat(path)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return fs.RemoveAll(path)
	}
	return fs.Remove(path)
}

// Package secrets substitutes configuration values with the contents of
// files mounted under /run/secrets, as done by Docker and Podman.
package secrets

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// Dir is the directory secrets are read from.
var Dir = "/run/secrets"

// Prefix is the the prefix of a string to indicate it should
// be substituted with the secret value. For example:
//
//	"!secret foo" -> /run/secrets/foo
const Prefix = "!secret "

// maxSize bounds the size of a secret file.
const maxSize = 4096

// CutPrefix is equivalent to [strings.CutPrefix](s, [Prefix]) with the
// remaining name trimmed of surrounding space.
func CutPrefix(s string) (secret string, ok bool) {
	secret, ok = strings.CutPrefix(s, Prefix)
	return strings.TrimSpace(secret), ok
}

// Read returns the value of the secret file <Dir>/<secret>, trimmed of
// surrounding whitespace.
func Read(secret string) (string, error) {
	if secret == "" || strings.ContainsRune(secret, '/') {
		return "", &os.PathError{Op: "read", Path: secret, Err: os.ErrInvalid}
	}
	path := filepath.Join(Dir, secret)
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return "", &os.PathError{Op: "open", Path: path, Err: err}
	}
	defer unix.Close(fd)

	var (
		buf [maxSize]byte
		n   int
	)
	for n < len(buf) {
		m, err := unix.Read(fd, buf[n:])
		if err == unix.EINTR {
			continue
		} else if err != nil {
			return "", &os.PathError{Op: "read", Path: path, Err: err}
		}
		if m == 0 {
			break
		}
		n += m
	}
	if n == len(buf) {
		return "", &os.PathError{Op: "read", Path: path, Err: io.ErrShortBuffer}
	}
	return string(bytes.TrimSpace(buf[:n])), nil
}

// MustRead returns the value of the secret file <Dir>/<secret>.
// If there is an error reading the file then MustRead returns fallback.
func MustRead(secret, fallback string) string {
	s, err := Read(secret)
	if err != nil {
		return fallback
	}
	return s
}

package storage

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"path"
	"strings"
	"sync"
)

// ErrNotImage is returned by SniffImage for content that is not an image.
var ErrNotImage = errors.New("content is not an image")

// sniffLen is how much of a file the content type is detected from.
const sniffLen = 512

// Sniff detects the content type of r from its first bytes and returns a
// reader that still yields the whole content.
func Sniff(r io.Reader) (io.Reader, string, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, "", err
	}
	head = head[:n]
	return io.MultiReader(bytes.NewReader(head), r), http.DetectContentType(head), nil
}

// SniffImage is Sniff that fails with ErrNotImage unless the content itself
// is an image. File names and declared types are never consulted.
func SniffImage(r io.Reader) (io.Reader, string, error) {
	body, contentType, err := Sniff(r)
	if err != nil {
		return nil, "", err
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, contentType, ErrNotImage
	}
	return body, contentType, nil
}

// InImageFolder reports whether p names a file directly inside one of
// ImageFolders. Paths that are not already clean are refused.
func InImageFolder(p string) bool {
	if p == "" || path.Clean(p) != p {
		return false
	}
	folder, name, ok := strings.Cut(p, "/")
	return ok && name != "" && !strings.Contains(name, "/") && AllowedFolder(folder)
}

// Owners records which account uploaded each visitor image; only that
// account may delete it. Records are held in process, so uploads made before
// a restart can no longer be deleted through the site.
type Owners struct {
	mu     sync.Mutex
	byPath map[string]string
}

func NewOwners() *Owners {
	return &Owners{byPath: make(map[string]string)}
}

// Record marks uid as the uploader of p.
func (o *Owners) Record(p, uid string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.byPath[p] = uid
}

// Owns reports whether uid uploaded p.
func (o *Owners) Owns(p, uid string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	owner, ok := o.byPath[p]
	return ok && uid != "" && owner == uid
}

// Forget drops the record for p.
func (o *Owners) Forget(p string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.byPath, p)
}

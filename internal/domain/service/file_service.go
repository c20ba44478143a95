package service

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"
)

// ObjectStore persists binary assets under hierarchical keys and hands back a
// stable public URL for each.
type ObjectStore interface {
	// Upload stores data at key. An empty contentType is sniffed from data.
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	// Delete removes the object behind a URL previously returned by Upload.
	Delete(ctx context.Context, url string) error
	// Replace deletes oldURL when set, then uploads. A failed delete is logged
	// and does not stop the upload.
	Replace(ctx context.Context, oldURL, key string, data []byte, contentType string) (string, error)
}

// File is an uploaded form file buffered in memory.
type File struct {
	FieldName   string
	FileName    string
	ContentType string
	Data        []byte
}

// Ext returns the lower-cased extension of the original file name, including the dot.
func (f File) Ext() string {
	return strings.ToLower(path.Ext(f.FileName))
}

// ObjectKey joins folder and name, prefixing the name with a millisecond
// timestamp so repeated uploads of the same file never collide.
func ObjectKey(folder, name string, now time.Time) string {
	folder = strings.Trim(folder, "/")
	name = strings.ReplaceAll(strings.TrimSpace(name), "/", "_")
	return fmt.Sprintf("%s/%d_%s", folder, now.UnixMilli(), name)
}

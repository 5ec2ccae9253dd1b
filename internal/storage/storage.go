package storage

import (
	"context"
	"io"
)

// Uploader stores an object and returns the path or URL it can be read from.
type Uploader interface {
	Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (storedPath string, err error)
}

func PhotoObjectName(userID, id, ext string) string {
	return "photos/" + userID + "/" + id + ext
}

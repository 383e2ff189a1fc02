package platform

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"sort"
)

const contentType = "application/json"

// Body is a request payload. It is buffered so every retry sends the same bytes.
type Body interface {
	Bytes() []byte
	ContentType() string
	// Multipart reports whether the payload is a multipart form.
	Multipart() bool
}

type jsonBody struct {
	data []byte
}

// JSONBody serializes v once for all attempts.
func JSONBody(v any) (Body, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}
	return &jsonBody{data: data}, nil
}

func (b *jsonBody) Bytes() []byte       { return b.data }
func (b *jsonBody) ContentType() string { return contentType }
func (b *jsonBody) Multipart() bool     { return false }

// File is a file part of a multipart payload. Content comes from Reader, or
// from Path when Reader is nil.
type File struct {
	Field  string
	Name   string
	Reader io.Reader
	Path   string
}

// MultipartBody is a form payload with its own boundary. Files are copied into
// memory once, so a body holds the full size of its recordings until it is
// released.
type MultipartBody struct {
	data        []byte
	contentType string
}

// NewMultipartBody writes fields (in key order) followed by files into a form.
func NewMultipartBody(fields map[string]string, files ...File) (*MultipartBody, error) {
	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := w.WriteField(key, fields[key]); err != nil {
			return nil, err
		}
	}

	for _, f := range files {
		if err := writeFile(w, f); err != nil {
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return &MultipartBody{data: b.Bytes(), contentType: w.FormDataContentType()}, nil
}

func (b *MultipartBody) Bytes() []byte       { return b.data }
func (b *MultipartBody) ContentType() string { return b.contentType }
func (b *MultipartBody) Multipart() bool     { return true }

// writeFile copies one file part. Files opened from Path are closed before the
// next part is written.
func writeFile(w *multipart.Writer, f File) error {
	src := f.Reader
	if src == nil {
		if f.Path == "" {
			return fmt.Errorf("file %q has no content", f.Name)
		}

		file, err := os.Open(f.Path)
		if err != nil {
			return fmt.Errorf("opening file %q: %w", f.Name, err)
		}
		defer file.Close()
		src = file
	}

	part, err := w.CreateFormFile(f.Field, f.Name)
	if err != nil {
		return err
	}

	if _, err := io.Copy(part, src); err != nil {
		return fmt.Errorf("copying file %q: %w", f.Name, err)
	}
	return nil
}

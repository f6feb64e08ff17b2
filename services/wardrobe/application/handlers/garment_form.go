package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	appsvcs "github.com/ghuser/wardrobe/services/wardrobe/application/services"
)

const (
	maxFormMemory = 10 << 20 // bytes held in memory before spilling to disk
	maxImageSize  = 5 << 20
)

// Garment create and update requests arrive as multipart/form-data so the
// optional image file can travel with the metadata fields. Helpers here
// decode that form into the service-layer input structs.

// parseGarmentForm parses the multipart body and returns the optional image
// part. The caller owns closing the returned file.
func parseGarmentForm(r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return nil, nil, fmt.Errorf("invalid multipart form: %w", err)
	}
	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("invalid image part: %w", err)
	}
	if header.Size > maxImageSize {
		file.Close()
		return nil, nil, fmt.Errorf("image exceeds %d bytes", maxImageSize)
	}
	return file, header, nil
}

func imageUpload(file multipart.File, header *multipart.FileHeader) *appsvcs.ImageUpload {
	if file == nil {
		return nil
	}
	return &appsvcs.ImageUpload{
		Reader:      file,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
	}
}

// formString returns the pointer form of a field, nil when absent. An empty
// present value is returned as a pointer to "" so updates can clear fields.
func formString(r *http.Request, key string) *string {
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}

func formBool(r *http.Request, key string) (*bool, error) {
	raw := formString(r, key)
	if raw == nil {
		return nil, nil
	}
	v, err := strconv.ParseBool(*raw)
	if err != nil {
		return nil, fmt.Errorf("field %s: expected boolean, got %q", key, *raw)
	}
	return &v, nil
}

func formInt(r *http.Request, key string) (*int, error) {
	raw := formString(r, key)
	if raw == nil {
		return nil, nil
	}
	v, err := strconv.Atoi(*raw)
	if err != nil {
		return nil, fmt.Errorf("field %s: expected integer, got %q", key, *raw)
	}
	return &v, nil
}

func formTime(r *http.Request, key string) (*time.Time, error) {
	raw := formString(r, key)
	if raw == nil {
		return nil, nil
	}
	v, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil, fmt.Errorf("field %s: expected RFC 3339 timestamp, got %q", key, *raw)
	}
	return &v, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package domain

import "errors"

// Sentinel errors for the wardrobe domain. Use errors.Is() to check these.
//
// Not-found errors are returned both when a record does not exist and when it
// belongs to another user — callers must not be able to tell the two apart.
var (
	// ErrGarmentNotFound indicates the garment does not exist for the caller.
	ErrGarmentNotFound = errors.New("garment not found")

	// ErrOutfitNotFound indicates the outfit does not exist for the caller.
	ErrOutfitNotFound = errors.New("outfit not found")

	// ErrInvalidGarment indicates garment attributes violate domain constraints.
	ErrInvalidGarment = errors.New("invalid garment")

	// ErrInvalidOutfit indicates outfit attributes violate domain constraints.
	ErrInvalidOutfit = errors.New("invalid outfit")

	// ErrImageStore indicates the image store rejected an upload.
	// Upload failures abort the garment write; release failures are logged
	// and swallowed instead.
	ErrImageStore = errors.New("image store failure")
)

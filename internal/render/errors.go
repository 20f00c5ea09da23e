package render

import (
	"errors"
	"fmt"
)

var (
	ErrIdentityNotFound   = errors.New("identity image not found")
	ErrTextShadowNotFound = errors.New("text shadow overlay not found")
	ErrRarityNotFound     = errors.New("rarity overlay not found")
	ErrTextTooLong        = errors.New("text too long")
	ErrBadRarityLevel     = errors.New("bad rarity level")
)

// AssetError reports a raster that could not be loaded.
// Kind is one of the ErrXxxNotFound sentinels.
type AssetError struct {
	Kind error
	Path string
	Err  error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *AssetError) Unwrap() []error { return []error{e.Kind, e.Err} }

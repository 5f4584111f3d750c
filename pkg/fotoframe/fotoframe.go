// Package fotoframe renders photographs into decorative frames annotated
// with the camera settings found in their EXIF metadata.
package fotoframe

// Config holds frame rendering and batch options.
type Config struct {
	// Template names a catalog entry; unknown names fall back to the
	// default template.
	Template string

	// LogoPath optionally points at a camera-brand logo image to overlay
	// in the bottom band.
	LogoPath string

	// FontPaths are caller-supplied font candidates, searched before the
	// built-in platform defaults.
	FontPaths []string

	InDir         string
	OutDir        string
	CopyOriginals bool
}

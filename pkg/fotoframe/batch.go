package fotoframe

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/karrick/godirwalk"
	"github.com/otiai10/copy"
	"k8s.io/klog/v2"
)

var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".gif":  true,
}

// IsImageFile reports whether name has a recognized raster extension.
func IsImageFile(name string) bool {
	return imageExts[strings.ToLower(filepath.Ext(name))]
}

// Batch frames every image under c.InDir into c.OutDir, preserving the
// relative directory structure and naming outputs <base>_framed.jpg.
// Per-image failures are logged and counted; the walk continues past them.
func Batch(c *Config) error {
	if c.InDir == "" || c.OutDir == "" {
		return fmt.Errorf("batch needs both an input and an output directory")
	}

	framed := 0
	failed := 0

	err := godirwalk.Walk(c.InDir, &godirwalk.Options{
		Callback: func(path string, de *godirwalk.Dirent) error {
			if path != c.InDir && filepath.Base(path)[0] == '.' {
				return godirwalk.SkipThis
			}
			if de.IsDir() || !IsImageFile(path) {
				return nil
			}

			rel, err := filepath.Rel(c.InDir, path)
			if err != nil {
				return err
			}

			if c.CopyOriginals {
				if err := copy.Copy(path, filepath.Join(c.OutDir, rel)); err != nil {
					klog.Errorf("copy original %s: %v", path, err)
				}
			}

			base := filepath.Base(rel)
			noExt := strings.TrimSuffix(base, filepath.Ext(base))
			out := filepath.Join(c.OutDir, filepath.Dir(rel), noExt+"_framed.jpg")

			if err := Frame(path, out, c); err != nil {
				klog.Errorf("frame %s: %v", path, err)
				failed++
			} else {
				framed++
			}
			return nil
		},
	})
	if err != nil {
		return fmt.Errorf("walk: %w", err)
	}

	klog.Infof("framed %d images (%d failures)", framed, failed)
	if framed == 0 && failed > 0 {
		return fmt.Errorf("all %d images failed", failed)
	}
	return nil
}

// fotoframe adds a decorative border to photographs and annotates it with
// the camera settings found in their EXIF metadata.
package main

import (
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"github.com/fsnotify/fsnotify"
	"github.com/karrick/godirwalk"
	"k8s.io/klog/v2"

	"github.com/fotoframe/fotoframe/pkg/fotoframe"
)

var (
	inFile    = flag.String("in", "", "single photograph to frame")
	inDir     = flag.String("in-dir", "", "directory of photographs to frame (batch mode)")
	outFile   = flag.String("out", "", "output path in single mode (defaults to <name>_framed.jpg)")
	outDir    = flag.String("out-dir", "", "output directory in batch mode")
	logoPath  = flag.String("logo", "", "camera logo image to overlay (optional)")
	tplName   = flag.String("template", fotoframe.DefaultTemplate, "frame template: "+strings.Join(fotoframe.Templates(), " / "))
	copyOrig  = flag.Bool("copy-originals", false, "also copy untouched originals into the output directory")
	watchFlag = flag.Bool("watch", false, "watch the input directory and re-frame on changes")

	fontPaths stringList
)

// stringList collects a repeatable flag; earlier values take priority.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func main() {
	flag.Var(&fontPaths, "font", "candidate font file, may be repeated; searched before built-in defaults")
	klog.InitFlags(nil)
	flag.Parse()

	if (*inFile == "") == (*inDir == "") {
		klog.Exitf("exactly one of -in or -in-dir is required")
	}

	c := &fotoframe.Config{
		Template:      *tplName,
		LogoPath:      *logoPath,
		FontPaths:     fontPaths,
		InDir:         *inDir,
		OutDir:        *outDir,
		CopyOriginals: *copyOrig,
	}

	if *inFile != "" {
		out := *outFile
		if out == "" {
			base := filepath.Base(*inFile)
			out = strings.TrimSuffix(base, filepath.Ext(base)) + "_framed"
		}
		if err := fotoframe.Frame(*inFile, out, c); err != nil {
			klog.Exitf("frame failed: %v", err)
		}
		return
	}

	if *outDir == "" {
		klog.Exitf("-out-dir is required in batch mode")
	}

	if err := fotoframe.Batch(c); err != nil {
		klog.Exitf("batch failed: %v", err)
	}

	if *watchFlag {
		if err := watch(c); err != nil {
			klog.Exitf("watch failed: %v", err)
		}
	}
}

// watch re-runs the batch whenever the input tree changes.
func watch(c *fotoframe.Config) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("new watcher: %w", err)
	}
	defer w.Close()

	dirs, err := watchDirs(c.InDir)
	if err != nil {
		return err
	}

	klog.Infof("watching %d dirs ...", len(dirs))
	for _, d := range dirs {
		if err := w.Add(d); err != nil {
			return fmt.Errorf("watch %s: %w", d, err)
		}
	}

	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				klog.Infof("change detected: %s", event)
				if err := fotoframe.Batch(c); err != nil {
					klog.Errorf("batch failed: %v", err)
				}
			}
		case werr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			klog.Errorf("watch error: %v", werr)
		}
	}
}

// watchDirs lists every directory under root, skipping dotdirs.
func watchDirs(root string) ([]string, error) {
	dirs := []string{}
	err := godirwalk.Walk(root, &godirwalk.Options{
		Callback: func(path string, de *godirwalk.Dirent) error {
			if path != root && filepath.Base(path)[0] == '.' {
				return godirwalk.SkipThis
			}
			if de.IsDir() {
				dirs = append(dirs, path)
			}
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("walk: %w", err)
	}
	return dirs, nil
}

// Package sampleimg builds small in-memory photographs for tests: plain
// JPEGs and JPEGs carrying a hand-assembled EXIF block. No library in the
// dependency set writes EXIF, so the TIFF stream is laid out by hand.
package sampleimg

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
)

// The sample metadata describes a Nikon Z6 at 50mm, F1.8, 1/100s, ISO 100.
const (
	Make  = "Nikon"
	Model = "Z6"
)

// ExifTIFF returns a little-endian TIFF stream whose IFD0 carries
// Make/Model and whose Exif sub-IFD carries exposure time, aperture, ISO,
// and focal length.
func ExifTIFF() []byte {
	buf := &bytes.Buffer{}
	le := binary.LittleEndian

	w16 := func(v uint16) { _ = binary.Write(buf, le, v) }
	w32 := func(v uint32) { _ = binary.Write(buf, le, v) }
	entry := func(tag, typ uint16, count uint32, val []byte) {
		w16(tag)
		w16(typ)
		w32(count)
		buf.Write(val) // exactly 4 bytes: inline value or offset
	}
	off := func(v uint32) []byte {
		b := make([]byte, 4)
		le.PutUint32(b, v)
		return b
	}

	// Fixed layout:
	//   0   header
	//   8   IFD0: 3 entries
	//   50  Make string, NUL-terminated, padded to even length
	//   56  Exif sub-IFD: 4 entries
	//   110 rational values, 8 bytes each
	const (
		makeOff = 50
		exifOff = 56
		ratOff  = 110
	)

	buf.WriteString("II")
	w16(42)
	w32(8)

	// IFD0: Make, Model (inline), Exif IFD pointer.
	w16(3)
	entry(0x010F, 2, uint32(len(Make)+1), off(makeOff))
	entry(0x0110, 2, uint32(len(Model)+1), []byte("Z6\x00\x00"))
	entry(0x8769, 4, 1, off(exifOff))
	w32(0)

	buf.WriteString(Make + "\x00")

	// Exif sub-IFD: ExposureTime 1/100, FNumber 18/10, ISOSpeedRatings
	// 100 (inline short), FocalLength 50/1.
	w16(4)
	entry(0x829A, 5, 1, off(ratOff))
	entry(0x829D, 5, 1, off(ratOff+8))
	entry(0x8827, 3, 1, []byte{100, 0, 0, 0})
	entry(0x920A, 5, 1, off(ratOff+16))
	w32(0)

	w32(1)
	w32(100)
	w32(18)
	w32(10)
	w32(50)
	w32(1)

	return buf.Bytes()
}

// JPEG encodes a solid-color photograph of the given size. When withExif
// is true, an EXIF APP1 segment is spliced in directly after SOI.
func JPEG(w, h int, withExif bool) ([]byte, error) {
	m := image.NewRGBA(image.Rect(0, 0, w, h))
	fill := color.RGBA{R: 30, G: 120, B: 200, A: 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetRGBA(x, y, fill)
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, m, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}
	if !withExif {
		return buf.Bytes(), nil
	}

	enc := buf.Bytes()
	if len(enc) < 2 || enc[0] != 0xFF || enc[1] != 0xD8 {
		return nil, fmt.Errorf("encoder produced no SOI marker")
	}

	tiff := ExifTIFF()
	seg := &bytes.Buffer{}
	seg.Write([]byte{0xFF, 0xE1})
	_ = binary.Write(seg, binary.BigEndian, uint16(2+6+len(tiff)))
	seg.WriteString("Exif\x00\x00")
	seg.Write(tiff)

	out := make([]byte, 0, len(enc)+seg.Len())
	out = append(out, enc[:2]...)
	out = append(out, seg.Bytes()...)
	out = append(out, enc[2:]...)
	return out, nil
}

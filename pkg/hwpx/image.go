package hwpx

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"path/filepath"
	"strings"
)

// Fallback display size when the pixel dimensions cannot be read from
// the image header, already in HWPUNIT.
const (
	defaultImageWidth  = 15000
	defaultImageHeight = 7500
)

func binaryItemID(n int) string {
	return fmt.Sprintf("image%d", n)
}

// mediaTypeFromExtension maps a file extension to an image media type,
// returning "" for anything unrecognized.
func mediaTypeFromExtension(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".bmp":
		return "image/bmp"
	}
	return ""
}

// sniffMediaType identifies an image format from its magic bytes,
// defaulting to PNG when nothing matches.
func sniffMediaType(data []byte) string {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return "image/png"
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8}):
		return "image/jpeg"
	case bytes.HasPrefix(data, []byte("GIF87a")) || bytes.HasPrefix(data, []byte("GIF89a")):
		return "image/gif"
	case bytes.HasPrefix(data, []byte("BM")):
		return "image/bmp"
	}
	return "image/png"
}

// extensionForMediaType returns the package entry extension for an image
// media type.
func extensionForMediaType(mediaType string) string {
	switch mediaType {
	case "image/jpeg":
		return "jpg"
	case "image/gif":
		return "gif"
	case "image/bmp":
		return "bmp"
	}
	return "png"
}

// imageSize reads the pixel dimensions from the format header and scales
// them to HWPUNIT. Unreadable headers fall back to a default size.
func imageSize(data []byte, mediaType string) (width, height int) {
	var px, py int
	var ok bool
	switch mediaType {
	case "image/png":
		px, py, ok = pngSize(data)
	case "image/jpeg":
		px, py, ok = jpegSize(data)
	case "image/gif":
		px, py, ok = gifSize(data)
	case "image/bmp":
		px, py, ok = bmpSize(data)
	}
	if !ok {
		return defaultImageWidth, defaultImageHeight
	}
	return px * UnitsPerPixel, py * UnitsPerPixel
}

// pngSize reads the IHDR width and height, big-endian at offset 16.
func pngSize(data []byte) (int, int, bool) {
	if len(data) < 24 {
		return 0, 0, false
	}
	w := int(binary.BigEndian.Uint32(data[16:20]))
	h := int(binary.BigEndian.Uint32(data[20:24]))
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}

// jpegSize walks the marker segments until a start-of-frame (SOF0..SOF2)
// yields the dimensions. The frame header stores height before width.
func jpegSize(data []byte) (int, int, bool) {
	if len(data) < 4 || data[0] != 0xFF || data[1] != 0xD8 {
		return 0, 0, false
	}
	i := 2
	for i+9 < len(data) {
		if data[i] != 0xFF {
			i++
			continue
		}
		marker := data[i+1]
		if marker == 0xC0 || marker == 0xC1 || marker == 0xC2 {
			h := int(binary.BigEndian.Uint16(data[i+5 : i+7]))
			w := int(binary.BigEndian.Uint16(data[i+7 : i+9]))
			if w <= 0 || h <= 0 {
				return 0, 0, false
			}
			return w, h, true
		}
		if i+4 > len(data) {
			break
		}
		segLen := int(binary.BigEndian.Uint16(data[i+2 : i+4]))
		if segLen < 2 {
			break
		}
		i += 2 + segLen
	}
	return 0, 0, false
}

// gifSize reads the logical screen width and height, little-endian at
// offset 6.
func gifSize(data []byte) (int, int, bool) {
	if len(data) < 10 {
		return 0, 0, false
	}
	w := int(binary.LittleEndian.Uint16(data[6:8]))
	h := int(binary.LittleEndian.Uint16(data[8:10]))
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}

// bmpSize reads the BITMAPINFOHEADER dimensions at offsets 18 and 22.
// Height is signed; a negative value marks a top-down bitmap.
func bmpSize(data []byte) (int, int, bool) {
	if len(data) < 26 {
		return 0, 0, false
	}
	w := int(int32(binary.LittleEndian.Uint32(data[18:22])))
	h := int(int32(binary.LittleEndian.Uint32(data[22:26])))
	if h < 0 {
		h = -h
	}
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}

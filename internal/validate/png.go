package validate

import (
	"encoding/binary"
	"fmt"
)

var pngSignature = [8]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// PNGHeader is the result of validating a PNG asset's header shape only —
// CRC/deflate payload validation is explicitly out of scope (§1 Non-goals).
type PNGHeader struct {
	Valid  bool
	Width  int
	Height int
	Errors []Diag
}

// ValidatePNGHeader checks an asset's PNG signature and IHDR chunk shape:
// 8-byte signature, IHDR length 13, type "IHDR", width/height each in
// 8..=1024 and divisible by 8.
func ValidatePNGHeader(data []byte, path string) PNGHeader {
	var h PNGHeader

	fail := func(format string, args ...any) PNGHeader {
		h.Errors = append(h.Errors, Diag{Category: CategoryAsset, Location: path, Message: fmt.Sprintf(format, args...)})
		return h
	}

	if len(data) < 8 {
		return fail("asset %q is shorter than the PNG signature", path)
	}
	for i := 0; i < 8; i++ {
		if data[i] != pngSignature[i] {
			return fail("asset %q does not start with a PNG signature", path)
		}
	}

	if len(data) < 8+8+13 {
		return fail("asset %q is too short to contain an IHDR chunk", path)
	}

	chunkLen := binary.BigEndian.Uint32(data[8:12])
	chunkType := string(data[12:16])
	if chunkLen != 13 {
		return fail("asset %q IHDR chunk length %d, expected 13", path, chunkLen)
	}
	if chunkType != "IHDR" {
		return fail("asset %q first chunk is %q, expected IHDR", path, chunkType)
	}

	width := int(binary.BigEndian.Uint32(data[16:20]))
	height := int(binary.BigEndian.Uint32(data[20:24]))

	ok := true
	if width < 8 || width > 1024 || width%8 != 0 {
		fail("asset %q width %d must be in 8..=1024 and divisible by 8", path, width)
		ok = false
	}
	if height < 8 || height > 1024 || height%8 != 0 {
		fail("asset %q height %d must be in 8..=1024 and divisible by 8", path, height)
		ok = false
	}

	h.Width = width
	h.Height = height
	h.Valid = ok
	return h
}

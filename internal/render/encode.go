package render

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"
)

// DataURIPrefix starts every PNG data URI produced by DataURI
const DataURIPrefix = "data:image/png;base64,"

// ErrNotDataURI is returned when decoding something that is not a base64 data URI
var ErrNotDataURI = errors.New("not a base64 data URI")

// EncodePNG encodes img losslessly with the best compression
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	enc := &png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// DataURI wraps encoded PNG bytes in a data URI
func DataURI(pngData []byte) string {
	return DataURIPrefix + base64.StdEncoding.EncodeToString(pngData)
}

// DecodeDataURI returns the payload of a base64 data URI of any media type
func DecodeDataURI(uri string) ([]byte, error) {
	if !strings.HasPrefix(uri, "data:") {
		return nil, ErrNotDataURI
	}
	comma := strings.IndexByte(uri, ',')
	if comma < 0 || !strings.HasSuffix(uri[:comma], ";base64") {
		return nil, ErrNotDataURI
	}

	data, err := base64.StdEncoding.DecodeString(uri[comma+1:])
	if err != nil {
		return nil, fmt.Errorf("failed to decode data URI: %w", err)
	}
	return data, nil
}

package yahoo

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/go-resty/resty/v2"
)

// decompress inflates brotli or gzip bodies in place.
//
// resty already inflates gzip itself, but leaves the Content-Encoding header
// untouched, so gzip bodies are only decoded when they still carry the magic bytes.
func decompress(_ *resty.Client, resp *resty.Response) error {
	body := resp.Body()
	if len(body) == 0 {
		return nil
	}

	var reader io.Reader
	switch strings.ToLower(strings.TrimSpace(resp.Header().Get("Content-Encoding"))) {
	case "br":
		reader = brotli.NewReader(bytes.NewReader(body))
	case "gzip":
		if !isGzip(body) {
			return nil
		}
		zr, err := gzip.NewReader(bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("yahoo: gzip reader: %w", err)
		}
		defer zr.Close()
		reader = zr
	default:
		return nil
	}

	out, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("yahoo: decompress body: %w", err)
	}
	resp.SetBody(out)
	resp.Header().Del("Content-Encoding")
	return nil
}

func isGzip(b []byte) bool {
	return len(b) >= 2 && b[0] == 0x1f && b[1] == 0x8b
}

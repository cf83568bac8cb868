package render

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

// Signature images arrive as whatever the capture widget produced (PNG,
// JPEG, GIF). The PDF embeds PNG only, so everything is decoded, bounded to
// the signature box, and re-encoded. Re-encoding also makes the embedded
// bytes a pure function of the input image, keeping output deterministic
// across capture sources.
const (
	signatureMaxWidthPx  = 600
	signatureMaxHeightPx = 240
)

// normalizeSignature converts an opaque signature blob into PNG bytes fitted
// to the signature box. An error means the caller should fall back to the
// textual rendering.
func normalizeSignature(raw []byte) ([]byte, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty signature image")
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode signature image: %w", err)
	}

	fitted := imaging.Fit(img, signatureMaxWidthPx, signatureMaxHeightPx, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, fitted, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode signature image: %w", err)
	}
	return buf.Bytes(), nil
}

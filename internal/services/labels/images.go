package labels

import (
	"bytes"
	"encoding/base64"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/qr"
	"github.com/pkg/errors"
)

const pngDataURIPrefix = "data:image/png;base64,"

// Both images encode exactly the tracking number, nothing else.

func qrPNGDataURI(content string) (string, error) {
	code, err := qr.Encode(content, qr.M, qr.Auto)
	if err != nil {
		return "", errors.Wrap(err, "qr encode")
	}
	scaled, err := barcode.Scale(code, 240, 240)
	if err != nil {
		return "", errors.Wrap(err, "qr scale")
	}
	return pngDataURI(scaled)
}

func code128PNGDataURI(content string) (string, error) {
	code, err := code128.Encode(content)
	if err != nil {
		return "", errors.Wrap(err, "code128 encode")
	}
	scaled, err := barcode.Scale(code, 400, 80)
	if err != nil {
		return "", errors.Wrap(err, "code128 scale")
	}
	return pngDataURI(scaled)
}

func pngDataURI(img barcode.Barcode) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", errors.Wrap(err, "png encode")
	}
	return pngDataURIPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

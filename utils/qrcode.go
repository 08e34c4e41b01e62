package utils

import (
	"encoding/base64"

	qrcode "github.com/skip2/go-qrcode"
)

// GenerateQRDataURL encodes url as a PNG QR code and returns it as a data
// URL suitable for an <img> src. The payload is stored inline on the table
// record, so keep the size modest.
func GenerateQRDataURL(url string) (string, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

package services

import (
	"encoding/base64"

	qrcode "github.com/skip2/go-qrcode"
)

const pngDataURIPrefix = "data:image/png;base64,"

type QREncoder interface {
	EncodePNG(content string) ([]byte, error)
}

// GoQRCode renders with a four module quiet zone.
type GoQRCode struct {
	Level        qrcode.RecoveryLevel
	ModulePixels int
}

func NewGoQRCode() *GoQRCode {
	return &GoQRCode{Level: qrcode.Low, ModulePixels: 10}
}

func (g *GoQRCode) EncodePNG(content string) ([]byte, error) {
	q, err := qrcode.New(content, g.Level)
	if err != nil {
		return nil, err
	}
	// a negative size means pixels per module
	return q.PNG(-g.ModulePixels)
}

func PNGDataURI(png []byte) string {
	return pngDataURIPrefix + base64.StdEncoding.EncodeToString(png)
}

package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate() ([]byte, error)
}

// DefaultQRGenerator encodes the dish-of-the-day page link as a PNG.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate() ([]byte, error) {
	return qrcode.Encode(fmt.Sprintf("%s/today.html", g.BaseURL), qrcode.Medium, 256)
}

package utils

import (
	"encoding/base64"
	"fmt"

	"github.com/skip2/go-qrcode"
)

// GeneratePickupQR génère le QR de retrait en base64 prêt à mettre dans <img src="...">.
// Le comptoir scanne ce code pour retrouver la commande.
func GeneratePickupQR(orderID string) (string, error) {
	payload := fmt.Sprintf("arabica:order:%s", orderID)

	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

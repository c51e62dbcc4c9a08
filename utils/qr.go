package utils

import (
	"fmt"
	"time"

	"github.com/skip2/go-qrcode"
)

const stayPassSize = 256

// StayPass es lo que lleva el QR de una estancia en curso
type StayPass struct {
	GuestID   uint
	Document  string
	Hotel     string
	Room      string
	CheckinAt time.Time
}

func (p StayPass) Content() string {
	return fmt.Sprintf("huesped:%d|documento:%s|hotel:%s|habitacion:%s|checkin:%s",
		p.GuestID, p.Document, p.Hotel, p.Room, p.CheckinAt.Format(time.RFC3339))
}

// StayPassPNG codifica el pase como PNG con corrección de errores media
func StayPassPNG(pass StayPass) ([]byte, error) {
	return qrcode.Encode(pass.Content(), qrcode.Medium, stayPassSize)
}

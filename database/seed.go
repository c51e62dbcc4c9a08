package database

import (
	"fmt"
	"hotel_manager/config"
	"hotel_manager/constants"
	"hotel_manager/model"
	"log"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	username := config.ConfigOr("ADMIN_USERNAME", "admin")
	password := config.ConfigOr("ADMIN_PASSWORD", "admin1234")
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Println("failed to hash admin password:", err)
		return
	}
	account := model.Account{Username: username, Password: string(bytes), Active: true, Role: constants.ROLE_ADMIN}
	if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
		log.Println("failed to seed data for account:", account.Username, "error:", err)
	}

	var hotelCount int64
	db.Model(&model.Hotel{}).Count(&hotelCount)
	if hotelCount > 0 {
		return
	}

	services := []model.Service{
		{Name: "Wifi", Description: ptr("Conexión inalámbrica en todo el hotel")},
		{Name: "Piscina", Description: ptr("Piscina exterior de temporada")},
		{Name: "Desayuno", Description: ptr("Desayuno buffet de 7:00 a 10:30")},
		{Name: "Parking"},
	}
	if err := db.Create(&services).Error; err != nil {
		log.Println("failed to seed services:", err)
		return
	}

	hotels := []model.Hotel{
		{Name: "Hotel Miramar", Address: "Paseo Marítimo 12, Málaga", Phone: "+34 952 000 001", Email: "reservas@miramar.example", Website: "https://miramar.example"},
		{Name: "Hotel Alameda", Address: "Calle Alameda 45, Sevilla", Phone: "+34 954 000 002", Email: "info@alameda.example", Website: "https://alameda.example"},
	}
	for i := range hotels {
		hotels[i].Slug = slug.Make(hotels[i].Name)
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&hotels[i]).Error; err != nil {
				return err
			}
			// 20 simples y 20 dobles por hotel
			rooms := make([]model.Room, 0, 40)
			for n := 0; n < 40; n++ {
				room := model.Room{Number: fmt.Sprintf("%d", n), Type: model.Simple, PricePerNight: 34.99, HotelID: hotels[i].ID}
				if n >= 20 {
					room.Type = model.Doble
					room.PricePerNight = 45.99
				}
				rooms = append(rooms, room)
			}
			if err := tx.Create(&rooms).Error; err != nil {
				return err
			}
			for _, s := range services {
				if err := tx.Create(&model.HotelService{HotelID: hotels[i].ID, ServiceID: s.ID}).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			log.Println("failed to seed hotel:", hotels[i].Name, "error:", err)
		}
	}

	guests := []model.Guest{
		{FirstName: "Juan", LastName: "Pérez", Document: "12345678X"},
		{FirstName: "Lucía", LastName: "García", Document: "87654321Z"},
	}
	if err := db.Create(&guests).Error; err != nil {
		log.Println("failed to seed guests:", err)
	}
}

func ptr(s string) *string {
	return &s
}

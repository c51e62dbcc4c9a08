package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// Config devuelve el valor de una variable de entorno, cargando .env la primera vez
func Config(key string) string {
	loadOnce.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("No se encontró .env, usando variables de entorno del sistema")
		}
	})
	return os.Getenv(key)
}

// ConfigOr devuelve fallback cuando la variable no está definida
func ConfigOr(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}

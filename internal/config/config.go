package config

import "os"

type Config struct {
	Addr        string
	DatabaseURL string
	JWTSecret   string

	PaymentAPIURL    string
	PaymentSecretKey string
	PaymentTestMode  bool
}

func Load() Config {
	addr := os.Getenv("BOUTIQA_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	return Config{
		Addr:             addr,
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		PaymentAPIURL:    os.Getenv("PAYMENT_API_URL"),
		PaymentSecretKey: os.Getenv("PAYMENT_SECRET_KEY"),
		PaymentTestMode:  os.Getenv("PAYMENT_MODE") != "live",
	}
}

package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port          string
	DatabaseURL   string
	JwtSecret     string
	JwtExpiresMin int
}

func Load() *Config {
	cfg := &Config{
		Port:          GetEnv("PORT", "5000"),
		DatabaseURL:   MustEnvStr("DATABASE_URL"),
		JwtSecret:     MustEnvStr("JWT_SECRET"),
		JwtExpiresMin: MustEnvInt("JWT_EXPIRES_MIN"),
	}
	return cfg
}

func MustEnvStr(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("environment variable %s must be set", key))
	}
	return val
}

func MustEnvInt(key string) int {
	val := MustEnvStr(key)
	i, err := strconv.Atoi(val)
	if err != nil {
		panic(fmt.Sprintf("environment variable %s must be an integer", key))
	}
	return i
}

func GetEnv(key string, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}

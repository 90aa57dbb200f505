package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

const (
	redisURLEnv = "ID3_REDIS_URL"
	mongoURLEnv = "ID3_MONGO_URL"
)

var defaultEnvFiles = []string{".env", ".env.development"}

func fileExists(filepath string) bool {
	info, err := os.Stat(filepath)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// loadEnv reads the variables defined in the default env files that
// exist, with the later files taking precedence.
func loadEnv() (map[string]string, error) {
	found := lo.Filter(defaultEnvFiles, func(filepath string, _ int) bool {
		return fileExists(filepath)
	})
	if len(found) == 0 {
		return map[string]string{}, nil
	}
	return godotenv.Read(found...)
}

// Getenv returns the value of the given variable in the process
// environment, or else in the env files.
func (rcc *rootCmdConfig) Getenv(key string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return rcc.env[key]
}

package config

import "github.com/spf13/viper"

// Config carries the runtime settings. Everything has a default; environment
// variables override.
type Config struct {
	DBPath    string
	ImagesDir string
	JWTSecret string
}

// Load reads configuration from the environment with sensible defaults.
func Load() *Config {
	viper.SetDefault("KASIR_DB_PATH", "kasir.db")
	viper.SetDefault("KASIR_IMAGES_DIR", "images")
	viper.SetDefault("KASIR_JWT_SECRET", "kasir-dev-secret")
	viper.AutomaticEnv()

	return &Config{
		DBPath:    viper.GetString("KASIR_DB_PATH"),
		ImagesDir: viper.GetString("KASIR_IMAGES_DIR"),
		JWTSecret: viper.GetString("KASIR_JWT_SECRET"),
	}
}

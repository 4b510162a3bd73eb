package config

import "os"

type Config struct {
	DiscordBotToken string
	DatabasePath    string
	Port            string
}

func Load() *Config {
	return &Config{
		DiscordBotToken: getEnv("DISCORD_BOT_TOKEN", ""),
		DatabasePath:    getEnv("DATABASE_PATH", "./bot.db"),
		Port:            getEnv("PORT", "3000"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

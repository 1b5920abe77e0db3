package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type Server struct {
	SqliteFile string `toml:"sqlite_file"`
	Debug      bool   `toml:"debug_mode"`
}

type Config struct {
	Server Server
}

func New() (Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional, variables may come from the environment.
	}

	var serverCfg Server
	_, err := toml.DecodeFile("configs/server.toml", &serverCfg)
	if err != nil {
		return Config{}, err
	}
	file := os.Getenv("EVENTFEST_SQLITE_FILE")
	if file != "" {
		serverCfg.SqliteFile = file
	}
	if serverCfg.SqliteFile == "" {
		serverCfg.SqliteFile = "eventfest.sqlite"
	}

	return Config{
		Server: serverCfg,
	}, nil
}

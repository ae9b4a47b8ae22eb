package store

import (
	"log"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the durable agenda database.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the database path from a .profeia config file or
// the PROFEIA_PATH environment variable, defaulting to ~/.profeia.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.profeia.db")
	viper.SetConfigName(".profeia") // .yaml is implicit
	viper.SetEnvPrefix("PROFEIA")
	viper.AutomaticEnv()

	viper.AddConfigPath("$HOME")
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}
	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

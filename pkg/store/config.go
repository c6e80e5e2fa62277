package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config exposes where the activity database lives.
type Config interface {
	BasePath() string
}

// LoadConfig reads the .farmcal config file (or FARMCAL_* environment
// overrides) and falls back to ~/.farmcal.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.farmcal.db")
	viper.SetConfigName(".farmcal") // .yaml is implicit
	viper.SetEnvPrefix("FARMCAL")
	viper.AutomaticEnv()

	if override := os.Getenv("FARMCAL_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("error reading config file: %v", err)
			return nil, err
		}
	}

	path := viper.GetString("path")
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}
	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

// Package profile holds the teacher's identity used to parameterize
// AI prompts: name, subject, educational level, and grade.
package profile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"profeia.dev/profeia/pkg/store"
)

const profileKey = "profile"

// Level is an Argentine educational level.
type Level string

const (
	LevelInicial       Level = "Nivel Inicial"
	LevelPrimario      Level = "Nivel Primario"
	LevelSecundario    Level = "Nivel Secundario"
	LevelTerciario     Level = "Nivel Terciario"
	LevelUniversitario Level = "Nivel Universitario"
)

// Levels lists the known levels in presentation order.
func Levels() []Level {
	return []Level{LevelInicial, LevelPrimario, LevelSecundario, LevelTerciario, LevelUniversitario}
}

// GradesByLevel maps each level to its selectable grades.
var GradesByLevel = map[Level][]string{
	LevelInicial:       {"Sala de 3 años", "Sala de 4 años", "Sala de 5 años"},
	LevelPrimario:      {"Primer Grado", "Segundo Grado", "Tercer Grado", "Cuarto Grado", "Quinto Grado", "Sexto Grado"},
	LevelSecundario:    {"Primer Año", "Segundo Año", "Tercer Año", "Cuarto Año", "Quinto Año", "Sexto Año"},
	LevelTerciario:     {"Primer Año", "Segundo Año", "Tercer Año"},
	LevelUniversitario: {"No aplica"},
}

// Config describes the teacher the assistant works for.
type Config struct {
	Name    string `json:"name" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Level   Level  `json:"level" validate:"required,level"`
	Grade   string `json:"grade" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("level", func(fl validator.FieldLevel) bool {
		candidate := Level(fl.Field().String())
		for _, l := range Levels() {
			if l == candidate {
				return true
			}
		}
		return false
	})
	return v
}

// Validate checks the profile is complete and the level is known.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("profile: %w", err)
	}
	if grades, ok := GradesByLevel[c.Level]; ok {
		for _, g := range grades {
			if g == c.Grade {
				return nil
			}
		}
		return fmt.Errorf("profile: grade %q not offered at %s", c.Grade, c.Level)
	}
	return nil
}

// Load reads the saved profile. A missing profile returns (nil, nil);
// a corrupt record is cleared and treated as missing, matching how
// the store recovers the agenda.
func Load(kv store.KV) (*Config, error) {
	val, ok := kv.Get(profileKey)
	if !ok {
		return nil, nil
	}
	var cfg Config
	if err := json.Unmarshal(val, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "profile: resetting corrupt profile: %s\n", err)
		if werr := kv.Set(profileKey, []byte("{}")); werr != nil {
			return nil, werr
		}
		return nil, nil
	}
	if cfg.Name == "" {
		return nil, nil
	}
	return &cfg, nil
}

// Save validates and persists the profile.
func Save(kv store.KV, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return kv.Set(profileKey, data)
}

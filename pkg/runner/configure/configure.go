package configure

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"profeia.dev/profeia/pkg/profile"
	"profeia.dev/profeia/pkg/store"
)

// Configure saves or shows the teacher profile.
type Configure struct {
	Persistence store.Persistence

	Name    string
	Subject string
	Level   string
	Grade   string

	// Show prints the stored profile instead of writing one.
	Show bool
}

func (c *Configure) Do(ctx context.Context) error {
	if c.Persistence == nil {
		return errors.New("configure: persistence required")
	}
	kv := c.Persistence.Raw()

	if c.Show {
		cfg, err := profile.Load(kv)
		if err != nil {
			return err
		}
		if cfg == nil {
			fmt.Println("No hay perfil configurado. Usa: profeia config --name ... --subject ... --level ... --grade ...")
			return nil
		}
		printProfile(cfg)
		return nil
	}

	cfg := &profile.Config{
		Name:    strings.TrimSpace(c.Name),
		Subject: strings.TrimSpace(c.Subject),
		Level:   profile.Level(strings.TrimSpace(c.Level)),
		Grade:   strings.TrimSpace(c.Grade),
	}
	if err := profile.Save(kv, cfg); err != nil {
		return err
	}
	printProfile(cfg)
	return nil
}

func printProfile(cfg *profile.Config) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println("Perfil docente")

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("Nombre:", cfg.Name)
	tbl.AddRow("Materia:", cfg.Subject)
	tbl.AddRow("Nivel:", string(cfg.Level))
	tbl.AddRow("Curso:", cfg.Grade)
	_, _ = fmt.Fprintln(color.Output, tbl)
}

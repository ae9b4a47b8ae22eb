package profile

import (
	"testing"

	"profeia.dev/profeia/pkg/store"
)

func valid() *Config {
	return &Config{
		Name:    "Laura",
		Subject: "Matemática",
		Level:   LevelSecundario,
		Grade:   "Tercer Año",
	}
}

func TestValidate(t *testing.T) {
	if err := valid().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := valid()
	c.Name = ""
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for missing name")
	}

	c = valid()
	c.Level = "Nivel Galáctico"
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for unknown level")
	}

	c = valid()
	c.Grade = "Sala de 3 años"
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for grade outside the level")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	kv := store.NewMemKV()
	if err := Save(kv, valid()); err != nil {
		t.Fatal(err)
	}
	got, err := Load(kv)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.Name != "Laura" || got.Level != LevelSecundario {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestLoadMissing(t *testing.T) {
	got, err := Load(store.NewMemKV())
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("expected nil profile, got %+v", got)
	}
}

func TestLoadCorruptClears(t *testing.T) {
	kv := store.NewMemKV()
	if err := kv.Set("profile", []byte("{broken")); err != nil {
		t.Fatal(err)
	}
	got, err := Load(kv)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("corrupt profile must read as missing")
	}
	if val, ok := kv.Get("profile"); !ok || string(val) != "{}" {
		t.Fatalf("corrupt record must be cleared, got %q", val)
	}
}

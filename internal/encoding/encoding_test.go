package encoding

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/arcade-pathfinder/internal/geom"
	"github.com/vovakirdan/arcade-pathfinder/internal/physics"
	"github.com/vovakirdan/arcade-pathfinder/internal/world"
)

func sampleBundle() Bundle {
	settings := physics.DefaultSearchSettings()
	settings.AllowedMoves = []physics.Move{physics.MoveNone, physics.MoveD, physics.MoveW}
	settings.AllowDamage = true

	static := world.NewStatic([]world.Object{
		world.NewObject(geom.NewRect(-500, 500, -100, 0), world.Wall()),
		world.NewObject(geom.NewRect(100, 120, 0, 20), world.SpikeOuch()),
		world.NewObject(geom.NewRect(200, 260, 0, 10), world.ConstantDamage(7.5)),
		world.NewObject(geom.NewRect(300, 310, 30, 40), world.Projectile(geom.Pt(-3.5, 0.25))),
		world.NewObject(geom.NewRect(400, 420, 0, 100), world.Portal()),
	}, []world.EnvModifier{
		world.DefaultEnv(),
		{
			Hitbox:    geom.NewHitbox(geom.NewRect(-50, 50, 0, 300)),
			Name:      "water",
			JumpSpeed: 0.5,
			WalkSpeed: 0.8,
			Gravity:   0.3,
		},
	})

	initial := physics.NewState(physics.NewPlayer(0, 26), settings.Physics(), static)
	initial.Player.Stamina = 42.5
	target := physics.NewState(physics.NewPlayer(350, 126), settings.Physics(), static)

	return Bundle{Settings: settings, Initial: initial, Target: target, Static: static}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := sampleBundle()

	if err := SaveDir(dir, want); err != nil {
		t.Fatalf("SaveDir() error = %v", err)
	}
	got, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}

	if !reflect.DeepEqual(got.Settings, want.Settings) {
		t.Errorf("Settings = %+v, expected %+v", got.Settings, want.Settings)
	}
	if got.Initial != want.Initial {
		t.Errorf("Initial = %+v, expected %+v", got.Initial, want.Initial)
	}
	if got.Target != want.Target {
		t.Errorf("Target = %+v, expected %+v", got.Target, want.Target)
	}
	if !reflect.DeepEqual(got.Static, want.Static) {
		t.Errorf("Static = %+v, expected %+v", got.Static, want.Static)
	}
}

func TestLoadDirMissingFile(t *testing.T) {
	dir := t.TempDir()
	if err := SaveDir(dir, sampleBundle()); err != nil {
		t.Fatalf("SaveDir() error = %v", err)
	}
	if err := os.Remove(filepath.Join(dir, TargetFile)); err != nil {
		t.Fatal(err)
	}

	_, err := LoadDir(dir)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadDir() error = %v, expected fs.ErrNotExist", err)
	}
}

func TestLoadDirRejectsBadDocuments(t *testing.T) {
	for _, tc := range []struct {
		name   string
		static string
	}{
		{"unknown kind", `{"objects":[{"kind":"lava","hitbox":{"x1":0,"x2":1,"y1":0,"y2":1}}]}`},
		{"projectile without velocity", `{"objects":[{"kind":"projectile","hitbox":{"x1":0,"x2":1,"y1":0,"y2":1}}]}`},
		{"damage without amount", `{"objects":[{"kind":"constant_damage","hitbox":{"x1":0,"x2":1,"y1":0,"y2":1}}]}`},
		{"not json", `{"objects":`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := SaveDir(dir, sampleBundle()); err != nil {
				t.Fatalf("SaveDir() error = %v", err)
			}
			if err := os.WriteFile(filepath.Join(dir, StaticFile), []byte(tc.static), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadDir(dir); err == nil {
				t.Error("LoadDir() error = nil, expected an error")
			}
		})
	}
}

func writeInitial(t *testing.T, state string) string {
	t.Helper()
	dir := t.TempDir()
	if err := SaveDir(dir, sampleBundle()); err != nil {
		t.Fatalf("SaveDir() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, InitialFile), []byte(state), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadDirFillsPartialState(t *testing.T) {
	for _, tc := range []struct {
		name  string
		state string
	}{
		{"no hitbox or speeds", `{"player":{"x":10,"y":50,"health":100,"can_jump":true,"speed_multiplier":1,"jump_multiplier":1},"gravity":0.1,"settings":{"mode":"platformer"}}`},
		{"position only", `{"player":{"x":10,"y":50}}`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := LoadDir(writeInitial(t, tc.state))
			if err != nil {
				t.Fatalf("LoadDir() error = %v", err)
			}

			s := got.Initial
			if expected := physics.PlayerRect(10, 50); s.Player.Rect != expected {
				t.Errorf("Rect = %+v, expected %+v", s.Player.Rect, expected)
			}
			if s.Settings.Mode != physics.Platformer {
				t.Errorf("Settings.Mode = %q, expected %q", s.Settings.Mode, physics.Platformer)
			}
			if s.Player.Health != 100 {
				t.Errorf("Health = %v, expected 100", s.Player.Health)
			}

			// (10, 50) lies inside the water modifier of the sample world.
			water := got.Static.Environments[1]
			if s.ActiveModifier != 1 {
				t.Errorf("ActiveModifier = %d, expected 1", s.ActiveModifier)
			}
			if expected := physics.GravityConstant * water.Gravity; s.Gravity != expected {
				t.Errorf("Gravity = %v, expected %v", s.Gravity, expected)
			}
			if expected := physics.WalkSpeed * water.WalkSpeed; s.Player.BaseVX != expected {
				t.Errorf("BaseVX = %v, expected %v", s.Player.BaseVX, expected)
			}

			next := physics.Advance(got.Settings, got.Static, s, physics.MoveD, false)
			if next.X <= s.Player.X {
				t.Errorf("Advance(D) x = %v, expected more than %v", next.X, s.Player.X)
			}
		})
	}
}

func TestLoadDirRejectsBadStates(t *testing.T) {
	for _, tc := range []struct {
		name  string
		state string
	}{
		{"no player", `{"gravity":0.1}`},
		{"no position", `{"player":{"health":100}}`},
		{"unknown mode", `{"player":{"x":10,"y":50},"settings":{"mode":""}}`},
		{"not json", `{"player":`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadDir(writeInitial(t, tc.state)); err == nil {
				t.Error("LoadDir() error = nil, expected an error")
			}
		})
	}
}

func TestLoadDirRejectsUnknownMode(t *testing.T) {
	dir := t.TempDir()
	b := sampleBundle()
	b.Settings.Mode = "sideways"
	if err := SaveDir(dir, b); err != nil {
		t.Fatalf("SaveDir() error = %v", err)
	}
	if _, err := LoadDir(dir); err == nil {
		t.Error("LoadDir() error = nil, expected an error")
	}
}

func TestSyncSettings(t *testing.T) {
	b := sampleBundle()
	b.Settings.SimpleGeometry = false
	b.Settings.AllowDamage = false
	b.SyncSettings()

	want := b.Settings.Physics()
	if b.Initial.Settings != want || b.Target.Settings != want {
		t.Errorf("state settings = %+v / %+v, expected %+v", b.Initial.Settings, b.Target.Settings, want)
	}
}

func TestDecodeStaticRounds(t *testing.T) {
	doc := StaticDocument{Objects: []ObjectDocument{
		{Kind: world.KindWall, Hitbox: geom.Rect{X1: 0.123, X2: 10.006, Y1: -1, Y2: 2}},
	}}
	s, err := DecodeStatic(doc)
	if err != nil {
		t.Fatalf("DecodeStatic() error = %v", err)
	}

	expected := geom.Rect{X1: 0.12, X2: 10.01, Y1: -1, Y2: 2}
	if got := s.Obstacles[0].Hitbox.Rect; got != expected {
		t.Errorf("hitbox = %+v, expected %+v", got, expected)
	}
	if len(s.Environments) != 1 || s.Environments[0].Name != world.DefaultEnvName {
		t.Errorf("Environments = %+v, expected the default modifier", s.Environments)
	}
}

func TestDump(t *testing.T) {
	root := t.TempDir()

	dir, err := Dump(root, sampleBundle())
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if filepath.Dir(dir) != root {
		t.Errorf("Dump() = %s, expected a directory under %s", dir, root)
	}
	for _, name := range []string{SettingsFile, InitialFile, TargetFile, StaticFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}

	other, err := Dump(root, sampleBundle())
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if other == dir {
		t.Error("Dump() reused a directory")
	}
}

func TestSchema(t *testing.T) {
	data, err := SchemaJSON()
	if err != nil {
		t.Fatalf("SchemaJSON() error = %v", err)
	}

	text := string(data)
	for _, want := range []string{"static_state", "initial_state", "state_batch_size", "constant_damage", "Pathfinder problem documents"} {
		if !strings.Contains(text, want) {
			t.Errorf("schema does not mention %q", want)
		}
	}
}

package version

import (
	"runtime"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()

	if info.Name != "API de Análisis de Vector Emocional" {
		t.Errorf("Name = %q", info.Name)
	}
	if info.Version != "1.0.0" {
		t.Errorf("Version = %q, want %q", info.Version, "1.0.0")
	}
	if info.Description == "" {
		t.Error("Description should not be empty")
	}
	if info.Commit == "" || info.BuildTime == "" {
		t.Error("Commit and BuildTime should not be empty")
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q, want %q", info.GoVersion, runtime.Version())
	}
}

// Package version holds build and service identity, settable at link time:
//
//	go build -ldflags "-X github.com/tsawler/emovec/internal/version.Commit=$(git rev-parse HEAD)"
package version

import "runtime"

const (
	// Name is the API's display name.
	Name = "API de Análisis de Vector Emocional"
	// Description is the API's one-line summary.
	Description = "API para analizar el contenido emocional de textos"
)

var (
	Version   = "1.0.0"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Info describes the running service.
type Info struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Commit      string `json:"commit"`
	BuildTime   string `json:"build_time"`
	GoVersion   string `json:"go_version"`
}

// Get returns the service's version information.
func Get() Info {
	return Info{
		Name:        Name,
		Version:     Version,
		Description: Description,
		Commit:      Commit,
		BuildTime:   BuildTime,
		GoVersion:   runtime.Version(),
	}
}

package inline

import (
	"encoding/json"
	"io"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/miru-cli/miru/api"
	"github.com/miru-cli/miru/prefs"
	"github.com/miru-cli/miru/watch"
)

// Output is what --json prints.
type Output struct {
	AnimeID     string               `json:"animeId"`
	Anime       *api.AnimeInfo       `json:"anime,omitempty"`
	Episode     *api.Episode         `json:"episode,omitempty"`
	Episodes    []api.Episode        `json:"episodes,omitempty"`
	Servers     []api.EmbeddedServer `json:"servers"`
	EmbeddedURL string               `json:"embeddedUrl"`
	SourceType  prefs.SourceType     `json:"sourceType"`
	Language    prefs.Language       `json:"language"`
	NoEpisodes  bool                 `json:"noEpisodes"`
}

func newOutput(state watch.State, includeEpisodes bool) *Output {
	out := &Output{
		AnimeID:     state.Route.AnimeID,
		Anime:       state.Info,
		Servers:     state.Servers,
		EmbeddedURL: state.EmbeddedURL,
		SourceType:  state.SourceType,
		Language:    state.Language,
		NoEpisodes:  state.NoEpisodes,
	}

	if out.Servers == nil {
		out.Servers = []api.EmbeddedServer{}
	}

	if state.CurrentIndex() >= 0 {
		current := state.Current
		out.Episode = &current
	}

	if includeEpisodes {
		out.Episodes = state.Episodes
	}

	return out
}

func writeJson(w io.Writer, out *Output) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// Schema describes Output.
func Schema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		name := t.Name()
		switch strings.ToLower(name) {
		case "episode", "title", "output":
			return filepath.Base(t.PkgPath()) + "." + name
		}

		return name
	}

	return reflector.Reflect(&Output{})
}

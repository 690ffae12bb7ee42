package rendering

import (
	"fmt"
	"log/slog"

	"github.com/fosdem/galaxykd/lib/config"
	"github.com/fosdem/galaxykd/lib/gpu"
	"github.com/fosdem/galaxykd/lib/rendering/shaders"
	"github.com/fosdem/galaxykd/lib/stats"
	"github.com/fosdem/galaxykd/lib/utils"
)

// Setup builds the geometry and both programs and uploads the
// initial vertex data. Compile and link failures are logged; with the
// fatal link policy a failed program aborts setup instead.
func Setup(dev gpu.Device, cfg *config.Config, st *stats.Stats) (*Renderer, error) {
	geom := cfg.Grid.Build()

	shaderer, err := shaders.NewShaderer()
	if err != nil {
		return nil, fmt.Errorf("could not get shaders: %w", err)
	}

	programs := make(map[string]shaders.Program, 2)
	for _, p := range []struct {
		name   string
		colour string
	}{
		{"grid", cfg.Colours.Grid},
		{"ship", cfg.Colours.Ship},
	} {
		program, err := shaders.Build(dev, shaderer, p.name, utils.ColourParse(p.colour))
		if err != nil {
			if cfg.Shaders.OnLinkFailure == config.LinkFailureFatal || program.ID == 0 {
				if program.ID != 0 {
					dev.DeleteProgram(program.ID)
				}
				for _, other := range programs {
					dev.DeleteProgram(other.ID)
				}
				return nil, fmt.Errorf("could not build %s program: %w", p.name, err)
			}
			slog.Warn(fmt.Sprintf("%s program is unusable, drawing with it anyway: %s", p.name, err), slog.String("module", "rendering"))
		}
		programs[p.name] = program
	}

	r := NewRenderer(dev, geom, programs["grid"], programs["ship"], utils.ColourParse(cfg.Colours.Background), st)
	r.ReuploadStatic = *cfg.Render.ReuploadStatic
	r.Start()
	return r, nil
}

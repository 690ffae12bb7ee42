package rendering

import (
	"errors"
	"testing"

	"github.com/fosdem/galaxykd/lib/config"
	"github.com/fosdem/galaxykd/lib/gpu/gputest"
	"github.com/fosdem/galaxykd/lib/rendering/shaders"
	"github.com/fosdem/galaxykd/lib/stats"
)

func TestSetupDefault(t *testing.T) {
	dev := gputest.NewRecorder()
	r, err := Setup(dev, config.Default(), stats.New())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !r.GridProgram.Linked || !r.ShipProgram.Linked {
		t.Errorf("both programs should be linked: %+v %+v", r.GridProgram, r.ShipProgram)
	}
	if !r.ReuploadStatic {
		t.Errorf("default should re-upload every frame")
	}
	if r.Vertical.Count != 12 || r.Horizontal.Count != 8 || r.Ship.Count != 3 {
		t.Errorf("unexpected initial uploads %d/%d/%d", r.Vertical.Count, r.Horizontal.Count, r.Ship.Count)
	}
	if dev.Count("ClearColor(0, 0, 0, 1)") != 1 {
		t.Errorf("background should default to opaque black: %v", dev.Calls)
	}
}

func TestSetupNoReupload(t *testing.T) {
	cfg := config.Default()
	*cfg.Render.ReuploadStatic = false
	r, err := Setup(gputest.NewRecorder(), cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if r.ReuploadStatic {
		t.Errorf("reupload_static=false not applied")
	}
}

func TestSetupLinkFailureLogged(t *testing.T) {
	dev := gputest.NewRecorder()
	dev.FailLinks = true

	r, err := Setup(dev, config.Default(), nil)
	if err != nil {
		t.Fatalf("log policy should carry on, got %s", err)
	}
	if r.GridProgram.ID == 0 || r.GridProgram.Linked {
		t.Errorf("expected an unusable grid program, got %+v", r.GridProgram)
	}
}

func TestSetupLinkFailureFatal(t *testing.T) {
	dev := gputest.NewRecorder()
	dev.FailLinks = true
	cfg := config.Default()
	cfg.Shaders.OnLinkFailure = config.LinkFailureFatal

	r, err := Setup(dev, cfg, nil)
	if r != nil {
		t.Errorf("expected no renderer")
	}
	var linkErr *shaders.LinkError
	if !errors.As(err, &linkErr) {
		t.Fatalf("expected *LinkError, got %v", err)
	}
	for id, p := range dev.Programs {
		if !p.Deleted {
			t.Errorf("program %d leaked", id)
		}
	}
}

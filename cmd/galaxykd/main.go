package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/fosdem/galaxykd/lib/config"
	"github.com/fosdem/galaxykd/lib/harness"
	galaxylog "github.com/fosdem/galaxykd/lib/log"
)

func init() {
	// The OpenGL stuff must be in one thread
	runtime.LockOSThread()
}

//	@title			GalaxyKD API
//	@version		1.0
//	@description	Read-only render statistics and configuration of a running GalaxyKD window
//	@BasePath		/
func main() {
	cfg := config.Default()
	if len(os.Args) > 1 {
		var err error
		cfg, err = config.Parse(os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
	}

	level, err := galaxylog.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Fatal(err)
	}
	galaxylog.Setup(level)

	if err := harness.MakeWindowAndRender(cfg); err != nil {
		log.Fatal(err)
	}

	fmt.Println("Good Bye, Cruel World!")
}

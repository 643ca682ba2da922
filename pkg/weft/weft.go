// Package weft wires the pieces of the framework together: event
// delegation on the document, the frame scheduler, and the optional
// project configuration.
//
// Typical startup:
//
//	loop := sched.NewLoop()
//	doc := dom.NewDocument(loop)
//	component.Register(doc, "user-card", newUserCard)
//	scheduler := weft.Boot(doc)
package weft

import (
	"github.com/go-weft/weft/pkg/config"
	"github.com/go-weft/weft/pkg/dom"
	"github.com/go-weft/weft/pkg/router"
	"github.com/go-weft/weft/pkg/sched"
)

// Boot installs the process-wide event delegation on doc and returns a
// scheduler bound to the document's loop. Boot is idempotent with respect
// to delegation: only the first call registers listeners.
func Boot(doc *dom.Document) *sched.Scheduler {
	router.Setup(doc)
	return sched.NewScheduler(doc.Loop())
}

// LoadConfig reads weft.yaml from dir, if present, and applies it as the
// process-wide configuration. Call before Boot so extra delegated event
// types take effect.
func LoadConfig(dir string) error {
	cfg, err := config.LoadOptional(dir)
	if err != nil {
		return err
	}
	config.Apply(cfg)
	return nil
}

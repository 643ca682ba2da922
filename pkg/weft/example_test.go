package weft_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-weft/weft/pkg/component"
	"github.com/go-weft/weft/pkg/config"
	"github.com/go-weft/weft/pkg/dom"
	"github.com/go-weft/weft/pkg/sched"
	"github.com/go-weft/weft/pkg/weft"
)

type userCard struct {
	*component.Base
}

func Example() {
	loop := sched.NewLoop()
	doc := dom.NewDocument(loop)
	component.Register(doc, "user-card", func() component.Component {
		return &userCard{Base: component.NewBase()}
	})
	scheduler := weft.Boot(doc)

	els, err := doc.ParseFragment(`<user-card><span ref="name">Ada</span></user-card>`)
	if err != nil {
		panic(err)
	}
	doc.Body().AppendChild(els[0])
	loop.PumpFrame()

	card := els[0].Controller().(*userCard)
	fmt.Println(card.Refs().Names())

	scheduler.Schedule(sched.NewTask(func() { fmt.Println("rendered") }))
	loop.PumpFrame()
	// Output:
	// [name]
	// rendered
}

func TestBootReturnsBoundScheduler(t *testing.T) {
	loop := sched.NewLoop()
	doc := dom.NewDocument(loop)

	scheduler := weft.Boot(doc)
	if scheduler == nil {
		t.Fatal("Boot should return a scheduler")
	}

	ran := false
	scheduler.Schedule(sched.NewTask(func() { ran = true }))
	loop.PumpFrame()
	if !ran {
		t.Fatal("scheduled task should run on the document's loop")
	}
}

func TestLoadConfigApplies(t *testing.T) {
	t.Cleanup(func() { config.Apply(nil) })

	dir := t.TempDir()
	data := []byte("components:\n  user-card:\n    required_refs: [name]\n")
	if err := os.WriteFile(filepath.Join(dir, "weft.yaml"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := weft.LoadConfig(dir); err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got := config.RequiredRefs("user-card"); len(got) != 1 || got[0] != "name" {
		t.Fatalf("RequiredRefs = %v, want the loaded config applied", got)
	}
}

func TestLoadConfigMissingFileIsFine(t *testing.T) {
	t.Cleanup(func() { config.Apply(nil) })
	if err := weft.LoadConfig(t.TempDir()); err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
}

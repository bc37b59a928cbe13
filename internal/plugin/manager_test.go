package plugin

import (
	"errors"
	"reflect"
	"testing"
)

type fakePlugin struct {
	name    string
	initErr error
	log     *[]string
}

func (p *fakePlugin) Name() string { return p.name }

func (p *fakePlugin) Initialize(EditorAPI) error {
	*p.log = append(*p.log, "init "+p.name)
	return p.initErr
}

func (p *fakePlugin) Shutdown() error {
	*p.log = append(*p.log, "shutdown "+p.name)
	return nil
}

func TestManagerLifecycleOrder(t *testing.T) {
	var log []string
	m := NewManager()
	for _, name := range []string{"b", "a"} {
		if err := m.Register(&fakePlugin{name: name, log: &log}); err != nil {
			t.Fatalf("Register(%s): %v", name, err)
		}
	}
	if err := m.InitializePlugins(nil); err != nil {
		t.Fatalf("InitializePlugins: %v", err)
	}
	m.ShutdownPlugins()

	want := []string{"init b", "init a", "shutdown a", "shutdown b"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("lifecycle = %v, want %v", log, want)
	}
	if got := m.Names(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Names() = %v", got)
	}
}

func TestManagerRegisterErrors(t *testing.T) {
	var log []string
	m := NewManager()
	if err := m.Register(&fakePlugin{name: "", log: &log}); err == nil {
		t.Error("empty name accepted")
	}
	_ = m.Register(&fakePlugin{name: "x", log: &log})
	if err := m.Register(&fakePlugin{name: "x", log: &log}); err == nil {
		t.Error("duplicate name accepted")
	}
	if _, ok := m.GetPlugin("x"); !ok {
		t.Error("GetPlugin(x) not found")
	}
}

func TestManagerInitFailureContinues(t *testing.T) {
	var log []string
	m := NewManager()
	_ = m.Register(&fakePlugin{name: "bad", initErr: errors.New("boom"), log: &log})
	_ = m.Register(&fakePlugin{name: "good", log: &log})
	if err := m.InitializePlugins(nil); err == nil {
		t.Error("expected error from failing plugin")
	}
	if len(log) != 2 || log[1] != "init good" {
		t.Errorf("later plugin not initialized: %v", log)
	}
}

package driver

import (
	"errors"
	"strings"
	"testing"
)

type thing struct {
	name string
}

func TestRegistry(t *testing.T) {
	r := NewRegistry[*thing]("test", "Secret")

	r.Register("b", func() *thing { return &thing{name: "b"} })
	r.Register("A", func() *thing { return &thing{name: "a"} })
	r.Register("secret", func() *thing { return &thing{name: "secret"} })

	names := r.Names()
	if strings.Join(names, ",") != "a,b" {
		t.Fatalf("unexpected names %v", names)
	}

	for _, name := range []string{"a", "A", "b", "secret", "SECRET"} {
		x, err := r.New(name)
		if err != nil {
			t.Fatalf("failed to create %s: %s", name, err)
		}
		if x.name != strings.ToLower(name) {
			t.Fatalf("wrong driver %s for %s", x.name, name)
		}
	}

	// Each call is a new instance
	x, _ := r.New("a")
	y, _ := r.New("a")
	if x == y {
		t.Fatalf("instances are shared")
	}

	_, err := r.New("missing")
	if !errors.Is(err, ErrUnknown) {
		t.Fatalf("expected ErrUnknown, got %v", err)
	}
	if !strings.Contains(err.Error(), "test driver") {
		t.Fatalf("error doesn't describe the driver kind: %s", err)
	}
}

func TestEmpty(t *testing.T) {
	r := NewRegistry[int]("empty")
	if len(r.Names()) != 0 {
		t.Fatalf("empty registry has names")
	}
	if r.Names() == nil {
		t.Fatalf("names should never be nil")
	}
}

package mako

import (
	"os"
	"path/filepath"
	"testing"
)

// setPath stores a path, as a string of words, where XA can point at it.
func setPath(m *Mako, path string) {
	for i, c := range path {
		m.mem.Set(pathBase+int32(i), int32(c))
	}
	m.mem.Set(pathBase+int32(len([]rune(path))), 0)
}

func TestKeys(t *testing.T) {
	m := newMachine(t, prog([]int32{
		OpConst, KY, OpLoad,
		OpConst, KB, OpLoad,
		OpConst, KB, OpLoad,
		OpConst, KB, OpLoad,
	}, halt))

	m.Keys().SetMask(KeyUp | KeyA)
	m.Keys().Enqueue('x')
	m.Keys().Enqueue(10)
	runToHalt(t, m)

	got := m.mem.GetRange(dataBase, 4)
	if got[0] != KeyUp|KeyA {
		t.Fatalf("wrong key mask %d", got[0])
	}
	if got[1] != 'x' || got[2] != 10 || got[3] != -1 {
		t.Fatalf("wrong key queue %v", got[1:])
	}
}

func TestRandom(t *testing.T) {
	code := prog([]int32{OpConst, RN, OpLoad, OpConst, RN, OpLoad}, halt)

	a := newMachine(t, code, WithSeed(42))
	b := newMachine(t, code, WithSeed(42))
	runToHalt(t, a)
	runToHalt(t, b)

	x := a.mem.GetRange(dataBase, 2)
	y := b.mem.GetRange(dataBase, 2)
	if x[0] != y[0] || x[1] != y[1] {
		t.Fatalf("same seed gave different numbers")
	}
	if x[0] == x[1] {
		t.Fatalf("random numbers repeated")
	}
	if a.mem.Get(RN) != 0 {
		t.Fatalf("reading RN should not store")
	}
}

func TestConsoleInput(t *testing.T) {
	file := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(file, []byte("ok"), 0644); err != nil {
		t.Fatalf("failed to write input: %s", err)
	}
	t.Setenv("INPUT_FILE", file)

	m := newMachine(t, prog([]int32{
		OpConst, CO, OpLoad,
		OpConst, CO, OpLoad,
		OpConst, CO, OpLoad,
		OpConst, CO, OpLoad,
	}, halt), WithInputDriver("file"))
	m.GetInput().StuffInput("!")
	runToHalt(t, m)

	got := m.mem.GetRange(dataBase, 4)
	if got[0] != '!' || got[1] != 'o' || got[2] != 'k' || got[3] != -1 {
		t.Fatalf("wrong console input %v", got)
	}
}

func TestConsoleInputError(t *testing.T) {
	m := newMachine(t, prog([]int32{OpConst, CO, OpLoad}, halt), WithInputDriver("error"))
	runToHalt(t, m)

	if top(m) != -1 {
		t.Fatalf("failed read gave %d", top(m))
	}
}

func TestExternalSupported(t *testing.T) {
	m := newMachine(t, prog([]int32{OpConst, XS, OpLoad}, halt))
	runToHalt(t, m)

	if top(m) != XSupported {
		t.Fatalf("wrong capabilities %d", top(m))
	}
}

func TestExternalFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	m := newMachine(t, prog(
		// open for writing
		[]int32{OpConst, pathBase, OpConst, XA, OpStor},
		[]int32{OpConst, XOpenWrite, OpConst, XS, OpStor},
		[]int32{OpConst, XA, OpLoad},

		// write "hi\r\n"
		[]int32{OpConst, 'h', OpConst, XO, OpStor},
		[]int32{OpConst, 'i', OpConst, XO, OpStor},
		[]int32{OpConst, '\r', OpConst, XO, OpStor},
		[]int32{OpConst, '\n', OpConst, XO, OpStor},

		// close it
		[]int32{OpConst, XClose, OpConst, XS, OpStor},

		// open it again for reading
		[]int32{OpConst, pathBase, OpConst, XA, OpStor},
		[]int32{OpConst, XOpenRead, OpConst, XS, OpStor},
		[]int32{OpConst, XA, OpLoad},

		// read four bytes
		[]int32{OpConst, XO, OpLoad},
		[]int32{OpConst, XO, OpLoad},
		[]int32{OpConst, XO, OpLoad},
		[]int32{OpConst, XO, OpLoad},
		halt,
	))
	setPath(m, path)
	runToHalt(t, m)

	got := m.mem.GetRange(dataBase, 6)
	if got[0] != 1 || got[1] != 2 {
		t.Fatalf("wrong handles %v", got[:2])
	}
	if got[2] != 'h' || got[3] != 'i' || got[4] != '\n' || got[5] != -1 {
		t.Fatalf("wrong file content %v", got[2:])
	}

	dat, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %s", err)
	}
	if string(dat) != "hi\r\n" {
		t.Fatalf("wrong file written %q", dat)
	}

	r, w := m.files.IsOpen(1)
	if r || w {
		t.Fatalf("closed handle is still open")
	}
	r, _ = m.files.IsOpen(2)
	if !r {
		t.Fatalf("handle should be open")
	}
}

func TestExternalFailure(t *testing.T) {
	m := newMachine(t, prog(
		[]int32{OpConst, pathBase, OpConst, XA, OpStor},
		[]int32{OpConst, XOpenRead, OpConst, XS, OpStor},
		[]int32{OpConst, XA, OpLoad},

		// Reads and writes on the bad handle are harmless
		[]int32{OpConst, XO, OpLoad},
		[]int32{OpConst, 'x', OpConst, XO, OpStor},
		halt,
	))
	setPath(m, filepath.Join(t.TempDir(), "missing", "file"))
	runToHalt(t, m)

	got := m.mem.GetRange(dataBase, 2)
	if got[0] != -1 || got[1] != -1 {
		t.Fatalf("failed open gave %v", got)
	}
	if m.mem.Get(DP) != dataBase+2 {
		t.Fatalf("stack unbalanced")
	}
}

func TestExternalUnknownCommand(t *testing.T) {
	m := newMachine(t, prog(
		[]int32{OpConst, 77, OpConst, XA, OpStor},
		[]int32{OpConst, 9, OpConst, XS, OpStor},
		[]int32{OpConst, XA, OpLoad},
		halt,
	))
	runToHalt(t, m)

	if top(m) != 77 {
		t.Fatalf("unknown command changed XA")
	}
}

package consolein

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/skx/makovm/internal/driver"
)

// TestStuffed ensures stuffed input is returned before driver input.
func TestStuffed(t *testing.T) {

	x := &StdinInput{}
	x.SetReader(strings.NewReader("kemp"))

	ch := ConsoleIn{}
	ch.driver = x

	ch.StuffInput("steve ")

	str := ""
	for {
		c, err := ch.ReadCharacter()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		str += string(c)
	}

	if str != "steve kemp" {
		t.Fatalf("unexpected output '%s'", str)
	}
}

// TestStdinEOF ensures the stdin driver reports end of input.
func TestStdinEOF(t *testing.T) {

	d, err := New("stdin")
	if err != nil {
		t.Fatalf("failed to create driver: %s", err)
	}

	drv, ok := d.GetDriver().(*StdinInput)
	if !ok {
		t.Fatalf("failed to cast driver")
	}
	drv.SetReader(strings.NewReader("a"))

	sErr := d.Setup()
	if sErr != nil {
		t.Fatalf("failed to setup driver %s", sErr.Error())
	}

	c, err := d.ReadCharacter()
	if err != nil || c != 'a' {
		t.Fatalf("wrong result %c %v", c, err)
	}

	_, err = d.ReadCharacter()
	if err != io.EOF {
		t.Fatalf("expected EOF, got %v", err)
	}

	tErr := d.TearDown()
	if tErr != nil {
		t.Fatalf("teardown failed %s", tErr.Error())
	}
}

// TestError ensures the error driver does what it says.
func TestError(t *testing.T) {

	d, err := New(ErrorInputName)
	if err != nil {
		t.Fatalf("failed to create driver: %s", err)
	}
	if d.Setup() != nil {
		t.Fatalf("setup failed")
	}
	_, err = d.ReadCharacter()
	if !errors.Is(err, ErrInputFailure) {
		t.Fatalf("expected an error, got %v", err)
	}
	if d.TearDown() != nil {
		t.Fatalf("teardown failed")
	}
}

// TestDriverRegistration performs some sanity-check on our driver-registration.
func TestDriverRegistration(t *testing.T) {

	expected := []string{"cbreak", "file", "raw", "stdin", "term"}

	obj, err := New("stdin")
	if err != nil {
		t.Fatalf("failed to create driver: %s", err)
	}

	found := obj.GetDrivers()
	if strings.Join(found, ",") != strings.Join(expected, ",") {
		t.Fatalf("wrong drivers, found %v, expected %v", found, expected)
	}

	// Every driver has the name it was registered with
	for _, name := range append(expected, ErrorInputName) {
		d, err := New(name)
		if err != nil {
			t.Fatalf("failed to create %s: %s", name, err)
		}
		if d.GetName() != name {
			t.Fatalf("naming mismatch on driver %s != %s", d.GetName(), name)
		}
	}

	_, err = New("not-a-driver")
	if !errors.Is(err, driver.ErrUnknown) {
		t.Fatalf("expected error for a bogus driver")
	}
}

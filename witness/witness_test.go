package witness

import (
	"testing"

	"github.com/vocdoni/acvm-go/acir"
	"github.com/vocdoni/acvm-go/field"
)

func TestExportOrdersPublicThenSecret(t *testing.T) {
	m := acir.NewMap()
	if err := m.Insert(1, field.FromUint64(10)); err != nil {
		t.Fatal(err)
	}
	if err := m.Insert(2, field.FromUint64(20)); err != nil {
		t.Fatal(err)
	}
	if err := m.Insert(3, field.FromUint64(30)); err != nil {
		t.Fatal(err)
	}

	w, err := Export(m, []acir.Witness{2}, []acir.Witness{1, 3})
	if err != nil {
		t.Fatal(err)
	}
	vec := w.Vector()
	if len(vec) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(vec))
	}
	if !field.Equal(vec[0], field.FromUint64(20)) {
		t.Fatalf("expected public first (20), got %s", field.ToBigInt(vec[0]))
	}
	if !field.Equal(vec[1], field.FromUint64(10)) || !field.Equal(vec[2], field.FromUint64(30)) {
		t.Fatalf("expected secret order [10,30], got [%s,%s]", field.ToBigInt(vec[1]), field.ToBigInt(vec[2]))
	}
}

func TestExportFailsOnMissingWitness(t *testing.T) {
	m := acir.NewMap()
	_, err := Export(m, []acir.Witness{1}, nil)
	if err == nil {
		t.Fatal("expected ErrInvalidWitness")
	}
}

func TestRoundtripBinary(t *testing.T) {
	m := acir.NewMap()
	if err := m.Insert(1, field.FromUint64(5)); err != nil {
		t.Fatal(err)
	}
	w, err := Export(m, nil, []acir.Witness{1})
	if err != nil {
		t.Fatal(err)
	}

	data, err := w.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	w2 := New()
	if err := w2.UnmarshalBinary(data); err != nil {
		t.Fatal(err)
	}
	if len(w2.Vector()) != 1 || !field.Equal(w2.Vector()[0], field.FromUint64(5)) {
		t.Fatalf("expected roundtripped vector [5], got %v", w2.Vector())
	}
}

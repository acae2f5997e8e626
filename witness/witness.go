// Copyright 2020 ConsenSys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package witness provides serialization helpers to encode a solved
// witness map into a []byte, and to build one from a completed Session.
//
// Binary protocol
//
//	Witness     ->  [uint32(nbPublic) | uint32(nbSecret) | fr.Vector(variables)]
//	fr.Vector is a *field element* vector encoded a big-endian byte array like so: [uint32(len(vector)) | elements]
//
// # Ordering
//
// First, `publicWitnesses`, then `secretWitnesses`, each in the order
// supplied to Export — generally the order in which the circuit declares
// them. Adapted from the teacher's gnark-witness binary protocol, fixed to
// a single curve (bn254) rather than dispatching over a compiled circuit's
// curve ID, since a PWG solves one circuit against one known field.
package witness

import (
	"bytes"
	"encoding"
	"encoding/binary"
	"errors"
	"io"

	fr "github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/vocdoni/acvm-go/acir"
)

// ErrInvalidWitness is returned when a witness map is missing an assignment
// required to build the exported vector.
var ErrInvalidWitness = errors.New("invalid witness")

// Witness is a solved witness, serializable to/from the binary protocol
// above.
type Witness interface {
	io.WriterTo
	io.ReaderFrom
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler

	// Public returns a Witness containing only the public part of w.
	Public() (Witness, error)

	// Vector returns the underlying field element vector.
	Vector() fr.Vector
}

type witness struct {
	vector             fr.Vector
	nbPublic, nbSecret uint32
}

// New returns an empty Witness.
func New() Witness {
	return &witness{}
}

// Export builds a Witness from a solved witness map, laying out publicIDs
// followed by secretIDs in the given order. Every named witness must be
// assigned in m, or Export fails with ErrInvalidWitness.
func Export(m *acir.Map, publicIDs, secretIDs []acir.Witness) (Witness, error) {
	vec := make(fr.Vector, 0, len(publicIDs)+len(secretIDs))
	for _, id := range append(append([]acir.Witness{}, publicIDs...), secretIDs...) {
		v, ok := m.Get(id)
		if !ok {
			return nil, ErrInvalidWitness
		}
		vec = append(vec, v)
	}
	return &witness{
		vector:   vec,
		nbPublic: uint32(len(publicIDs)),
		nbSecret: uint32(len(secretIDs)),
	}, nil
}

func (w *witness) Public() (Witness, error) {
	if int(w.nbPublic) > len(w.vector) {
		return nil, ErrInvalidWitness
	}
	pub := make(fr.Vector, w.nbPublic)
	copy(pub, w.vector[:w.nbPublic])
	return &witness{
		vector:   pub,
		nbPublic: w.nbPublic,
	}, nil
}

func (w *witness) WriteTo(wr io.Writer) (n int64, err error) {
	if err := binary.Write(wr, binary.BigEndian, w.nbPublic); err != nil {
		return 0, err
	}
	n = 4
	if err := binary.Write(wr, binary.BigEndian, w.nbSecret); err != nil {
		return n, err
	}
	n += 4

	m, err := w.vector.WriteTo(wr)
	n += m
	return n, err
}

func (w *witness) ReadFrom(r io.Reader) (n int64, err error) {
	var buf [4]byte
	if read, err := io.ReadFull(r, buf[:]); err != nil {
		return int64(read), err
	}
	w.nbPublic = binary.BigEndian.Uint32(buf[:4])
	n = 4
	if read, err := io.ReadFull(r, buf[:]); err != nil {
		return n + int64(read), err
	}
	w.nbSecret = binary.BigEndian.Uint32(buf[:4])
	n += 4

	m, err := w.vector.ReadFrom(r)
	n += m
	return n, err
}

// MarshalBinary encodes the number of public, number of secret and the
// field element vector.
func (w *witness) MarshalBinary() (data []byte, err error) {
	var buf bytes.Buffer
	if _, err = w.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (w *witness) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	_, err := w.ReadFrom(r)
	return err
}

func (w *witness) Vector() fr.Vector {
	return w.vector
}

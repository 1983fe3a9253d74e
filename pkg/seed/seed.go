package seed

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// New Ненулевой базовый сид из crypto/rand
func New() (uint64, error) {
	var b [8]byte
	for {
		if _, err := crand.Read(b[:]); err != nil {
			return 0, fmt.Errorf("read random seed: %w", err)
		}
		if s := binary.LittleEndian.Uint64(b[:]); s != 0 {
			return s, nil
		}
	}
}

package contractodds

import (
	"encoding/binary"
	"fmt"

	"github.com/spacedeck/contractodds/cards"
)

// InfoSet identifies a game state from the player's perspective.
// The contract game is single-agent and perfect information, so the
// info set is the entire State.
type InfoSet struct {
	State State
}

const infoSetSize = 8 + 8 + 8 + 5

// Key implements cfr.InfoSet.
func (is *InfoSet) Key() string {
	buf, _ := is.MarshalBinary()
	return string(buf)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (is *InfoSet) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, infoSetSize)

	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(is.State.Actions))
	buf = append(buf, b[:]...)
	binary.LittleEndian.PutUint64(b[:], uint64(is.State.Hand))
	buf = append(buf, b[:]...)
	binary.LittleEndian.PutUint64(b[:], uint64(is.State.DrawPile))
	buf = append(buf, b[:]...)

	r := is.State.Requirements
	buf = append(buf, r.Reactors, r.Thrusters, r.Shields, r.Damage, r.Crew)

	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (is *InfoSet) UnmarshalBinary(buf []byte) error {
	if len(buf) != infoSetSize {
		return fmt.Errorf("info set has %d bytes, expected %d", len(buf), infoSetSize)
	}

	is.State.Actions = int(binary.LittleEndian.Uint64(buf))
	buf = buf[8:]
	is.State.Hand = cards.Set(binary.LittleEndian.Uint64(buf))
	buf = buf[8:]
	is.State.DrawPile = cards.Set(binary.LittleEndian.Uint64(buf))
	buf = buf[8:]

	is.State.Requirements = Requirements{
		Reactors:  buf[0],
		Thrusters: buf[1],
		Shields:   buf[2],
		Damage:    buf[3],
		Crew:      buf[4],
	}

	return nil
}

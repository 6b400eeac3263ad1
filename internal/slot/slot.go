// Package slot models the account slots the device keeps: each slot pairs
// a Flow account address with the derivation path of its key.
package slot

import (
	"encoding/hex"
	"errors"
	"strings"

	"FLOWADDR/internal/hdpath"
)

const (
	// Count is the number of slots on the device.
	Count = 64
	// AccountLen is the size of a Flow account address.
	AccountLen = 8
	// RecordLen is account followed by the encoded path.
	RecordLen = AccountLen + hdpath.EncodedLen
	// SetSlotLen is a slot record prefixed with its slot index.
	SetSlotLen = 1 + RecordLen
)

var (
	ErrSlotIndex = errors.New("slot index out of range")
	ErrRecordLen = errors.New("slot record has wrong length")
	ErrAccount   = errors.New("account must be 8 bytes of hex")
)

// Slot is one stored account. The zero Slot is an empty slot.
type Slot struct {
	Account [AccountLen]byte
	Path    hdpath.Path
}

// IsEmpty reports whether the slot holds nothing.
func (s Slot) IsEmpty() bool {
	return s == Slot{}
}

// AccountHex is the address text shown on the device.
func (s Slot) AccountHex() string {
	return hex.EncodeToString(s.Account[:])
}

// MarshalBinary encodes the account followed by the little-endian path.
func (s Slot) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, RecordLen)
	b = append(b, s.Account[:]...)
	return s.Path.AppendBinary(b)
}

// UnmarshalBinary decodes exactly RecordLen bytes.
func (s *Slot) UnmarshalBinary(b []byte) error {
	if len(b) != RecordLen {
		return ErrRecordLen
	}
	copy(s.Account[:], b[:AccountLen])
	return s.Path.UnmarshalBinary(b[AccountLen:])
}

// ParseAccount reads a 16 hex digit account, optionally 0x prefixed.
func ParseAccount(s string) ([AccountLen]byte, error) {
	var a [AccountLen]byte
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if len(s) != 2*AccountLen {
		return a, ErrAccount
	}
	if _, err := hex.Decode(a[:], []byte(s)); err != nil {
		return a, ErrAccount
	}
	return a, nil
}

// EncodeSetSlot builds the set-slot payload: slot index then record.
func EncodeSetSlot(index int, s Slot) ([]byte, error) {
	if index < 0 || index >= Count {
		return nil, ErrSlotIndex
	}
	rec, err := s.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append([]byte{byte(index)}, rec...), nil
}

// DecodeSetSlot is the inverse of EncodeSetSlot.
func DecodeSetSlot(b []byte) (int, Slot, error) {
	var s Slot
	if len(b) != SetSlotLen {
		return 0, s, ErrRecordLen
	}
	index := int(b[0])
	if index >= Count {
		return 0, s, ErrSlotIndex
	}
	if err := s.UnmarshalBinary(b[1:]); err != nil {
		return 0, Slot{}, err
	}
	return index, s, nil
}

// Store holds all device slots in memory.
type Store struct {
	slots [Count]Slot
}

// Set stores s at index; storing an empty Slot clears it.
func (st *Store) Set(index int, s Slot) error {
	if index < 0 || index >= Count {
		return ErrSlotIndex
	}
	st.slots[index] = s
	return nil
}

// Get returns the slot at index.
func (st *Store) Get(index int) (Slot, error) {
	if index < 0 || index >= Count {
		return Slot{}, ErrSlotIndex
	}
	return st.slots[index], nil
}

// Status has one byte per slot, 1 when the slot is in use.
func (st *Store) Status() [Count]byte {
	var out [Count]byte
	for i, s := range st.slots {
		if !s.IsEmpty() {
			out[i] = 1
		}
	}
	return out
}

// Used returns the indexes of non-empty slots in ascending order.
func (st *Store) Used() []int {
	var out []int
	for i, s := range st.slots {
		if !s.IsEmpty() {
			out = append(out, i)
		}
	}
	return out
}

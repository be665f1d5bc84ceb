package model

import "time"

const (
	RoomCodeLen      = 6
	RoomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

type Room struct {
	Code         string
	Partner1Name string
	Partner2Name *string
	CreatedAt    time.Time
}

// IsFull reports whether the second partner slot is taken.
func (r Room) IsFull() bool {
	return r.Partner2Name != nil && *r.Partner2Name != ""
}

func IsValidRoomCode(code string) bool {
	if len(code) != RoomCodeLen {
		return false
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		if !(c >= 'A' && c <= 'Z') && !(c >= '0' && c <= '9') {
			return false
		}
	}
	return true
}

package pkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	roomCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	roomCodeLength  = 6
)

// GenerateRoomCode - a random 6-character upper-case room code.
func GenerateRoomCode() (string, error) {
	code := make([]byte, roomCodeLength)

	for i := range code {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(roomCodeCharset))))
		if err != nil {
			return "", fmt.Errorf("failed to read random: %w", err)
		}

		code[i] = roomCodeCharset[num.Int64()]
	}

	return string(code), nil
}

// GeneratePlayerName - the default name for players that did not pick one.
func GeneratePlayerName() string {
	num, err := rand.Int(rand.Reader, big.NewInt(1000))
	if err != nil {
		return "Player0"
	}

	return fmt.Sprintf("Player%d", num.Int64())
}

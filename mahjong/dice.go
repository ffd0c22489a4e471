package mahjong

import (
	"fmt"
	"math/rand"
)

// DiceResult 定庄掷骰结果
type DiceResult struct {
	Red        int32
	White      int32
	Sum        int32
	SeatOffset int32
}

// Toss 掷两粒骰子
func Toss() DiceResult {
	red := int32(rand.Intn(6) + 1)
	white := int32(rand.Intn(6) + 1)
	return DiceResult{
		Red:        red,
		White:      white,
		Sum:        red + white,
		SeatOffset: (red + white) % 4,
	}
}

// Resolve 采用外部来源（如物理骰子模拟）的两个骰值，
// 越界值直接拒绝，不做钳制
func Resolve(red, white int32) (DiceResult, error) {
	if red < 1 || red > 6 {
		return DiceResult{}, fmt.Errorf("%w: red=%d", ErrInvalidDieValue, red)
	}
	if white < 1 || white > 6 {
		return DiceResult{}, fmt.Errorf("%w: white=%d", ErrInvalidDieValue, white)
	}
	return DiceResult{
		Red:        red,
		White:      white,
		Sum:        red + white,
		SeatOffset: (red + white) % 4,
	}, nil
}

package mahjong

import (
	"fmt"
	"slices"
)

// StickDenom 点棒面额
type StickDenom int64

const (
	Stick10000 StickDenom = 10000
	Stick5000  StickDenom = 5000
	Stick1000  StickDenom = 1000
	Stick500   StickDenom = 500
	Stick100   StickDenom = 100
)

var stickColors = map[StickDenom]string{
	Stick10000: "red",
	Stick5000:  "yellow",
	Stick1000:  "blue",
	Stick500:   "green",
	Stick100:   "white",
}

// Color 面额对应的棒身颜色
func (d StickDenom) Color() string {
	return stickColors[d]
}

// StickCount 某面额的持有数
type StickCount struct {
	Denom StickDenom
	Count int
}

// StandardDenominations 标准五种面额，从大到小
func StandardDenominations() []StickDenom {
	return []StickDenom{Stick10000, Stick5000, Stick1000, Stick500, Stick100}
}

// BuildInventory 按配给原点拆分点棒：从大面额起贪心取最大张数，
// 余额依次交给更小面额，拆不尽视为配置错误
func BuildInventory(startingScore int64, denoms []StickDenom) ([]StickCount, error) {
	if startingScore <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnrepresentableScore, startingScore)
	}
	sorted := slices.Clone(denoms)
	slices.SortFunc(sorted, func(a, b StickDenom) int { return int(b - a) })

	res := make([]StickCount, 0, len(sorted))
	rest := startingScore
	for _, d := range sorted {
		count := rest / int64(d)
		rest %= int64(d)
		res = append(res, StickCount{Denom: d, Count: int(count)})
	}
	if rest != 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnrepresentableScore, startingScore)
	}
	return res, nil
}

// InventoryValue 持有点棒的总点数
func InventoryValue(sticks []StickCount) int64 {
	var total int64
	for _, s := range sticks {
		total += int64(s.Denom) * int64(s.Count)
	}
	return total
}

// ValidateConservation 开局校验：全员点棒总值须等于人数×配给原点
func ValidateConservation(holdings [][]StickCount, startingScore int64) error {
	var total int64
	for _, h := range holdings {
		total += InventoryValue(h)
	}
	want := int64(len(holdings)) * startingScore
	if total != want {
		return fmt.Errorf("stick total %d, want %d", total, want)
	}
	return nil
}

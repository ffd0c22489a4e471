package mahjong

import (
	"fmt"
	"slices"
	"sort"
)

// GroupOrderPolicy 理牌时花色分组的排列策略
type GroupOrderPolicy int32

const (
	// GroupOrderFirstAppearance 按花色在手牌中首次出现的先后定组序
	GroupOrderFirstAppearance GroupOrderPolicy = iota
	// GroupOrderFixed 固定组序：万、条、筒、风、箭
	GroupOrderFixed
)

// 组内排序键：数牌与风牌按点数，箭牌查显示顺序表
func sortKeyInColor(t Tile) int {
	if t.Color() == ColorDragon {
		return dragonSortKey[t.Point()]
	}
	return t.Point()
}

// SortHand 理牌：分组、组内升序、按策略拼接各组，返回新切片，入参不动。
// 对已理好的手牌再次调用结果不变。
func SortHand(tiles []Tile, policy GroupOrderPolicy) ([]Tile, error) {
	for _, t := range tiles {
		if _, ok := descriptorByID[t]; !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTileKind, int32(t))
		}
	}

	rank := groupRanks(tiles, policy)
	res := slices.Clone(tiles)
	sort.SliceStable(res, func(i, j int) bool {
		ri, rj := rank[res[i].Color()], rank[res[j].Color()]
		if ri != rj {
			return ri < rj
		}
		return sortKeyInColor(res[i]) < sortKeyInColor(res[j])
	})
	return res, nil
}

func groupRanks(tiles []Tile, policy GroupOrderPolicy) [ColorEnd]int {
	var rank [ColorEnd]int
	for c := ColorBegin; c < ColorEnd; c++ {
		rank[c] = int(c)
	}
	if policy != GroupOrderFirstAppearance {
		return rank
	}

	next := 0
	seen := [ColorEnd]bool{}
	for _, t := range tiles {
		if c := t.Color(); !seen[c] {
			seen[c] = true
			rank[c] = next
			next++
		}
	}
	return rank
}

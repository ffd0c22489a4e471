package mahjong

// TileSet 一局用的整副牌：34种各4张，共136张
type TileSet struct {
	counts map[Tile]int
}

func NewTileSet() *TileSet {
	s := &TileSet{}
	s.Reset()
	return s
}

// Reset 重建整副牌，洗墙时调用
func (s *TileSet) Reset() {
	s.counts = make(map[Tile]int, TileKindCount)
	for _, d := range catalog {
		s.counts[d.Tile] = SameTileCountByColor[d.Color]
	}
}

func (s *TileSet) Count(t Tile) int {
	return s.counts[t]
}

func (s *TileSet) Remaining() int {
	total := 0
	for _, c := range s.counts {
		total += c
	}
	return total
}

// Take 取走一张，第5张为游戏流程错误
func (s *TileSet) Take(t Tile) error {
	if _, ok := descriptorByID[t]; !ok {
		return ErrInvalidTileKind
	}
	if s.counts[t] <= 0 {
		return ErrExhaustedSupply
	}
	s.counts[t]--
	return nil
}

// Tiles 按理牌序展开剩余的牌，同种相邻
func (s *TileSet) Tiles() []Tile {
	res := make([]Tile, 0, TileTotalCount)
	for _, d := range catalog {
		for n := 0; n < s.counts[d.Tile]; n++ {
			res = append(res, d.Tile)
		}
	}
	return res
}

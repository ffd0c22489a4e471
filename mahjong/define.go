package mahjong

type EColor int

const (
	ColorUndefined EColor = -1
	ColorCharacter EColor = iota - 1 // 万
	ColorBamboo                      // 条
	ColorDot                         // 筒
	ColorWind                        // 风牌
	ColorDragon                      // 箭牌
	ColorEnd
	ColorBegin = ColorCharacter
)

var (
	PointCountByColor    = [ColorEnd]int{9, 9, 9, 4, 3}
	SameTileCountByColor = [ColorEnd]int{4, 4, 4, 4, 4}
	CodePointBaseByColor = [ColorEnd]rune{0x1F007, 0x1F010, 0x1F019, 0x1F000, 0x1F004}
)

const (
	SeatNull int32 = -1
)

const (
	NP4 = 4
	NP3 = 3
	NP2 = 2
)

const (
	TileCountInitBanker = 14
	TileCountInitNormal = 13
	TileKindCount       = 34
	TileTotalCount      = 136
)

// Wind 风位，同时也是座位相对庄家的方位
type Wind int32

const (
	WindEast Wind = iota
	WindSouth
	WindWest
	WindNorth
)

func (w Wind) String() string {
	names := []string{"东", "南", "西", "北"}
	if w < WindEast || w > WindNorth {
		return ""
	}
	return names[w]
}

// Left 上家方位
func (w Wind) Left() Wind {
	return (w + 3) % 4
}

// Right 下家方位
func (w Wind) Right() Wind {
	return (w + 1) % 4
}

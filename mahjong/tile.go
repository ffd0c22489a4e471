package mahjong

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	TileNull  Tile = -1
	TileInf   Tile = MakeTile(ColorEnd, 0)    // 无效牌
	TileZhong Tile = MakeTile(ColorDragon, 0) // 中
	TileFa    Tile = MakeTile(ColorDragon, 1) // 发
	TileBai   Tile = MakeTile(ColorDragon, 2) // 白
	TileDong  Tile = MakeTile(ColorWind, 0)   // 东
	TileNan   Tile = MakeTile(ColorWind, 1)   // 南
	TileXi    Tile = MakeTile(ColorWind, 2)   // 西
	TileBei   Tile = MakeTile(ColorWind, 3)   // 北
	TileYaoJi Tile = MakeTile(ColorBamboo, 0) // 幺鸡
)

// 静态表
var singleTileMap = map[rune]Tile{
	// 风
	'东': TileDong,
	'南': TileNan,
	'西': TileXi,
	'北': TileBei,
	// 箭
	'中': TileZhong,
	'发': TileFa,
	'白': TileBai,
}

// 静态表：最后一个 rune -> 颜色
var lastRuneToColor = map[rune]EColor{
	'万': ColorCharacter,
	'条': ColorBamboo,
	'筒': ColorDot,
}

// 宝牌指示规则：9循环回1，北回东，白发中成环
var tileSuccMap = map[Tile]Tile{
	TileBei:                     TileDong,
	TileBai:                     TileFa,
	TileFa:                      TileZhong,
	TileZhong:                   TileBai,
	MakeTile(ColorCharacter, 8): MakeTile(ColorCharacter, 0),
	MakeTile(ColorBamboo, 8):    MakeTile(ColorBamboo, 0),
	MakeTile(ColorDot, 8):       MakeTile(ColorDot, 0),
}

type Tile int32

func MakeTile(color EColor, point int) Tile {
	return Tile((int(color)<<8 | (point << 4) | 1))
}

func MakeSpecialTile(color EColor, point int, flag int) Tile {
	return Tile((int(color)<<8 | (point << 4) | flag))
}

func (t Tile) Color() EColor {
	return EColor((t >> 8) & 0x0F)
}

func (t Tile) Point() int {
	return int((t >> 4) & 0x0F)
}

func (t Tile) Info() (EColor, int) {
	return t.Color(), t.Point()
}

func (t Tile) Flag() int {
	return int(t & 0x0F)
}

func (t Tile) IsValid() bool {
	if t <= 0 || t >= TileInf {
		return false
	}
	c := t.Color()
	return c >= ColorBegin && c < ColorEnd && t.Point() < PointCountByColor[c]
}

func (t Tile) IsSuit() bool { // 数牌
	return t.IsValid() && t.Color() >= ColorCharacter && t.Color() <= ColorDot
}

func (t Tile) IsHonor() bool { // 字牌
	return t.IsValid() && (t.Color() == ColorWind || t.Color() == ColorDragon)
}

func (t Tile) IsWind() bool { // 风牌
	return t.IsValid() && t.Color() == ColorWind
}

func (t Tile) IsDragon() bool { // 箭牌
	return t.IsValid() && t.Color() == ColorDragon
}

func (t Tile) IsTerminal() bool { // 幺九牌
	return t.IsSuit() && (t.Point() == 0 || t.Point() == 8)
}

func (t Tile) IsSimple() bool { // 中张牌
	return t.IsSuit() && !t.IsTerminal()
}

// HasAltGlyph 五万牌面带异体字雕刻，仅影响渲染，不影响牌的同一性与排序
func (t Tile) HasAltGlyph() bool {
	return t.IsValid() && t.Color() == ColorCharacter && t.Point() == 4
}

// CodePoint 返回 Unicode 麻将牌区（U+1F000起）对应码位
func (t Tile) CodePoint() (rune, error) {
	if !t.IsValid() {
		return 0, ErrInvalidTileKind
	}
	return CodePointBaseByColor[t.Color()] + rune(t.Point()), nil
}

// TileFromCodePoint 码位反查，非麻将牌码位返回错误
func TileFromCodePoint(r rune) (Tile, error) {
	for c := ColorBegin; c < ColorEnd; c++ {
		base := CodePointBaseByColor[c]
		if r >= base && r < base+rune(PointCountByColor[c]) {
			return MakeTile(c, int(r-base)), nil
		}
	}
	return TileNull, ErrInvalidTileKind
}

// Successor 宝牌指示牌对应的下一张牌
func (t Tile) Successor() (Tile, error) {
	if !t.IsValid() {
		return TileNull, ErrInvalidTileKind
	}
	if succ, ok := tileSuccMap[t]; ok {
		return succ, nil
	}
	return MakeTile(t.Color(), t.Point()+1), nil
}

func (t Tile) Name() string {
	c, p := t.Info()
	switch c {
	case ColorCharacter:
		return strconv.Itoa(p+1) + "万"
	case ColorBamboo:
		return strconv.Itoa(p+1) + "条"
	case ColorDot:
		return strconv.Itoa(p+1) + "筒"
	case ColorWind:
		names := []string{"东", "南", "西", "北"}
		return names[p]
	case ColorDragon:
		names := []string{"中", "发", "白"}
		return names[p]
	default:
		return ""
	}
}

func (t Tile) ToInt32() int32 {
	return int32(t)
}

func TilesName(tiles []Tile) string {
	var tileNames []string
	for _, tile := range tiles {
		tileNames = append(tileNames, tile.Name())
	}
	return strings.Join(tileNames, ", ")
}

func TilesInt32(tiles []Tile) []int32 {
	res := make([]int32, len(tiles))
	for i, t := range tiles {
		res[i] = int32(t)
	}
	return res
}

func Int32Tile(tiles []int32) []Tile {
	res := make([]Tile, len(tiles))
	for i, t := range tiles {
		res[i] = Tile(t)
	}
	return res
}

func NamesToTiles(names string) []Tile {
	parts := strings.Split(names, ",")
	res := make([]Tile, len(parts))
	for i, name := range parts {
		res[i] = NameToTile(strings.TrimSpace(name))
	}
	return res
}

func NameToTile(name string) Tile {
	if name == "" {
		return TileNull
	}

	// 字牌是单字名，按rune判断，不能按字节长度
	if r, size := utf8.DecodeRuneInString(name); size == len(name) {
		if t, ok := singleTileMap[r]; ok {
			return t
		}
		return TileNull
	}

	r, size := utf8.DecodeLastRuneInString(name)
	color, ok := lastRuneToColor[r]
	if !ok {
		return TileNull
	}
	prefix := name[:len(name)-size]
	num, err := strconv.Atoi(prefix)
	if err != nil || num < 1 || num > 9 {
		return TileNull
	}
	return MakeTile(color, num-1)
}

package mahjong

import "slices"

// TileDescriptor 牌种静态描述
type TileDescriptor struct {
	Tile      Tile
	Color     EColor
	Point     int
	CodePoint rune
	SortKey   int
	AltGlyph  bool
}

// 理牌时箭牌的显示顺序为白发中，与码位顺序（中发白）相反，
// 按牌内点数查这张表，不得用码位排序
var dragonSortKey = [3]int{2, 1, 0}

var (
	catalog        []TileDescriptor
	descriptorByID map[Tile]int
)

func init() {
	catalog = make([]TileDescriptor, 0, TileKindCount)
	descriptorByID = make(map[Tile]int, TileKindCount)
	key := 0
	for c := ColorBegin; c < ColorEnd; c++ {
		for i := 0; i < PointCountByColor[c]; i++ {
			p := i
			if c == ColorDragon {
				// 目录序即理牌序：白、发、中
				p = slices.Index(dragonSortKey[:], i)
			}
			t := MakeTile(c, p)
			catalog = append(catalog, TileDescriptor{
				Tile:      t,
				Color:     c,
				Point:     p,
				CodePoint: CodePointBaseByColor[c] + rune(p),
				SortKey:   key,
				AltGlyph:  t.HasAltGlyph(),
			})
			descriptorByID[t] = key
			key++
		}
	}
}

// AllKinds 按理牌序返回34种牌的描述
func AllKinds() []TileDescriptor {
	return slices.Clone(catalog)
}

// DescriptorOf 查单张牌的描述
func DescriptorOf(t Tile) (TileDescriptor, error) {
	idx, ok := descriptorByID[t]
	if !ok {
		return TileDescriptor{}, ErrInvalidTileKind
	}
	return catalog[idx], nil
}

// SortKeyOf 全目录排序键，仅用于固定组序的整体排序
func SortKeyOf(t Tile) (int, error) {
	idx, ok := descriptorByID[t]
	if !ok {
		return 0, ErrInvalidTileKind
	}
	return catalog[idx].SortKey, nil
}

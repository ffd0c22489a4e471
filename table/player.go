package table

import (
	"slices"

	"github.com/kevin-chtw/tw_table/mahjong"
)

// Meld 副露组，不参与理牌，单独保存
type Meld struct {
	Tiles []mahjong.Tile
	From  int32
}

// Player 牌桌上的一个座位
type Player struct {
	seat     int32
	hand     []mahjong.Tile
	outTiles []mahjong.Tile
	melds    []Meld
	sticks   []mahjong.StickCount
}

func NewPlayer(seat int32, sticks []mahjong.StickCount) *Player {
	return &Player{
		seat:     seat,
		hand:     make([]mahjong.Tile, 0, mahjong.TileCountInitBanker),
		outTiles: make([]mahjong.Tile, 0),
		melds:    make([]Meld, 0),
		sticks:   sticks,
	}
}

func (p *Player) Seat() int32 {
	return p.seat
}

// Hand 当前手牌快照
func (p *Player) Hand() []mahjong.Tile {
	return slices.Clone(p.hand)
}

// SortHand 手动理牌，自动理牌关闭时由玩家触发
func (p *Player) SortHand(policy mahjong.GroupOrderPolicy) error {
	sorted, err := mahjong.SortHand(p.hand, policy)
	if err != nil {
		return err
	}
	p.hand = sorted
	return nil
}

func (p *Player) AddMeld(m Meld) {
	p.melds = append(p.melds, m)
}

func (p *Player) Melds() []Meld {
	return slices.Clone(p.melds)
}

func (p *Player) OutTiles() []mahjong.Tile {
	return slices.Clone(p.outTiles)
}

// Sticks 持有点棒，开局按配给原点拆分
func (p *Player) Sticks() []mahjong.StickCount {
	return slices.Clone(p.sticks)
}

// Score 点棒总点数
func (p *Player) Score() int64 {
	return mahjong.InventoryValue(p.sticks)
}

func (p *Player) setHand(tiles []mahjong.Tile) {
	p.hand = tiles
}

func (p *Player) addTile(t mahjong.Tile) {
	p.hand = append(p.hand, t)
}

func (p *Player) removeTile(t mahjong.Tile) bool {
	i := slices.Index(p.hand, t)
	if i < 0 {
		return false
	}
	p.hand = slices.Delete(p.hand, i, i+1)
	return true
}

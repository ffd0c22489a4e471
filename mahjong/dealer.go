package mahjong

import (
	"errors"
	"math/rand"
)

const (
	DeadWallSize     = 14
	maxDoraIndicator = 5
)

// Dealer 牌墙与发牌器
type Dealer struct {
	tileWall []Tile
	deadWall []Tile
	revealed int
}

func NewDealer() *Dealer {
	return &Dealer{
		tileWall: make([]Tile, 0),
		deadWall: make([]Tile, 0),
	}
}

// Initialize 从整副牌洗出牌墙，并切出王牌（岭上）区，翻首张宝牌指示
func (d *Dealer) Initialize(set *TileSet) {
	tiles := set.Tiles()
	d.tileWall = make([]Tile, len(tiles))

	// 填充并同时随机化牌墙
	for i, tile := range tiles {
		pos := rand.Intn(i + 1)
		if pos != i {
			d.tileWall[i] = d.tileWall[pos]
		}
		d.tileWall[pos] = tile
	}

	d.deadWall = d.tileWall[:DeadWallSize]
	d.tileWall = d.tileWall[DeadWallSize:]
	d.revealed = 1
}

// DealStart 起手配牌：每人三轮各4张再各1张，庄家多取1张
func (d *Dealer) DealStart(banker int32, playerCount int32) [][]Tile {
	hands := make([][]Tile, playerCount)
	for i := range hands {
		hands[i] = make([]Tile, 0, TileCountInitBanker)
	}
	for round := 0; round < 3; round++ {
		for seat := int32(0); seat < playerCount; seat++ {
			hands[seat] = append(hands[seat], d.Deal(4)...)
		}
	}
	for seat := int32(0); seat < playerCount; seat++ {
		hands[seat] = append(hands[seat], d.DrawTile())
	}
	hands[banker] = append(hands[banker], d.DrawTile())
	return hands
}

// DrawTile 抽牌
func (d *Dealer) DrawTile() Tile {
	if len(d.tileWall) == 0 {
		return TileNull
	}
	tile := d.tileWall[0]
	d.tileWall = d.tileWall[1:]
	return tile
}

// Deal 连发count张，墙不够时只发剩余的
func (d *Dealer) Deal(count int) []Tile {
	if count > len(d.tileWall) {
		count = len(d.tileWall)
	}
	tiles := make([]Tile, count)
	copy(tiles, d.tileWall[:count])
	d.tileWall = d.tileWall[count:]
	return tiles
}

// RestCount 获取剩余牌数
func (d *Dealer) RestCount() int32 {
	return int32(len(d.tileWall))
}

// DoraIndicators 已翻开的宝牌指示牌
func (d *Dealer) DoraIndicators() []Tile {
	res := make([]Tile, d.revealed)
	copy(res, d.deadWall[:d.revealed])
	return res
}

// RevealKongDora 杠后追翻一张宝牌指示，至多5张
func (d *Dealer) RevealKongDora() error {
	if d.revealed >= maxDoraIndicator {
		return errors.New("too many kong-dora indicators")
	}
	d.revealed++
	return nil
}

func (d *Dealer) Count(tile Tile) int {
	count := 0
	for _, t := range d.tileWall {
		if t == tile {
			count++
		}
	}
	return count
}

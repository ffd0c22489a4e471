package table

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/kevin-chtw/tw_table/mahjong"
	"github.com/sirupsen/logrus"
)

// Table 表示一个牌桌实例，持有本桌全部可变状态；
// 跨协程访问由持有它的比赛控制器串行化，这里只做本体加锁
type Table struct {
	id      string
	conf    *Config
	players []*Player
	tiles   *mahjong.TileSet
	dealer  *mahjong.Dealer
	marker  *mahjong.DealerMarker
	banker  int32
	mu      sync.Mutex
}

// NewTable 创建新牌桌并按配给原点发点棒，配置不合法直接拒绝
func NewTable(conf *Config) (*Table, error) {
	if err := conf.Check(); err != nil {
		return nil, err
	}

	t := &Table{
		id:      uuid.NewString(),
		conf:    conf,
		players: make([]*Player, mahjong.NP4),
		tiles:   mahjong.NewTileSet(),
		dealer:  mahjong.NewDealer(),
		marker:  mahjong.NewDealerMarker(),
		banker:  mahjong.SeatNull,
	}

	holdings := make([][]mahjong.StickCount, mahjong.NP4)
	for i := range t.players {
		sticks, err := mahjong.BuildInventory(conf.StartingScore, mahjong.StandardDenominations())
		if err != nil {
			return nil, err
		}
		t.players[i] = NewPlayer(int32(i), sticks)
		holdings[i] = sticks
	}
	if err := mahjong.ValidateConservation(holdings, conf.StartingScore); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"table": t.id,
		"mode":  conf.GameMode,
		"score": conf.StartingScore,
	}).Info("table created")
	return t, nil
}

// ID 建桌时固定，后续只读
func (t *Table) ID() string {
	return t.id
}

// Player 座位与玩家的绑定在建桌时固定，后续只读
func (t *Table) Player(seat int32) *Player {
	if seat < 0 || int(seat) >= len(t.players) {
		return nil
	}
	return t.players[seat]
}

// DetermineBanker 按定庄骰的座位偏移定起家
func (t *Table) DetermineBanker(dice mahjong.DiceResult) int32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.banker = dice.SeatOffset
	logrus.WithFields(logrus.Fields{
		"table":  t.id,
		"red":    dice.Red,
		"white":  dice.White,
		"banker": t.banker,
	}).Info("banker determined")
	return t.banker
}

func (t *Table) Banker() int32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.banker
}

// DealStart 洗墙配牌，庄家14张其余13张；开启自动理牌时配牌后立即理牌
func (t *Table) DealStart() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.banker == mahjong.SeatNull {
		return errors.New("banker not determined")
	}

	t.tiles.Reset()
	t.dealer.Initialize(t.tiles)
	hands := t.dealer.DealStart(t.banker, mahjong.NP4)
	for seat, hand := range hands {
		t.players[seat].setHand(hand)
		if t.conf.AutoSort {
			if err := t.players[seat].SortHand(t.conf.GroupOrderPolicy()); err != nil {
				return err
			}
		}
	}
	logrus.WithFields(logrus.Fields{
		"table":  t.id,
		"banker": t.banker,
		"rest":   t.dealer.RestCount(),
	}).Info("initial deal done")
	return nil
}

// Draw 座位摸一张牌，此时不理牌，理牌在回合动作结束后触发
func (t *Table) Draw(seat int32) (mahjong.Tile, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	p := t.Player(seat)
	if p == nil {
		return mahjong.TileNull, fmt.Errorf("no such seat %d", seat)
	}
	tile := t.dealer.DrawTile()
	if tile == mahjong.TileNull {
		return mahjong.TileNull, errors.New("tile wall empty")
	}
	p.addTile(tile)
	return tile, nil
}

// EndTurn 座位打出一张牌结束回合，开启自动理牌时随手理牌
func (t *Table) EndTurn(seat int32, discard mahjong.Tile) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	p := t.Player(seat)
	if p == nil {
		return fmt.Errorf("no such seat %d", seat)
	}
	if !p.removeTile(discard) {
		return fmt.Errorf("seat %d has no tile %s", seat, discard.Name())
	}
	p.outTiles = append(p.outTiles, discard)
	if t.conf.AutoSort {
		return p.SortHand(t.conf.GroupOrderPolicy())
	}
	return nil
}

// Marker 当前起家牌朝上的面
func (t *Table) Marker() mahjong.MarkerFace {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.marker.Face()
}

// AdvanceWindRound 东场进南场时由比赛控制器调用一次
func (t *Table) AdvanceWindRound() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.conf.GameMode == ModeEastOnly {
		return errors.New("east-only match has no south round")
	}
	if err := t.marker.Advance(); err != nil {
		return err
	}
	logrus.WithField("table", t.id).Info("wind round advanced to south")
	return nil
}

// ResetMatch 新比赛：起家牌翻回东面，庄位待重新定
func (t *Table) ResetMatch() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.marker.Reset()
	t.banker = mahjong.SeatNull
}

package mahjong

import "errors"

// MarkerFace 起家牌朝上的面
type MarkerFace int32

const (
	MarkerEastUp MarkerFace = iota
	MarkerSouthUp
)

func (f MarkerFace) String() string {
	switch f {
	case MarkerEastUp:
		return "east_up"
	case MarkerSouthUp:
		return "south_up"
	default:
		return ""
	}
}

// DealerMarker 起家牌：一场比赛中只在东入南时翻面一次
type DealerMarker struct {
	face MarkerFace
}

func NewDealerMarker() *DealerMarker {
	return &DealerMarker{face: MarkerEastUp}
}

func (m *DealerMarker) Face() MarkerFace {
	return m.face
}

// Advance 东场转南场时翻面，重复翻面为流程错误
func (m *DealerMarker) Advance() error {
	if m.face != MarkerEastUp {
		return errors.New("marker already flipped")
	}
	m.face = MarkerSouthUp
	return nil
}

// Reset 新比赛开始前回到东面
func (m *DealerMarker) Reset() {
	m.face = MarkerEastUp
}

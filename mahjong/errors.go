package mahjong

import "errors"

var (
	// ErrInvalidTileKind 未知牌种，属上游编程错误
	ErrInvalidTileKind = errors.New("invalid tile kind")
	// ErrExhaustedSupply 某种牌已取满4张
	ErrExhaustedSupply = errors.New("tile supply exhausted")
	// ErrUnrepresentableScore 点棒面额无法恰好凑出配给原点
	ErrUnrepresentableScore = errors.New("score not representable by denominations")
	// ErrInvalidDieValue 外部骰值不在[1,6]内
	ErrInvalidDieValue = errors.New("die value out of range")
)

package table

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/kevin-chtw/tw_table/mahjong"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// GameMode 牌局模式
type GameMode string

const (
	ModeEastOnly GameMode = "east_only" // 东风战
	ModeHalfGame GameMode = "half_game" // 半庄
	ModeFullGame GameMode = "full_game" // 全庄
)

const (
	GroupOrderFirstAppearance = "first_appearance"
	GroupOrderFixed           = "fixed"
)

type Config struct {
	GameMode      GameMode `mapstructure:"gameMode"`
	StartingScore int64    `mapstructure:"startingScore"`
	AutoSort      bool     `mapstructure:"autoSort"`
	GroupOrder    string   `mapstructure:"groupOrder"`
}

// NewConfig 各模式的默认配置，配给原点25000，自动理牌按花色出现先后分组
func NewConfig(mode GameMode) *Config {
	return &Config{
		GameMode:      mode,
		StartingScore: 25000,
		AutoSort:      true,
		GroupOrder:    GroupOrderFirstAppearance,
	}
}

// LoadConfig 加载配置并监听变更
func LoadConfig(confFile string) (*Config, error) {
	conf := new(Config)
	v := viper.New()
	v.SetConfigFile(confFile)
	v.WatchConfig()
	v.OnConfigChange(func(in fsnotify.Event) {
		if err := v.Unmarshal(conf); err != nil {
			logrus.Errorf("reload config: %v", err)
		}
	})
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := conf.Check(); err != nil {
		return nil, err
	}
	return conf, nil
}

// Check 开局前校验，不通过则禁止建桌
func (c *Config) Check() error {
	switch c.GameMode {
	case ModeEastOnly, ModeHalfGame, ModeFullGame:
	default:
		return fmt.Errorf("unknown game mode %q", c.GameMode)
	}
	switch c.GroupOrder {
	case GroupOrderFirstAppearance, GroupOrderFixed:
	default:
		return fmt.Errorf("unknown group order %q", c.GroupOrder)
	}
	if _, err := mahjong.BuildInventory(c.StartingScore, mahjong.StandardDenominations()); err != nil {
		return err
	}
	return nil
}

// GroupOrderPolicy 理牌组序策略
func (c *Config) GroupOrderPolicy() mahjong.GroupOrderPolicy {
	if c.GroupOrder == GroupOrderFixed {
		return mahjong.GroupOrderFixed
	}
	return mahjong.GroupOrderFirstAppearance
}

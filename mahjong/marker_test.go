package mahjong_test

import (
	"testing"

	"github.com/kevin-chtw/tw_table/mahjong"
)

func TestDealerMarker(t *testing.T) {
	m := mahjong.NewDealerMarker()
	if m.Face() != mahjong.MarkerEastUp {
		t.Fatalf("initial face = %v, want east_up", m.Face())
	}

	if err := m.Advance(); err != nil {
		t.Fatalf("first advance: %v", err)
	}
	if m.Face() != mahjong.MarkerSouthUp {
		t.Fatalf("face after advance = %v, want south_up", m.Face())
	}

	// 一场比赛内只允许翻一次面
	if err := m.Advance(); err == nil {
		t.Error("second advance should be rejected")
	}
	if m.Face() != mahjong.MarkerSouthUp {
		t.Errorf("face changed by rejected advance: %v", m.Face())
	}

	m.Reset()
	if m.Face() != mahjong.MarkerEastUp {
		t.Errorf("face after reset = %v, want east_up", m.Face())
	}
	if err := m.Advance(); err != nil {
		t.Errorf("advance after reset: %v", err)
	}
}

func TestMarkerFaceString(t *testing.T) {
	if mahjong.MarkerEastUp.String() != "east_up" || mahjong.MarkerSouthUp.String() != "south_up" {
		t.Error("unexpected face names")
	}
}

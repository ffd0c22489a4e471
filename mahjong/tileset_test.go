package mahjong_test

import (
	"errors"
	"testing"

	"github.com/kevin-chtw/tw_table/mahjong"
)

func TestTileSetFull(t *testing.T) {
	set := mahjong.NewTileSet()
	if got := set.Remaining(); got != mahjong.TileTotalCount {
		t.Fatalf("remaining = %d, want %d", got, mahjong.TileTotalCount)
	}
	for _, d := range mahjong.AllKinds() {
		if got := set.Count(d.Tile); got != 4 {
			t.Errorf("count(%s) = %d, want 4", d.Tile.Name(), got)
		}
	}
	if got := len(set.Tiles()); got != mahjong.TileTotalCount {
		t.Errorf("tiles len = %d, want %d", got, mahjong.TileTotalCount)
	}
}

func TestTileSetTake(t *testing.T) {
	set := mahjong.NewTileSet()
	tile := mahjong.NameToTile("5条")
	for i := 0; i < 4; i++ {
		if err := set.Take(tile); err != nil {
			t.Fatalf("take %d: %v", i+1, err)
		}
	}
	if err := set.Take(tile); !errors.Is(err, mahjong.ErrExhaustedSupply) {
		t.Errorf("5th take err = %v, want ErrExhaustedSupply", err)
	}
	if err := set.Take(mahjong.TileInf); !errors.Is(err, mahjong.ErrInvalidTileKind) {
		t.Errorf("invalid take err = %v, want ErrInvalidTileKind", err)
	}

	set.Reset()
	if got := set.Count(tile); got != 4 {
		t.Errorf("count after reset = %d, want 4", got)
	}
}

func TestDealerInitialize(t *testing.T) {
	dealer := mahjong.NewDealer()
	dealer.Initialize(mahjong.NewTileSet())
	if got := dealer.RestCount(); got != mahjong.TileTotalCount-mahjong.DeadWallSize {
		t.Fatalf("rest = %d, want %d", got, mahjong.TileTotalCount-mahjong.DeadWallSize)
	}
	if got := len(dealer.DoraIndicators()); got != 1 {
		t.Errorf("dora indicators = %d, want 1", got)
	}
}

func TestDealerDealStart(t *testing.T) {
	banker := int32(2)
	dealer := mahjong.NewDealer()
	dealer.Initialize(mahjong.NewTileSet())
	hands := dealer.DealStart(banker, mahjong.NP4)

	if len(hands) != mahjong.NP4 {
		t.Fatalf("hands = %d, want %d", len(hands), mahjong.NP4)
	}
	counts := map[mahjong.Tile]int{}
	dealt := 0
	for seat, hand := range hands {
		want := mahjong.TileCountInitNormal
		if int32(seat) == banker {
			want = mahjong.TileCountInitBanker
		}
		if len(hand) != want {
			t.Errorf("seat %d hand = %d tiles, want %d", seat, len(hand), want)
		}
		dealt += len(hand)
		for _, tile := range hand {
			if !tile.IsValid() {
				t.Fatalf("seat %d dealt invalid tile %v", seat, tile)
			}
			counts[tile]++
		}
	}
	for tile, n := range counts {
		if n > 4 {
			t.Errorf("%s dealt %d times", tile.Name(), n)
		}
	}
	wantRest := mahjong.TileTotalCount - mahjong.DeadWallSize - int32(dealt)
	if got := dealer.RestCount(); got != wantRest {
		t.Errorf("rest = %d, want %d", got, wantRest)
	}
}

func TestDealerDrawExhausted(t *testing.T) {
	dealer := mahjong.NewDealer()
	dealer.Initialize(mahjong.NewTileSet())
	for rest, n := dealer.RestCount(), int32(0); n < rest; n++ {
		if tile := dealer.DrawTile(); tile == mahjong.TileNull {
			t.Fatal("wall ran out early")
		}
	}
	if tile := dealer.DrawTile(); tile != mahjong.TileNull {
		t.Errorf("draw from empty wall = %s", tile.Name())
	}
}

func TestDealerDealShortWall(t *testing.T) {
	dealer := mahjong.NewDealer()
	if got := dealer.Deal(4); len(got) != 0 {
		t.Fatalf("deal from empty wall = %d tiles", len(got))
	}

	dealer.Initialize(mahjong.NewTileSet())
	rest := int(dealer.RestCount())
	dealer.Deal(rest - 2)
	if got := dealer.Deal(4); len(got) != 2 {
		t.Errorf("deal past wall end = %d tiles, want 2", len(got))
	}
	if got := dealer.RestCount(); got != 0 {
		t.Errorf("rest = %d after draining", got)
	}
}

func TestDealerKongDora(t *testing.T) {
	dealer := mahjong.NewDealer()
	dealer.Initialize(mahjong.NewTileSet())
	for i := 0; i < 4; i++ {
		if err := dealer.RevealKongDora(); err != nil {
			t.Fatalf("reveal %d: %v", i+2, err)
		}
	}
	if err := dealer.RevealKongDora(); err == nil {
		t.Error("6th indicator should be rejected")
	}
	if got := len(dealer.DoraIndicators()); got != 5 {
		t.Errorf("indicators = %d, want 5", got)
	}
}

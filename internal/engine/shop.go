package engine

import "time"

// Item is a purchasable boost. Items with a duration spawn an Effect; the
// effect gets a fresh ID per purchase so repeated buys coexist.
type Item struct {
	ID       string
	Name     string
	Icon     string
	Price    int
	Kind     EffectKind
	Value    int
	Duration time.Duration
}

// Catalog is the fixed shop inventory.
func Catalog() []Item {
	return []Item{
		{ID: "boost_x2", Name: "Double Count", Icon: "⚡", Price: 100, Kind: EffectMultiplier, Value: 2, Duration: 5 * time.Minute},
		{ID: "boost_x3", Name: "Triple Count", Icon: "🔥", Price: 250, Kind: EffectMultiplier, Value: 3, Duration: 2 * time.Minute},
		{ID: "auto_1", Name: "Auto Counter", Icon: "🤖", Price: 150, Kind: EffectAutoTap, Value: 1, Duration: time.Minute},
		{ID: "auto_5", Name: "Turbo Counter", Icon: "🚀", Price: 400, Kind: EffectAutoTap, Value: 5, Duration: 30 * time.Second},
	}
}

func FindItem(id string) (Item, bool) {
	for _, it := range Catalog() {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

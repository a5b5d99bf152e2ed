package engine

import (
	"errors"
	"fmt"
)

// ErrNotLoaded is returned when a mutation runs before Load.
var ErrNotLoaded = errors.New("state not loaded")

// ErrRewardAlreadyClaimed is returned for a second claim on the same day.
var ErrRewardAlreadyClaimed = errors.New("daily reward already claimed today")

// InsufficientFundsError rejects a purchase the balance cannot cover. The
// purchase leaves no trace: balance, effects and quests are all untouched.
type InsufficientFundsError struct {
	ItemID  string
	Price   int
	Balance int
}

func (e InsufficientFundsError) Error() string {
	return fmt.Sprintf("not enough balance for %q (price %d, balance %d)", e.ItemID, e.Price, e.Balance)
}

// UnknownItemError rejects a purchase of an item not in the catalog.
type UnknownItemError struct {
	ItemID string
}

func (e UnknownItemError) Error() string {
	return fmt.Sprintf("unknown shop item %q", e.ItemID)
}

// ImportError rejects an import document that fails validation. The
// in-memory state is left unchanged.
type ImportError struct {
	Reason string
}

func (e ImportError) Error() string {
	return "invalid import: " + e.Reason
}

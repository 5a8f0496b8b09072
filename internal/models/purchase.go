package models

// Purchase accumulates, per (user, vinyl) pair, the quantity bought and the
// money spent. MoneySpent is recomputed from the current price for the whole
// accumulated amount on every purchase, so a later price change rewrites the
// historical total as well. That mirrors the documented ledger behavior and
// is pinned by tests; switch to additive accumulation deliberately if ever.
type Purchase struct {
	UserID     uint    `json:"userId" gorm:"primaryKey;autoIncrement:false"`
	VinylID    uint    `json:"vinylId" gorm:"primaryKey;autoIncrement:false"`
	Amount     int     `json:"amount" gorm:"not null"`
	MoneySpent float64 `json:"moneySpent" gorm:"not null"`
	User       *User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Vinyl      *Vinyl  `json:"vinyl,omitempty" gorm:"foreignKey:VinylID"`
}

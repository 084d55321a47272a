package entity

import "time"

// CartEntry savatdagi bitta e'lon va uning miqdori
type CartEntry struct {
	CatalogItem
	Quantity int `json:"quantity"`
}

// CartSummary savatning ko'rsatish uchun yig'indisi
type CartSummary struct {
	Entries      int
	Quantity     int
	DepositCents int64
	TotalCents   int64
}

// Reservation muvaffaqiyatli checkout natijasi
type Reservation struct {
	ID        string
	Titles    []string
	Quantity  int
	CreatedAt time.Time
}

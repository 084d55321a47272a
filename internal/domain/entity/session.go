package entity

import "time"

// Session tizimga kirgan foydalanuvchi yozuvi
type Session struct {
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Location string    `json:"location,omitempty"`
	Joined   time.Time `json:"joined"`
}

// Stats hamjamiyat hisoblagichlari
type Stats struct {
	Members   int `json:"members"`
	Items     int `json:"items"`
	Exchanges int `json:"exchanges"`
}

// DefaultStats bosh sahifadagi boshlang'ich qiymatlar
func DefaultStats() Stats {
	return Stats{Members: 1250, Items: 543, Exchanges: 289}
}

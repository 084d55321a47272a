package usecase

import (
	"fmt"

	"github.com/yourusername/ecoswap-market/internal/domain/entity"
)

// Project savat yozuvlaridan ko'rsatish uchun yig'indi.
// Katalogda faqat narx yorlig'i bor, shuning uchun pul qiymatlari doim 0.
func Project(entries []entity.CartEntry) entity.CartSummary {
	summary := entity.CartSummary{Entries: len(entries)}
	for _, e := range entries {
		summary.Quantity += e.Quantity
	}
	return summary
}

// FormatCents sentlarni "$12" yoki "$12.50" ko'rinishida chiqarish
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	if cents%100 == 0 {
		return fmt.Sprintf("%s$%d", sign, cents/100)
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

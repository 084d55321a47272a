package entity

import "strings"

// Category e'lon kategoriyasi
type Category string

const (
	CategoryTools       Category = "tools"
	CategoryBooks       Category = "books"
	CategoryClothes     Category = "clothes"
	CategoryElectronics Category = "electronics"
	CategoryOther       Category = "other"
)

// CategoryAll filtrda barcha kategoriyalarni bildiradi
const CategoryAll = "all"

var categoryNames = map[Category]string{
	CategoryTools:       "Tools",
	CategoryBooks:       "Books",
	CategoryClothes:     "Clothing",
	CategoryElectronics: "Electronics",
	CategoryOther:       "Other",
}

// Categories barcha ma'lum kategoriyalar (ko'rsatish tartibida)
func Categories() []Category {
	return []Category{CategoryTools, CategoryBooks, CategoryClothes, CategoryElectronics, CategoryOther}
}

// DisplayName foydalanuvchiga ko'rinadigan nom. Noma'lum kategoriya o'z qiymati bilan qaytadi.
func (c Category) DisplayName() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return string(c)
}

// Valid kategoriya ma'lum ekanligini tekshirish
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// ParseCategory matndan kategoriya olish
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	return c, c.Valid()
}

// CatalogItem katalogdagi e'lon (o'zgarmas)
type CatalogItem struct {
	ID          int      `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Category    Category `json:"category" yaml:"category"`
	Description string   `json:"description" yaml:"description"`
	Price       string   `json:"price" yaml:"price"` // "Free", "For Exchange", "For Rent"
	Location    string   `json:"location" yaml:"location"`
	Icon        string   `json:"icon" yaml:"icon"`
	Badge       string   `json:"badge,omitempty" yaml:"badge,omitempty"`
}

// HasBadge e'londa belgi borligini tekshirish
func (i CatalogItem) HasBadge() bool {
	return i.Badge != ""
}

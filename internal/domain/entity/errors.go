package entity

import "errors"

var (
	// ErrNotFound e'lon katalogda yoki savatda topilmadi
	ErrNotFound = errors.New("item not found")

	// ErrEmptyCart bo'sh savat bilan checkout
	ErrEmptyCart = errors.New("cart is empty")

	// ErrUnauthenticated sessiyasiz checkout
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrValidation foydalanuvchi kiritgan ma'lumot noto'g'ri
	ErrValidation = errors.New("validation failed")
)

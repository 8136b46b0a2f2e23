// Package models содержит доменные модели приложения.
package models

import "time"

// Item описывает товар каталога. Поля name, description и price
// могут независимо отсутствовать (NULL в БД).
type Item struct {
	ID          int64     `json:"id"`
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ItemForm описывает частичный ввод для создания и обновления товара.
// nil означает, что поле не передано и не должно изменяться.
type ItemForm struct {
	Name        *string  `json:"name" validate:"omitnil,min=1,max=225"`
	Description *string  `json:"description" validate:"omitnil,max=225"`
	Price       *float64 `json:"price" validate:"omitnil,gte=0"`
}

// IsEmpty сообщает, что форма не содержит ни одного поля.
func (f *ItemForm) IsEmpty() bool {
	return f.Name == nil && f.Description == nil && f.Price == nil
}

package repo

import "errors"

// Ошибки уровня хранилища. Сервисы и хендлеры матчат их через errors.Is.
var (
	// ErrNotFound — по id нет строки в ожидаемом состоянии
	// (живой для softDelete, удалённой для restore).
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidState — операция нарушает предусловие live/trashed,
	// например permanent delete живой строки.
	ErrInvalidState = errors.New("entity in invalid state for operation")
)

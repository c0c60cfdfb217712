package repository

import "errors"

// ErrNotFound строка для обновления не найдена
var ErrNotFound = errors.New("not found")

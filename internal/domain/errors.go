package domain

import "errors"

// ErrUserNotFound пользователь отсутствует в БД
var ErrUserNotFound = errors.New("user not found")

// ErrInsufficientCredits баланса не хватает на списание
var ErrInsufficientCredits = errors.New("insufficient credits")

// BusinessError ошибка бизнес-логики, которая уже залогирована в UseCase
type BusinessError struct {
	Err error
}

func (e *BusinessError) Error() string {
	return e.Err.Error()
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func WrapBusinessError(err error) error {
	if err == nil {
		return nil
	}
	return &BusinessError{Err: err}
}

func IsBusinessError(err error) bool {
	var businessErr *BusinessError
	return errors.As(err, &businessErr)
}

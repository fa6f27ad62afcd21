package service

import (
	"clubhub/app_error"
	"errors"

	"gorm.io/gorm"
)

func notFoundOrStorage(err error, resource string, id any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return app_error.NotFound(resource, id)
	}
	return app_error.Storage(err)
}

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrEntryNotFound = errors.New("entry not found")
	ErrIncorrectKey  = errors.New("incorrect decryption key")
)

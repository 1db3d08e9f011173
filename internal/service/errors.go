package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrNoUserID   = errors.New("no user id given")
	ErrNoRecordID = errors.New("no record id given")
	ErrEmptyPatch = errors.New("record patch changes nothing")
)

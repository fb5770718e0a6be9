package io

import (
	"errors"

	"github.com/ezrec/lisc/translate"
)

var f = translate.From

var (
	// Image errors
	ErrRomPartial = errors.New(f("rom has a partial word"))
	ErrRomSize    = errors.New(f("rom exceeds program store"))
)

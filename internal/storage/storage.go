package storage

import (
	"errors"
	"fmt"
	"strings"
)

// MenuBucket is the logical bucket menu files are written to.
const MenuBucket = "menus"

var (
	// ErrDuplicatePath is returned when a write would replace an existing object.
	ErrDuplicatePath = errors.New("object already exists at path")

	// ErrObjectNotFound is returned when signing a key that does not exist.
	ErrObjectNotFound = errors.New("object not found")
)

func objectName(bucket, key string) string {
	return fmt.Sprintf("%s/%s", bucket, strings.TrimPrefix(key, "/"))
}

package files

import (
	"context"
	"errors"
	"io/fs"
)

var (
	ErrIsADirectory = errors.New("is a directory")
	ErrCancelled    = errors.New("cancelled")
)

// ErrorKind groups filesystem and prompt errors by how they are reported.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNotFound
	KindAlreadyExists
	KindIsADirectory
	KindPermissionDenied
	KindCancelled
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindAlreadyExists:
		return "already exists"
	case KindIsADirectory:
		return "is a directory"
	case KindPermissionDenied:
		return "permission denied"
	case KindCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// KindOf classifies err. A nil error is KindUnknown.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrCancelled), errors.Is(err, context.Canceled):
		return KindCancelled
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrExist):
		return KindAlreadyExists
	case errors.Is(err, ErrIsADirectory):
		return KindIsADirectory
	case errors.Is(err, fs.ErrPermission):
		return KindPermissionDenied
	default:
		return KindUnknown
	}
}

// IsCancelled reports whether err means the user dismissed a prompt.
func IsCancelled(err error) bool {
	return KindOf(err) == KindCancelled
}

//go:build !unix

package kvstore

import "os"

// lockFile is a no-op where advisory locks are unavailable
func lockFile(file *os.File) error { return nil }

func unlockFile(file *os.File) error { return nil }

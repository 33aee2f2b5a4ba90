// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/hex"
	"hash"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// hasherPool is a package-level pool of reusable BLAKE2b-256 hash instances.
var hasherPool = sync.Pool{
	New: func() any {
		// unkeyed New256 never fails
		h, _ := blake2b.New256(nil)
		return h
	},
}

// Revision returns the hex-encoded BLAKE2b-256 digest of a persisted
// snapshot. It is used as the ETag compared on every conditional write.
//
// An absent snapshot (nil data) has the empty revision "".
//
// Example usage:
//
//	rev := utils.Revision(payload)
func Revision(data []byte) string {
	if data == nil {
		return ""
	}

	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return hex.EncodeToString(sum)
}

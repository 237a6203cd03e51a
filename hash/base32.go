// Copyright 2016 The Noms Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

// Package hash provides the short, URL-safe text encoding used to print
// binary digests (schema fingerprints) in logs and on the command line.
package hash

import "encoding/base32"

var encoding = base32.NewEncoding("0123456789abcdefghijklmnopqrstuv").WithPadding(base32.NoPadding)

// Encode renders data as lowercase base32, unpadded.
func Encode(data []byte) string {
	return encoding.EncodeToString(data)
}

// Decode reverses Encode.
func Decode(s string) ([]byte, error) {
	return encoding.DecodeString(s)
}

package core

import (
	"bytes"
	"hash"
)

type HashVerifier struct {
	hash.Hash
}

func NewHashVerifier(inner hash.Hash) *HashVerifier {
	return &HashVerifier{Hash: inner}
}

func (this *HashVerifier) Update(data []byte) {
	_, _ = this.Hash.Write(data)
}

func (this *HashVerifier) SumMatches(expected []byte) bool {
	return bytes.Equal(this.Hash.Sum(nil), expected)
}

package core

import "github.com/haitrungle/cargo-binstall/contracts"

type CompoundVerifier struct {
	inners []contracts.DataVerifier
}

func NewCompoundVerifier(inners ...contracts.DataVerifier) *CompoundVerifier {
	return &CompoundVerifier{inners: inners}
}

func (this *CompoundVerifier) Update(data []byte) {
	for _, inner := range this.inners {
		inner.Update(data)
	}
}

package contracts

// DataVerifier observes every downloaded chunk in arrival order. It must not
// retain the slice it is handed.
type DataVerifier interface {
	Update(data []byte)
}

type VerifierFunc func(data []byte)

func (this VerifierFunc) Update(data []byte) { this(data) }

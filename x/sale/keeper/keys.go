package keeper

var (
	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x01}

	// PausedKey is the key for the sale pause flag
	PausedKey = []byte{0x02}
)

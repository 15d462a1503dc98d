package keeper

var (
	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x01}
)

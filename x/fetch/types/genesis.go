package types

// GenesisState defines the fetch module's genesis state.
type GenesisState struct {
	Params Params `json:"params"`
}

// DefaultGenesis returns the default genesis state for the fetch module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	return gs.Params.Validate()
}

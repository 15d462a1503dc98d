package types

// GenesisState defines the sale module's genesis state.
type GenesisState struct {
	Params Params `json:"params"`
	Paused bool   `json:"paused"`
}

// DefaultGenesis returns the default genesis state for the sale module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
		Paused: false,
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	return gs.Params.Validate()
}

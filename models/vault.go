package models

// VaultStatus tells a front end whether a master key has been set.
type VaultStatus struct {
	Initialized bool `json:"initialized"`
}

// MasterKeyRequest carries a master key over the wire.
//
// The field is a plain string so the client can serialise it; handlers
// convert it to [MasterKey] immediately and never log the request.
type MasterKeyRequest struct {
	MasterKey string `json:"master_key"`
}

package model

// Chain names an EVM network the adapter can talk to.
type Chain string

const (
	Ethereum Chain = "ethereum"
	Polygon  Chain = "polygon"
	Sepolia  Chain = "sepolia"
)

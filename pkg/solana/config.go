package solana

// Environment is the RPC endpoint of a Solana cluster.
type Environment string

const (
	EnvironmentDevnet  Environment = "https://api.devnet.solana.com"
	EnvironmentTestnet Environment = "https://api.testnet.solana.com"
	EnvironmentMainnet Environment = "https://api.mainnet-beta.solana.com"
)

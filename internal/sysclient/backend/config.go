package backend

import "time"

const (
	KindBlockset = "blockset"
	KindNode     = "node"
	KindExplorer = "explorer"
)

// Config selects and configures one system client backend.
type Config struct {
	Kind                    string        `long:"backend" env:"SYSCLIENT_BACKEND" description:"backend kind" choice:"blockset" choice:"node" choice:"explorer" default:"blockset"`
	URL                     string        `long:"backend-url" env:"SYSCLIENT_BACKEND_URL" description:"backend base URL" required:"true"`
	Token                   string        `long:"backend-token" env:"SYSCLIENT_BACKEND_TOKEN" description:"bearer token for the indexed service"`
	RPCUser                 string        `long:"rpc-user" env:"SYSCLIENT_RPC_USER" description:"node RPC username"`
	RPCPassword             string        `long:"rpc-password" env:"SYSCLIENT_RPC_PASSWORD" description:"node RPC password"`
	BlockchainID            string        `long:"blockchain-id" env:"SYSCLIENT_BLOCKCHAIN_ID" description:"blockchain served by node and explorer backends"`
	Network                 string        `long:"network" env:"SYSCLIENT_NETWORK" description:"bitcoin network for address decoding" default:"main"`
	ConfirmationsUntilFinal uint32        `long:"confirmations-until-final" env:"SYSCLIENT_CONFIRMATIONS_UNTIL_FINAL" description:"confirmations before a block is final" default:"6"`
	Capabilities            string        `long:"capabilities" env:"SYSCLIENT_CAPABILITIES" description:"backend capability version (none, v2020-03-21)" default:"v2020-03-21"`
	RPS                     int           `long:"rps" env:"SYSCLIENT_RPS" description:"max requests per second, 0 for unlimited" default:"0"`
	Workers                 int           `long:"workers" env:"SYSCLIENT_WORKERS" description:"parallel transaction lookups" default:"4"`
	HTTPTimeout             time.Duration `long:"http-timeout" env:"SYSCLIENT_HTTP_TIMEOUT" description:"HTTP timeout for backend requests" default:"30s"`
}

package utils

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/robfig/cron"
)

// PersisterType is the type of persister to use.
type PersisterType int

const (
	// PersisterTypeInvalid is an invalid persister value
	PersisterTypeInvalid PersisterType = iota

	// PersisterTypeNone is a persister that does nothing but return default values
	PersisterTypeNone

	// PersisterTypePostgresql is a persister that uses PostgreSQL as the backend
	PersisterTypePostgresql
)

var (
	// PersisterNameToType maps valid persister names to the types above
	PersisterNameToType = map[string]PersisterType{
		"none":       PersisterTypeNone,
		"postgresql": PersisterTypePostgresql,
	}
)

const (
	envVarPrefix = "favor"

	usageListFormat = `The billboard is configured via environment vars. The following environment variables can be used:
{{range .}}
{{usage_key .}}
  description: {{usage_description .}}
  type:        {{usage_type .}}
  default:     {{usage_default .}}
  required:    {{usage_required .}}
{{end}}
`
)

// NOTE: After envconfig populates FavorConfig with the environment vars,
// there is nothing preventing the FavorConfig fields from being mutated.

// FavorConfig is the master config for the billboard derived from environment
// variables.
type FavorConfig struct {
	EthAPIURL       string `envconfig:"eth_api_url" required:"true" desc:"Ethereum API address"`
	ContractAddress string `split_words:"true" required:"true" desc:"Address of the FavorExchange contract"`
	UserAddress     string `split_words:"true" desc:"Address of the local user, favors are projected for this user"`
	PrivateKey      string `split_words:"true" desc:"Hex private key of the local user, needed to send transactions"`

	RefreshCronConfig   string  `split_words:"true" default:"*/5 * * * *" desc:"Cron config string * * * * * for the full billboard refresh"`
	MaxListHops         int     `split_words:"true" default:"10000" desc:"Max number of favors visited by a refresh"`
	RPCCallsPerSec      float64 `envconfig:"rpc_calls_per_sec" default:"0" desc:"Max contract calls per second during a refresh, 0 is unlimited"`
	NameCacheExpirySecs int     `split_words:"true" default:"600" desc:"Seconds a resolved user name is cached"`

	PersisterType            PersisterType `ignored:"true"`
	PersisterTypeName        string        `split_words:"true" default:"none" desc:"Sets the persister type to use"`
	PersisterPostgresAddress string        `split_words:"true" desc:"If persister type is Postgresql, sets the address"`
	PersisterPostgresPort    int           `split_words:"true" desc:"If persister type is Postgresql, sets the port"`
	PersisterPostgresDbname  string        `split_words:"true" desc:"If persister type is Postgresql, sets the database name"`
	PersisterPostgresUser    string        `split_words:"true" desc:"If persister type is Postgresql, sets the database user"`
	PersisterPostgresPw      string        `split_words:"true" desc:"If persister type is Postgresql, sets the database password"`

	PubSubProjectID       string `envconfig:"pub_sub_project_id" desc:"Sets GPubSub project ID. If not set, will not publish favor changes."`
	PubSubTopicName       string `split_words:"true" desc:"Sets GPubSub topic name"`
	PubSubCredentialsFile string `split_words:"true" desc:"Path to a GCP credentials file, uses default credentials if not set"`
}

// OutputUsage prints the usage string to os.Stdout
func (c *FavorConfig) OutputUsage() {
	tabs := tabwriter.NewWriter(os.Stdout, 1, 0, 4, ' ', 0)
	_ = envconfig.Usagef(envVarPrefix, c, tabs, usageListFormat) // nolint: gosec
	_ = tabs.Flush()                                             // nolint: gosec
}

// PopulateFromEnv processes the environment vars, populates FavorConfig
// with the respective values, and validates the values.
func (c *FavorConfig) PopulateFromEnv() error {
	err := envconfig.Process(envVarPrefix, c)
	if err != nil {
		return err
	}
	return c.Validate()
}

// Validate validates the config values and populates the derived fields
func (c *FavorConfig) Validate() error {
	err := c.validateCronConfig()
	if err != nil {
		return err
	}

	err = c.validateAPIURL()
	if err != nil {
		return err
	}

	err = c.validateAddresses()
	if err != nil {
		return err
	}

	err = c.validatePrivateKey()
	if err != nil {
		return err
	}

	if c.MaxListHops <= 0 {
		return errors.Errorf("Invalid max list hops: %v", c.MaxListHops)
	}
	if c.RPCCallsPerSec < 0 {
		return errors.Errorf("Invalid rpc calls per sec: %v", c.RPCCallsPerSec)
	}

	err = c.validatePubSub()
	if err != nil {
		return err
	}

	err = c.populatePersisterType()
	if err != nil {
		return err
	}

	return c.validatePersister()
}

// ContractAddressHex returns the contract address as a common.Address
func (c *FavorConfig) ContractAddressHex() common.Address {
	return common.HexToAddress(c.ContractAddress)
}

// UserAddressHex returns the user address as a common.Address
func (c *FavorConfig) UserAddressHex() common.Address {
	return common.HexToAddress(c.UserAddress)
}

// NameCacheExpiry returns the name cache expiry as a duration
func (c *FavorConfig) NameCacheExpiry() time.Duration {
	return time.Duration(c.NameCacheExpirySecs) * time.Second
}

// PubSubEnabled returns true if favor changes should be published
func (c *FavorConfig) PubSubEnabled() bool {
	return c.PubSubProjectID != ""
}

// RefreshSchedule parses a 5 field cron spec into a schedule
func RefreshSchedule(spec string) (cron.Schedule, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	return parser.Parse(spec)
}

func (c *FavorConfig) validateCronConfig() error {
	_, err := RefreshSchedule(c.RefreshCronConfig)
	if err != nil {
		return errors.Errorf("Invalid cron config: '%v'", c.RefreshCronConfig)
	}
	return nil
}

func (c *FavorConfig) validateAPIURL() error {
	if c.EthAPIURL == "" || !IsValidEthAPIURL(c.EthAPIURL) {
		return errors.Errorf("Invalid eth API URL: '%v'", c.EthAPIURL)
	}
	return nil
}

func (c *FavorConfig) validateAddresses() error {
	if !common.IsHexAddress(c.ContractAddress) {
		return errors.Errorf("Invalid contract address: '%v'", c.ContractAddress)
	}
	if c.UserAddress != "" && !common.IsHexAddress(c.UserAddress) {
		return errors.Errorf("Invalid user address: '%v'", c.UserAddress)
	}
	return nil
}

func (c *FavorConfig) validatePrivateKey() error {
	if c.PrivateKey == "" {
		return nil
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(c.PrivateKey, "0x"))
	if err != nil {
		return errors.New("Invalid private key")
	}
	keyAddress := crypto.PubkeyToAddress(key.PublicKey)
	if c.UserAddress == "" {
		c.UserAddress = keyAddress.Hex()
	} else if c.UserAddressHex() != keyAddress {
		return errors.Errorf("Private key does not belong to user address %v", c.UserAddress)
	}
	return nil
}

func (c *FavorConfig) validatePubSub() error {
	if c.PubSubProjectID != "" && c.PubSubTopicName == "" {
		return errors.New("PubSub topic name required")
	}
	return nil
}

func (c *FavorConfig) validatePersister() error {
	var err error
	if c.PersisterType == PersisterTypePostgresql {
		err = c.validatePostgresqlPersister()
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *FavorConfig) validatePostgresqlPersister() error {
	if c.PersisterPostgresAddress == "" {
		return errors.New("Postgresql address required")
	}
	if c.PersisterPostgresPort == 0 {
		return errors.New("Postgresql port required")
	}
	if c.PersisterPostgresDbname == "" {
		return errors.New("Postgresql db name required")
	}
	return nil
}

func (c *FavorConfig) populatePersisterType() error {
	var err error
	c.PersisterType, err = PersisterTypeFromName(c.PersisterTypeName)
	return err
}

// PersisterTypeFromName returns the correct persisterType from the string name
func PersisterTypeFromName(typeStr string) (PersisterType, error) {
	pType, ok := PersisterNameToType[typeStr]
	if !ok {
		validNames := make([]string, len(PersisterNameToType))
		index := 0
		for name := range PersisterNameToType {
			validNames[index] = name
			index++
		}
		return PersisterTypeInvalid,
			fmt.Errorf("Invalid persister value: %v; valid types %v", typeStr, validNames)
	}
	return pType, nil
}

// IsValidEthAPIURL returns true if the URL can be dialed by ethclient: http,
// https, ws and wss URLs or a path to an IPC socket
func IsValidEthAPIURL(apiURL string) bool {
	if strings.HasSuffix(apiURL, ".ipc") {
		return true
	}
	u, err := url.Parse(apiURL)
	if err != nil || u.Host == "" {
		return false
	}
	switch u.Scheme {
	case "http", "https", "ws", "wss":
		return true
	}
	return false
}

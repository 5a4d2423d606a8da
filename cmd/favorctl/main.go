package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	log "github.com/golang/glog"
	"github.com/urfave/cli"

	"github.com/favorexchange/favor-billboard/pkg/actions"
	"github.com/favorexchange/favor-billboard/pkg/contract"
	"github.com/favorexchange/favor-billboard/pkg/helpers"
	"github.com/favorexchange/favor-billboard/pkg/utils"
)

type metadata struct {
	config   *utils.FavorConfig
	client   *ethclient.Client
	exchange *contract.FavorExchange
	timeout  time.Duration
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero"

// global flags that override the environment
var envFlags = map[string]string{
	"eth-api-url": "FAVOR_ETH_API_URL",
	"contract":    "FAVOR_CONTRACT_ADDRESS",
	"user":        "FAVOR_USER_ADDRESS",
	"private-key": "FAVOR_PRIVATE_KEY",
}

func main() {
	// glog registers its flags on the default set
	flag.CommandLine.Parse([]string{}) // nolint: errcheck
	defer log.Flush()

	app := newApp()
	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err) // nolint: errcheck
		log.Flush()
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "favorctl"
	app.Usage = "browse and act on the favor exchange billboard"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "eth-api-url, e",
			Usage: " ethereum API `URL` [FAVOR_ETH_API_URL]",
		},
		cli.StringFlag{
			Name:  "contract, c",
			Usage: " favor exchange contract `ADDRESS` [FAVOR_CONTRACT_ADDRESS]",
		},
		cli.StringFlag{
			Name:  "user, u",
			Usage: " local user `ADDRESS` [FAVOR_USER_ADDRESS]",
		},
		cli.StringFlag{
			Name:  "private-key, k",
			Usage: " hex private `KEY` to sign transactions [FAVOR_PRIVATE_KEY]",
		},
		cli.DurationFlag{
			Name:  "timeout, t",
			Value: time.Minute,
			Usage: " timeout of a command `DURATION`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "billboard",
			Usage:  "refresh and show the favors of the billboard",
			Action: runBillboard,
		},
		{
			Name:      "favor",
			Usage:     "show a single favor",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Usage: "*favor `ID`",
				},
				cli.BoolFlag{
					Name:  "dump, d",
					Usage: " dump the raw favor value",
				},
			},
			Action: runFavor,
		},
		{
			Name:      "user",
			Usage:     "show the profile and balance of a user",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Usage: " user `ADDRESS` default is the local user",
				},
			},
			Action: runUser,
		},
		{
			Name:      "register",
			Usage:     "set the profile of the local user",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Usage: "*display `NAME`",
				},
				cli.StringFlag{
					Name:  "public-key, p",
					Usage: "*public `KEY`",
				},
				cli.StringFlag{
					Name:  "contact, c",
					Usage: "*contact `INFO`",
				},
			},
			Action: runRegister,
		},
		{
			Name:      "create",
			Usage:     "create a new favor request or offer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "kind, k",
					Value: "request",
					Usage: " favor `KIND` [request|offer]",
				},
				cli.StringFlag{
					Name:  "cost, c",
					Usage: "*cost in tokens `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "title, t",
					Usage: "*title `STRING`",
				},
				cli.StringFlag{
					Name:  "location, l",
					Usage: "*location `STRING`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Usage: "*description `STRING`",
				},
				cli.IntFlag{
					Name:  "category, g",
					Usage: "*category `NUMBER`, see the categories command",
				},
			},
			Action: runCreate,
		},
		{
			Name:   "mine",
			Usage:  "show the favors of the local user from the postgres mirror",
			Action: runMine,
		},
		{
			Name:   "categories",
			Usage:  "list the favor categories",
			Action: runCategories,
		},
		{
			Name:      "accept",
			Usage:     "accept an open favor",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Usage: "*favor `ID`",
				},
			},
			Action: runAccept,
		},
		{
			Name:      "vote-cancel",
			Usage:     "vote to cancel a matched favor",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Usage: "*favor `ID`",
				},
			},
			Action: runVoteCancel,
		},
		{
			Name:      "vote-done",
			Usage:     "vote that a matched favor is done",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Usage: "*favor `ID`",
				},
			},
			Action: runVoteDone,
		},
		{
			Name:      "transfer",
			Usage:     "transfer tokens to another user",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "receiver, r",
					Usage: "*receiving `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "amount, a",
					Usage: "*token `AMOUNT`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "buy",
			Usage:     "buy tokens with ether on a demo deployment",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "wei, w",
					Usage: "*ether to spend in wei `AMOUNT`",
				},
			},
			Action: runBuy,
		},
		{
			Name:   "supply",
			Usage:  "show the total token supply",
			Action: runSupply,
		},
		{
			Name:      "history",
			Usage:     "list past contract events",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "from, f",
					Value: 0,
					Usage: " first `BLOCK`",
				},
				cli.Uint64Flag{
					Name:  "to, t",
					Value: 0,
					Usage: " last `BLOCK`, 0 is the latest block",
				},
			},
			Action: runHistory,
		},
	}

	// the config is read and the node dialed by the commands that need them
	app.Before = func(c *cli.Context) error {
		for name, envVar := range envFlags {
			if value := c.GlobalString(name); value != "" {
				os.Setenv(envVar, value) // nolint: errcheck
			}
		}
		c.App.Metadata["config"] = &metadata{
			timeout: c.GlobalDuration("timeout"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if ok && m.client != nil {
			m.client.Close()
		}
		return nil
	}
	return app
}

// loadConfig reads the config from the environment on first use
func (m *metadata) loadConfig() (*utils.FavorConfig, error) {
	if m.config != nil {
		return m.config, nil
	}
	config := &utils.FavorConfig{}
	err := config.PopulateFromEnv()
	if err != nil {
		config.OutputUsage()
		return nil, err
	}
	m.config = config
	return config, nil
}

// connect dials the node on first use
func (m *metadata) connect() error {
	if m.exchange != nil {
		return nil
	}
	config, err := m.loadConfig()
	if err != nil {
		return err
	}
	client, exchange, err := helpers.FavorExchange(config)
	if err != nil {
		return err
	}
	m.client = client
	m.exchange = exchange
	return nil
}

// getMetadata returns the metadata connected to the node and a context
// bounded by the command timeout
func getMetadata(c *cli.Context) (*metadata, context.Context, context.CancelFunc, error) {
	m := c.App.Metadata["config"].(*metadata)
	err := m.connect()
	if err != nil {
		return nil, nil, nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	return m, ctx, cancel, nil
}

// newActions returns the actions signed by the configured key after checking
// the user is registered, unless register is set
func newActions(ctx context.Context, m *metadata, register bool) (*actions.Actions, error) {
	opts, err := helpers.Transactor(m.config)
	if err != nil {
		return nil, err
	}
	a := actions.NewActions(m.exchange, opts)
	if register {
		return a, nil
	}
	err = a.CheckRegistered(ctx)
	if err != nil {
		return nil, err
	}
	return a, nil
}

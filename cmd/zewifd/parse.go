package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/zewif-network/zewif-zcashd/internal/config"
	"github.com/zewif-network/zewif-zcashd/pkg/dump"
	"github.com/zewif-network/zewif-zcashd/pkg/zcashd"
)

var parse = cli.Command{
	Name:      "parse",
	Usage:     "reconstruct a wallet from a db_dump file and print a summary",
	ArgsUsage: "<dump file>",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "fail on malformed transaction records instead of skipping them",
		},
		&cli.BoolFlag{
			Name:  "unclaimed",
			Usage: "also list the records no category decoder claimed",
		},
	},
	Action: parseAction,
}

func parseAction(ctx *cli.Context) error {
	path, err := dumpPath(ctx)
	if err != nil {
		return err
	}

	d, err := dump.ReadDumpFile(path)
	if err != nil {
		return err
	}

	strict := ctx.Bool("strict") || config.GetBool(config.StrictKey)
	wallet, unclaimed, err := zcashd.ReconstructWallet(
		d, zcashd.ReconstructOpts{Strict: strict},
	)
	if err != nil {
		return err
	}

	if err := wallet.MnemonicPhrase().Validate(); err != nil {
		log.WithError(err).Warn("mnemonic phrase failed validation")
	}

	fmt.Printf("network: %s\n", wallet.NetworkInfo().Network())
	fmt.Printf("version: %d (min %d)\n", wallet.ClientVersion(), wallet.MinVersion())
	fmt.Printf("records: %d total, %d unclaimed\n", d.RecordCount(), len(unclaimed))
	fmt.Printf("transparent keys: %d\n", len(wallet.Keys()))
	fmt.Printf("sapling keys: %d\n", len(wallet.SaplingKeys()))
	fmt.Printf("sprout keys: %d\n", len(wallet.SproutKeys()))
	fmt.Printf("addresses: %d\n", len(wallet.AddressNames()))
	fmt.Printf("transactions: %d\n", len(wallet.Transactions()))
	fmt.Printf("key pool: %d\n", len(wallet.KeyPool()))

	if ctx.Bool("unclaimed") {
		for _, key := range unclaimed {
			fmt.Println(key.String())
		}
	}

	return nil
}

package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/zewif-network/zewif-zcashd/internal/config"
)

func main() {
	if err := config.InitConfig(); err != nil {
		fatal(err)
	}
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	app := cli.NewApp()

	app.Version = "0.1.0"
	app.Name = "zewifd"
	app.Usage = "Command line interface for reconstructing zcashd wallets from Berkeley DB dumps"
	app.Commands = append(
		app.Commands,
		&parse,
		&keynames,
	)

	err := app.Run(os.Args)
	if err != nil {
		fatal(err)
	}
}

// dumpPath resolves the dump file to read: the positional argument wins,
// then the DUMP_PATH config key.
func dumpPath(ctx *cli.Context) (string, error) {
	if ctx.Args().Len() > 0 {
		return ctx.Args().First(), nil
	}
	if path := config.GetString(config.DumpPathKey); path != "" {
		return path, nil
	}
	return "", fmt.Errorf("missing dump file: pass it as argument or set ZEWIFD_DUMP_PATH")
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[zewifd] %v\n", err)
	os.Exit(1)
}

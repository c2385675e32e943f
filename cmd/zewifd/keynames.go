package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/zewif-network/zewif-zcashd/pkg/dump"
)

var keynames = cli.Command{
	Name:      "keynames",
	Usage:     "list the record categories present in a db_dump file",
	ArgsUsage: "<dump file>",
	Action:    keynamesAction,
}

func keynamesAction(ctx *cli.Context) error {
	path, err := dumpPath(ctx)
	if err != nil {
		return err
	}

	d, err := dump.ReadDumpFile(path)
	if err != nil {
		return err
	}

	for _, keyname := range d.Keynames() {
		records, err := d.RecordsForKeyname(keyname)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d\n", keyname, len(records))
	}

	return nil
}

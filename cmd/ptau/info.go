package main

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	ptau "github.com/snarkhq/go-ptau"
)

type headerJSON struct {
	N8            uint32 `json:"n8"`
	Power         uint32 `json:"power"`
	CeremonyPower uint32 `json:"ceremonyPower"`
	MaxG1Points   int    `json:"maxG1Points"`
	MaxG2Points   int    `json:"maxG2Points"`
}

func infoCmd() *cli.Command {
	var asJSON bool

	return &cli.Command{
		Name:      "info",
		Usage:     "Print the header of a ptau file",
		ArgsUsage: "<file.ptau>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "emit the header as JSON", Destination: &asJSON},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("missing ptau file argument")
			}
			f, err := ptau.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			h := f.Header
			if asJSON {
				out, err := json.MarshalIndent(headerJSON{
					N8:            h.N8,
					Power:         h.Power,
					CeremonyPower: h.CeremonyPower,
					MaxG1Points:   h.MaxG1Points(),
					MaxG2Points:   h.MaxG2Points(),
				}, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			}

			fmt.Printf("field element bytes: %d\n", h.N8)
			fmt.Printf("power:               %d\n", h.Power)
			fmt.Printf("ceremony power:      %d\n", h.CeremonyPower)
			fmt.Printf("max G1 points:       %d\n", h.MaxG1Points())
			fmt.Printf("max G2 points:       %d\n", h.MaxG2Points())
			return nil
		},
	}
}

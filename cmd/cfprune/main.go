// Copyright 2025 The cfprune Authors.
// This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0
// that can be found in the LICENSE file and https://mozilla.org/MPL/2.0/.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cfprune/cfprune.go/core"
	cfregistry "github.com/cfprune/cfprune.go/registry/cloudflare"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	// Load .env if present; real environment wins either way.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "cfprune",
		Usage: "Bulk delete Cloudflare DNS records matching a set of filters.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "token",
				Usage:   "Cloudflare API token.",
				EnvVars: []string{"CLOUDFLARE_API_TOKEN"},
			},
			&cli.StringFlag{
				Name:  "zone-id",
				Usage: "Cloudflare zone identifier.",
			},
			&cli.StringFlag{
				Name:  "zone",
				Usage: "Zone name, resolved to an identifier via the API.",
			},
			&cli.StringSliceFlag{
				Name:  "name",
				Usage: "Exact record name to delete. May be given multiple times.",
			},
			&cli.StringFlag{
				Name:  "names-file",
				Usage: "File with one record name per line. Blank lines and # comments are skipped.",
			},
			&cli.StringFlag{
				Name:  "contains",
				Usage: "Delete records whose name contains this substring.",
			},
			&cli.StringFlag{
				Name:  "type",
				Usage: "Record type to filter on (e.g. A, CNAME, TXT).",
			},
			&cli.BoolFlag{
				Name:  "all",
				Usage: "Select every record in the zone when no filter is given.",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Report which records would be deleted without deleting anything.",
			},
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Skip the interactive confirmation and proceed with deletion.",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging.",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func run(cCtx *cli.Context) error {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if cCtx.Bool("verbose") {
		log.SetLevel(logrus.DebugLevel)
	}

	names := cCtx.StringSlice("name")
	namesFile := cCtx.String("names-file")
	if len(names) > 0 && namesFile != "" {
		return configExit("specify either --name multiple times or --names-file, not both")
	}
	if namesFile != "" {
		fileNames, err := loadNames(namesFile)
		if err != nil {
			return configExit(fmt.Sprintf("read names file %s: %v", namesFile, err))
		}
		names = fileNames
	}

	criteria, err := core.NewCriteria(names, cCtx.String("contains"), cCtx.String("type"))
	if err != nil {
		return configExit(err.Error())
	}

	dryRun := cCtx.Bool("dry-run")
	if criteria.Empty() && !dryRun && !cCtx.Bool("all") {
		return configExit("no filters given: pass --all to delete every record in the zone")
	}

	zoneID := cCtx.String("zone-id")
	zoneName := cCtx.String("zone")
	if (zoneID == "") == (zoneName == "") {
		return configExit("exactly one of --zone-id or --zone is required")
	}

	client, err := cfregistry.New(cCtx.String("token"), logrus.NewEntry(log))
	if err != nil {
		return cli.Exit(err, 1)
	}

	ctx := context.Background()

	if zoneID == "" {
		zoneID, err = client.ZoneIDByName(zoneName)
		if err != nil {
			return cli.Exit(err, 1)
		}
	}

	plan, err := core.BuildPlan(client.ListRecords(ctx, zoneID), criteria.Predicate())
	if err != nil {
		return cli.Exit(err, 1)
	}

	if len(plan) == 0 {
		fmt.Println("No matching records found.")
		return nil
	}

	printPlan(os.Stdout, plan, dryRun)

	confirm := core.Confirmer(core.ConfirmAlways)
	if !dryRun && !cCtx.Bool("yes") {
		confirm = promptConfirmer(os.Stdin, os.Stdout)
	}

	executor := &core.Executor{
		Client:  client,
		Confirm: confirm,
		Log:     logrus.NewEntry(log).WithField("component", "executor"),
	}

	summary := executor.Execute(ctx, plan, dryRun)
	printSummary(os.Stdout, summary, dryRun)

	if summary.Failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d deletions failed", summary.Failed, summary.Attempted), 1)
	}
	return nil
}

func configExit(reason string) error {
	return cli.Exit(&core.ConfigError{Reason: reason}, 2)
}

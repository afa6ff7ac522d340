package main

import (
	"context"
	"fmt"

	"github.com/Cloud-Foundations/Dominator/lib/log"
)

func listSnapshotsSubcommand(args []string, logger log.DebugLogger) error {
	engine, err := getEngine(logger)
	if err != nil {
		return err
	}
	ids, err := engine.ListSnapshots(context.Background())
	if err != nil {
		return fmt.Errorf("error listing snapshots: %s", err)
	}
	for _, id := range ids {
		fmt.Println(id)
	}
	return nil
}

func removeSnapshotSubcommand(args []string, logger log.DebugLogger) error {
	engine, err := getEngine(logger)
	if err != nil {
		return err
	}
	if err := engine.RemoveSnapshot(context.Background(), args[0]); err != nil {
		return fmt.Errorf("error removing snapshot: %s: %s", args[0], err)
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"net"
	"os"

	"github.com/Cloud-Foundations/Dominator/lib/log"
	"github.com/Cloud-Foundations/r53ddns/pkg/ddns"
)

type recordResult struct {
	Deletions []ddns.ChangeOutcome `json:"deletions"`
	Create    *ddns.ChangeOutcome  `json:"create,omitempty"`
}

func checkIPs(ips []string) error {
	for _, ip := range ips {
		if net.ParseIP(ip) == nil {
			return fmt.Errorf("bad IP address: %s", ip)
		}
	}
	return nil
}

func deleteIPSubcommand(args []string, logger log.DebugLogger) error {
	if err := checkIPs(args); err != nil {
		return err
	}
	engine, err := getEngine(logger)
	if err != nil {
		return err
	}
	deletions, err := engine.DeleteRecordsByIP(context.Background(), args)
	if err != nil {
		return fmt.Errorf("error deleting records: %s", err)
	}
	err = writeResult(os.Stdout, recordResult{Deletions: deletions})
	if err != nil {
		return err
	}
	return outcomeErrors(deletions, nil)
}

func outcomeErrors(deletions []ddns.ChangeOutcome,
	create *ddns.ChangeOutcome) error {
	var failed int
	for _, outcome := range deletions {
		if outcome.Error != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d deletions failed", failed, len(deletions))
	}
	if create != nil && create.Error != nil {
		return create.Error
	}
	return nil
}

func setRecordSubcommand(args []string, logger log.DebugLogger) error {
	if err := checkIPs(args[1:]); err != nil {
		return err
	}
	engine, err := getEngine(logger)
	if err != nil {
		return err
	}
	deletions, create, err := engine.DeleteAndCreate(context.Background(),
		args[0], args[1], 0)
	if err != nil {
		return fmt.Errorf("error setting record: %s: %s", args[0], err)
	}
	result := recordResult{Deletions: deletions, Create: create}
	if err := writeResult(os.Stdout, result); err != nil {
		return err
	}
	return outcomeErrors(deletions, create)
}

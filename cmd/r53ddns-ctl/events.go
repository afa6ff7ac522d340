package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Cloud-Foundations/Dominator/lib/log"
)

func handleEventSubcommand(args []string, logger log.DebugLogger) error {
	if err := handleEvent(args[0], logger); err != nil {
		return fmt.Errorf("error handling event: %s: %s", args[0], err)
	}
	return nil
}

func handleEvent(filename string, logger log.DebugLogger) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	engine, err := getEngine(logger)
	if err != nil {
		return err
	}
	result, err := engine.HandleRawEvent(context.Background(), data)
	if result != nil {
		if err := writeResult(os.Stdout, result); err != nil {
			return err
		}
	}
	return err
}

func terminateSubcommand(args []string, logger log.DebugLogger) error {
	engine, err := getEngine(logger)
	if err != nil {
		return err
	}
	result, err := engine.OnTerminate(context.Background(), args[0])
	if result != nil {
		if err := writeResult(os.Stdout, result); err != nil {
			return err
		}
	}
	if err != nil {
		return fmt.Errorf("error terminating: %s: %s", args[0], err)
	}
	return nil
}

func wakeSubcommand(args []string, logger log.DebugLogger) error {
	engine, err := getEngine(logger)
	if err != nil {
		return err
	}
	result, err := engine.OnWake(context.Background(), args[0])
	if result != nil {
		if err := writeResult(os.Stdout, result); err != nil {
			return err
		}
	}
	if err != nil {
		return fmt.Errorf("error waking: %s: %s", args[0], err)
	}
	return nil
}

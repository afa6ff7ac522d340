package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Cloud-Foundations/Dominator/lib/flags/commands"
	"github.com/Cloud-Foundations/Dominator/lib/flags/loadflags"
	"github.com/Cloud-Foundations/Dominator/lib/log"
	"github.com/Cloud-Foundations/Dominator/lib/log/cmdlogger"
	"github.com/Cloud-Foundations/r53ddns/pkg/config"
	"github.com/Cloud-Foundations/r53ddns/pkg/ddns"
)

var (
	configFile = flag.String("configFile", "",
		"Name of file containing configuration")

	cfgData config.Config
)

func printUsage() {
	w := flag.CommandLine.Output()
	fmt.Fprintln(w, "Usage: r53ddns-ctl [flags...] command [args...]")
	fmt.Fprintln(w, "Common flags:")
	flag.PrintDefaults()
	fmt.Fprintln(w, "Commands:")
	commands.PrintCommands(w, subcommands)
	fmt.Fprintln(w, "Environment variables override the configuration file.")
}

var subcommands = []commands.Command{
	{Command: "delete-ip", Args: "ip...", MinArgs: 1, MaxArgs: -1, CmdFunc: deleteIPSubcommand},
	{Command: "handle-event", Args: "file", MinArgs: 1, MaxArgs: 1, CmdFunc: handleEventSubcommand},
	{Command: "list-snapshots", Args: "", MinArgs: 0, MaxArgs: 0, CmdFunc: listSnapshotsSubcommand},
	{Command: "remove-snapshot", Args: "instance-id", MinArgs: 1, MaxArgs: 1, CmdFunc: removeSnapshotSubcommand},
	{Command: "set-record", Args: "name ip", MinArgs: 2, MaxArgs: 2, CmdFunc: setRecordSubcommand},
	{Command: "terminate", Args: "instance-id", MinArgs: 1, MaxArgs: 1, CmdFunc: terminateSubcommand},
	{Command: "wake", Args: "instance-id", MinArgs: 1, MaxArgs: 1, CmdFunc: wakeSubcommand},
}

func doMain() int {
	if err := loadflags.LoadForCli("r53ddns-ctl"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	flag.Usage = printUsage
	flag.Parse()
	logger := cmdlogger.New()
	var err error
	cfgData, err = config.Load(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return commands.RunCommands(subcommands, printUsage, logger)
}

func main() {
	os.Exit(doMain())
}

func getEngine(logger log.DebugLogger) (*ddns.Engine, error) {
	return config.New(cfgData, logger)
}

func writeResult(writer io.Writer, result interface{}) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "    ")
	return encoder.Encode(result)
}

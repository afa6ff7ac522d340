package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Cloud-Foundations/Dominator/lib/log/cmdlogger"
	"github.com/Cloud-Foundations/r53ddns/pkg/config"
	"github.com/aws/aws-lambda-go/lambda"
)

var configFile = flag.String("configFile", os.Getenv("DDNS_CONFIG_FILE"),
	"Optional name of file containing configuration")

func doMain() int {
	flag.Parse()
	logger := cmdlogger.New()
	cfgData, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	engine, err := config.New(cfgData, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	lambda.Start(newHandler(engine, logger).handle)
	return 0
}

func main() {
	os.Exit(doMain())
}

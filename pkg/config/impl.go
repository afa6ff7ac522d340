package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/Cloud-Foundations/Dominator/lib/decoders"
	"github.com/Cloud-Foundations/Dominator/lib/log"
	"github.com/Cloud-Foundations/r53ddns/pkg/ddns"
	"github.com/Cloud-Foundations/r53ddns/pkg/directory/ec2"
	"github.com/Cloud-Foundations/r53ddns/pkg/dns/route53"
	"github.com/Cloud-Foundations/r53ddns/pkg/records"
	"github.com/Cloud-Foundations/r53ddns/pkg/records/memory"
	"github.com/Cloud-Foundations/r53ddns/pkg/records/s3"

	"gopkg.in/yaml.v2"
)

type lookupFunc func(key string) (string, bool)

var lookupEnv lookupFunc = os.LookupEnv

func init() {
	decoders.RegisterDecoder(".yml", yamlDecoderGenerator)
	decoders.RegisterDecoder(".yaml", yamlDecoderGenerator)
}

func yamlDecoderGenerator(r io.Reader) decoders.Decoder {
	return yaml.NewDecoder(r)
}

func load(filename string, lookup lookupFunc) (Config, error) {
	var config Config
	if filename != "" {
		if err := decoders.DecodeFile(filename, &config); err != nil {
			return config, err
		}
	}
	if err := config.loadEnvironment(lookup); err != nil {
		return config, err
	}
	return config, nil
}

func parseBool(lookup lookupFunc, key string, value *bool) error {
	if str, ok := lookup(key); ok && str != "" {
		parsed, err := strconv.ParseBool(str)
		if err != nil {
			return fmt.Errorf("%s: %s", key, err)
		}
		*value = parsed
	}
	return nil
}

// A bare integer is a number of seconds.
func parseDuration(lookup lookupFunc, key string,
	value *time.Duration) error {
	str, ok := lookup(key)
	if !ok || str == "" {
		return nil
	}
	if seconds, err := strconv.ParseUint(str, 10, 32); err == nil {
		*value = time.Duration(seconds) * time.Second
		return nil
	}
	parsed, err := time.ParseDuration(str)
	if err != nil {
		return fmt.Errorf("%s: %s", key, err)
	}
	*value = parsed
	return nil
}

func parseString(lookup lookupFunc, key string, value *string) {
	if str, ok := lookup(key); ok && str != "" {
		*value = str
	}
}

func (c *Config) loadEnvironment(lookup lookupFunc) error {
	parseString(lookup, "AWS_PROFILE", &c.AwsProfile)
	parseString(lookup, "AWS_REGION", &c.AwsRegion)
	parseString(lookup, "DDNS_ASSUME_ROLE_ARN", &c.AwsAssumeRoleArn)
	parseString(lookup, "DDNS_BUCKET", &c.Store.Bucket)
	parseString(lookup, "DDNS_EC2_ENDPOINT", &c.EC2.Endpoint)
	parseString(lookup, "DDNS_EC2_REGION", &c.EC2.Region)
	parseString(lookup, "DDNS_KEY_PREFIX", &c.Store.KeyPrefix)
	parseString(lookup, "DDNS_ROUTE53_ENDPOINT", &c.Route53.Endpoint)
	parseString(lookup, "DDNS_ROUTE53_REGION", &c.Route53.Region)
	parseString(lookup, "DDNS_S3_ENDPOINT", &c.Store.S3.Endpoint)
	parseString(lookup, "DDNS_S3_REGION", &c.Store.S3.Region)
	parseString(lookup, "DDNS_STORAGE_CLASS", &c.Store.StorageClass)
	parseString(lookup, "DDNS_STORE_BACKEND", &c.Store.Backend)
	parseString(lookup, "R53_HOSTED_ZONE_ID", &c.Route53HostedZoneId)
	err := parseBool(lookup, "DDNS_REMOVE_SNAPSHOT_ON_TERMINATE",
		&c.RemoveSnapshotOnTerminate)
	if err != nil {
		return err
	}
	err = parseBool(lookup, "DDNS_ROUTE53_WAIT_FOR_CHANGE",
		&c.Route53WaitForChange)
	if err != nil {
		return err
	}
	return parseDuration(lookup, "DDNS_RECORD_TTL", &c.TTL)
}

func (c Config) check() error {
	if c.Route53HostedZoneId == "" {
		return errors.New("no Route 53 hosted zone ID specified")
	}
	if c.TTL != 0 && c.TTL < time.Second {
		return fmt.Errorf("TTL: %s is below 1s", c.TTL)
	}
	switch c.Store.Backend {
	case "", StoreBackendS3:
		if c.Store.Bucket == "" {
			return errors.New("no S3 bucket specified")
		}
	case StoreBackendMemory:
	default:
		return fmt.Errorf("unsupported store backend: %s", c.Store.Backend)
	}
	return nil
}

func makeBackend(awsSessions *awsSessions, config Config,
	logger log.DebugLogger) (records.Backend, error) {
	switch config.Store.Backend {
	case "", StoreBackendS3:
		return s3.New(awsSessions.s3, config.Store.Config, logger)
	case StoreBackendMemory:
		logger.Println("using memory store: snapshots will not persist")
		return memory.New(), nil
	}
	return nil, fmt.Errorf("unsupported store backend: %s",
		config.Store.Backend)
}

func newEngine(config Config, logger log.DebugLogger) (*ddns.Engine, error) {
	if err := config.check(); err != nil {
		return nil, err
	}
	awsSessions, err := createSessions(config)
	if err != nil {
		return nil, err
	}
	directory, err := ec2.New(awsSessions.ec2, logger)
	if err != nil {
		return nil, err
	}
	zone, err := route53.New(awsSessions.route53, config.Route53HostedZoneId,
		config.Route53WaitForChange, logger)
	if err != nil {
		return nil, err
	}
	backend, err := makeBackend(awsSessions, config, logger)
	if err != nil {
		return nil, err
	}
	return ddns.New(config.Config, ddns.Params{
		Directory: directory,
		Logger:    logger,
		Store:     records.New(backend, config.Store.KeyPrefix, logger),
		Zone:      zone,
	})
}

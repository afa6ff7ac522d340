/*
Package config creates a ddns.Engine wired to AWS EC2, Route 53 and a record
store based on configuration data.

Configuration is read from a YAML file and/or from the environment, which
allows the same settings to be used from the command line and from AWS Lambda.
*/
package config

import (
	"github.com/Cloud-Foundations/Dominator/lib/log"
	"github.com/Cloud-Foundations/r53ddns/pkg/ddns"
	"github.com/Cloud-Foundations/r53ddns/pkg/records/s3"
)

const (
	StoreBackendMemory = "memory"
	StoreBackendS3     = "s3"
)

type Config struct {
	AwsAssumeRoleArn     string `yaml:"aws_assume_role_arn"`
	AwsProfile           string `yaml:"aws_profile"`
	AwsRegion            string `yaml:"aws_region"`
	ddns.Config          `yaml:",inline"`
	EC2                  ServiceConfig `yaml:"ec2"`
	Route53              ServiceConfig `yaml:"route53"`
	Route53HostedZoneId  string        `yaml:"route53_hosted_zone_id"`
	Route53WaitForChange bool          `yaml:"route53_wait_for_change"`
	Store                StoreConfig   `yaml:"store"`
}

// ServiceConfig overrides the region and endpoint of a single AWS service.
type ServiceConfig struct {
	Endpoint string `yaml:"endpoint"`
	Region   string `yaml:"region"`
}

type StoreConfig struct {
	Backend   string `yaml:"backend"` // Default: s3.
	KeyPrefix string `yaml:"key_prefix"`
	s3.Config `yaml:",inline"`
	S3        ServiceConfig `yaml:"s3"`
}

// Load reads the configuration file (if filename is not empty) and then
// applies overrides from the environment.
func Load(filename string) (Config, error) {
	return load(filename, lookupEnv)
}

// New creates a *ddns.Engine using the provided configuration.
func New(config Config, logger log.DebugLogger) (*ddns.Engine, error) {
	return newEngine(config, logger)
}

// Check returns an error if the configuration is incomplete or malformed.
func (c Config) Check() error {
	return c.check()
}

// LoadEnvironment applies overrides from environment variables.
func (c *Config) LoadEnvironment() error {
	return c.loadEnvironment(lookupEnv)
}

package metadata

import (
	"errors"
	"sync"

	"github.com/aws/aws-sdk-go/aws/ec2metadata"
	"github.com/aws/aws-sdk-go/aws/session"
)

type regionReader interface {
	Available() bool
	Region() (string, error)
}

var (
	defaultClient = newDefaultClient

	regionLock  sync.Mutex
	region      string
	regionError error
)

func newDefaultClient() (regionReader, error) {
	awsSession, err := session.NewSession()
	if err != nil {
		return nil, err
	}
	return ec2metadata.New(awsSession), nil
}

func getRegion(newClient func() (regionReader, error)) (string, error) {
	regionLock.Lock()
	defer regionLock.Unlock()
	if region != "" {
		return region, nil
	}
	if regionError != nil {
		return "", regionError
	}
	client, err := newClient()
	if err != nil {
		regionError = err
		return "", err
	}
	if !client.Available() {
		regionError = errors.New(
			"not running on AWS or metadata is not available")
		return "", regionError
	}
	region, err = client.Region()
	if err != nil {
		return "", err
	}
	return region, nil
}

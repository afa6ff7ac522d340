/*
Package ec2 reads instance metadata from AWS EC2 for the ddns package.
*/
package ec2

import (
	"context"

	"github.com/Cloud-Foundations/Dominator/lib/log"
	"github.com/Cloud-Foundations/r53ddns/pkg/ddns"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
)

type InstanceDirectory struct {
	awsService ec2iface.EC2API
	logger     log.DebugLogger
}

func New(awsSession *session.Session,
	logger log.DebugLogger) (*InstanceDirectory, error) {
	return newInstanceDirectory(awsSession, logger)
}

// GetInstance returns the ID, private IP and tags of an instance. An error is
// returned if the instance does not exist.
func (d *InstanceDirectory) GetInstance(ctx context.Context,
	instanceId string) (*ddns.Instance, error) {
	return d.getInstance(ctx, instanceId)
}

package ec2

import (
	"context"
	"errors"
	"fmt"

	"github.com/Cloud-Foundations/Dominator/lib/log"
	"github.com/Cloud-Foundations/r53ddns/pkg/ddns"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ec2"
)

func newInstanceDirectory(awsSession *session.Session,
	logger log.DebugLogger) (*InstanceDirectory, error) {
	if awsSession == nil {
		return nil, errors.New("no AWS session specified")
	}
	return &InstanceDirectory{
		awsService: ec2.New(awsSession),
		logger:     logger,
	}, nil
}

func convertInstance(instance *ec2.Instance) *ddns.Instance {
	converted := &ddns.Instance{
		InstanceId:       aws.StringValue(instance.InstanceId),
		PrivateIpAddress: aws.StringValue(instance.PrivateIpAddress),
	}
	for _, tag := range instance.Tags {
		converted.Tags = append(converted.Tags, ddns.Tag{
			Key:   aws.StringValue(tag.Key),
			Value: aws.StringValue(tag.Value),
		})
	}
	return converted
}

func (d *InstanceDirectory) getInstance(ctx context.Context,
	instanceId string) (*ddns.Instance, error) {
	output, err := d.awsService.DescribeInstancesWithContext(ctx,
		&ec2.DescribeInstancesInput{
			InstanceIds: aws.StringSlice([]string{instanceId}),
		})
	if err != nil {
		return nil, fmt.Errorf("ec2:DescribeInstances: %s", err)
	}
	for _, reservation := range output.Reservations {
		for _, instance := range reservation.Instances {
			if aws.StringValue(instance.InstanceId) != instanceId {
				continue
			}
			d.logger.Debugf(1, "described instance: %s, IP: %s\n",
				instanceId, aws.StringValue(instance.PrivateIpAddress))
			return convertInstance(instance), nil
		}
	}
	return nil, fmt.Errorf("instance: %s not found", instanceId)
}

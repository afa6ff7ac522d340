package ec2

import (
	"context"
	"errors"
	"testing"

	"github.com/Cloud-Foundations/Dominator/lib/log/testlogger"
	"github.com/Cloud-Foundations/r53ddns/pkg/ddns"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
	"github.com/stretchr/testify/assert"
)

type testService struct {
	ec2iface.EC2API
	instances []*ec2.Instance
	err       error
}

func (s *testService) DescribeInstancesWithContext(ctx aws.Context,
	input *ec2.DescribeInstancesInput,
	opts ...request.Option) (*ec2.DescribeInstancesOutput, error) {
	if s.err != nil {
		return nil, s.err
	}
	output := &ec2.DescribeInstancesOutput{}
	for _, instance := range s.instances {
		for _, id := range input.InstanceIds {
			if *id == *instance.InstanceId {
				output.Reservations = append(output.Reservations,
					&ec2.Reservation{Instances: []*ec2.Instance{instance}})
			}
		}
	}
	return output, nil
}

func makeDirectory(t *testing.T, service *testService) *InstanceDirectory {
	return &InstanceDirectory{awsService: service, logger: testlogger.New(t)}
}

func TestGetInstance(t *testing.T) {
	directory := makeDirectory(t, &testService{
		instances: []*ec2.Instance{{
			InstanceId:       aws.String("i-123"),
			PrivateIpAddress: aws.String("10.0.0.5"),
			Tags: []*ec2.Tag{
				{Key: aws.String("env"), Value: aws.String("prod")},
				{Key: aws.String("Name"), Value: aws.String("web1")},
			},
		}},
	})
	instance, err := directory.GetInstance(context.Background(), "i-123")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, &ddns.Instance{
		InstanceId:       "i-123",
		PrivateIpAddress: "10.0.0.5",
		Tags: []ddns.Tag{
			{Key: "env", Value: "prod"},
			{Key: "Name", Value: "web1"},
		},
	}, instance)
	assert.Equal(t, "web1", ddns.HostName(instance))
}

func TestGetMissingInstance(t *testing.T) {
	directory := makeDirectory(t, &testService{})
	if _, err := directory.GetInstance(context.Background(),
		"i-404"); err == nil {
		t.Fatal("expected failure for missing instance")
	}
}

func TestDescribeFailure(t *testing.T) {
	directory := makeDirectory(t, &testService{
		err: errors.New("UnauthorizedOperation"),
	})
	_, err := directory.GetInstance(context.Background(), "i-123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ec2:DescribeInstances")
}

func TestNoSession(t *testing.T) {
	if _, err := New(nil, testlogger.New(t)); err == nil {
		t.Fatal("expected failure without session")
	}
}

package config

import (
	"errors"
	"fmt"

	"github.com/Cloud-Foundations/r53ddns/pkg/awsutil/metadata"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials/stscreds"
	"github.com/aws/aws-sdk-go/aws/session"
)

type awsSessions struct {
	ec2     *session.Session
	route53 *session.Session
	s3      *session.Session
}

var getDefaultRegion = metadata.GetRegion

func createBaseSession(config Config) (*session.Session, error) {
	var awsSession *session.Session
	var err error
	if config.AwsProfile == "" {
		awsSession, err = session.NewSession(&aws.Config{})
	} else {
		awsSession, err = session.NewSessionWithOptions(session.Options{
			Profile:           config.AwsProfile,
			SharedConfigState: session.SharedConfigEnable,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("error creating session: %s", err)
	}
	if awsSession == nil {
		return nil, errors.New("awsSession == nil")
	}
	if config.AwsAssumeRoleArn == "" {
		return awsSession, nil
	}
	creds := stscreds.NewCredentials(awsSession, config.AwsAssumeRoleArn)
	assumedSession, err := session.NewSession(&aws.Config{
		Credentials: creds,
		Region:      awsSession.Config.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating assumed role session: %s", err)
	}
	if assumedSession == nil {
		return nil, errors.New("assumedSession == nil")
	}
	return assumedSession, nil
}

func createSessions(config Config) (*awsSessions, error) {
	awsSession, err := createBaseSession(config)
	if err != nil {
		return nil, err
	}
	region := config.AwsRegion
	if region == "" {
		region = aws.StringValue(awsSession.Config.Region)
	}
	if region == "" {
		if region, err = getDefaultRegion(); err != nil {
			return nil, fmt.Errorf("no AWS region configured: %s", err)
		}
	}
	return &awsSessions{
		ec2:     serviceSession(awsSession, region, config.EC2, false),
		route53: serviceSession(awsSession, region, config.Route53, false),
		s3:      serviceSession(awsSession, region, config.Store.S3, true),
	}, nil
}

// Path style addressing is used with a custom S3 endpoint.
func serviceSession(awsSession *session.Session, region string,
	service ServiceConfig, isS3 bool) *session.Session {
	awsConfig := &aws.Config{Region: aws.String(region)}
	if service.Region != "" {
		awsConfig.Region = aws.String(service.Region)
	}
	if service.Endpoint != "" {
		awsConfig.Endpoint = aws.String(service.Endpoint)
		if isS3 {
			awsConfig.S3ForcePathStyle = aws.Bool(true)
		}
	}
	return awsSession.Copy(awsConfig)
}

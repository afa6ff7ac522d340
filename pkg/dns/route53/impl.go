package route53

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Cloud-Foundations/Dominator/lib/log"
	"github.com/Cloud-Foundations/r53ddns/pkg/ddns"
	"github.com/Cloud-Foundations/r53ddns/pkg/dns"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/route53"
	"github.com/aws/aws-sdk-go/service/route53/route53iface"
)

func newZone(awsSession *session.Session, hostedZoneId string,
	waitForChange bool, logger log.DebugLogger) (*Zone, error) {
	if hostedZoneId == "" {
		return nil, errors.New("no hosted zone ID specified")
	}
	return &Zone{
		awsService:    route53.New(awsSession),
		hostedZoneId:  aws.String(hostedZoneId),
		logger:        logger,
		waitForChange: waitForChange,
	}, nil
}

func waitForChange(ctx context.Context, awsService route53iface.Route53API,
	id *string, logger log.DebugLogger) error {
	ctx, cancel := context.WithTimeout(ctx, time.Minute*2)
	defer cancel()
	err := awsService.WaitUntilResourceRecordSetsChangedWithContext(ctx,
		&route53.GetChangeInput{Id: id})
	if err == nil {
		return nil
	}
	if ctx.Err() == nil {
		return err
	}
	output, err := awsService.GetChange(&route53.GetChangeInput{Id: id})
	if err != nil {
		logger.Printf("timed out waiting for change: %s, hoping for the best, error from GetChange(): %s\n",
			*id, err)
		return nil
	}
	logger.Printf(
		"timed out waiting for change: %s, hoping for the best, status: %s\n",
		*id, *output.ChangeInfo.Status)
	return nil
}

func (z *Zone) applyChange(ctx context.Context, action ddns.ChangeAction,
	recordSet ddns.RecordSet) error {
	var resourceRecords []*route53.ResourceRecord
	for _, value := range recordSet.Values {
		resourceRecords = append(resourceRecords,
			&route53.ResourceRecord{Value: aws.String(value)})
	}
	recType := recordSet.Type
	if recType == "" {
		recType = ddns.RecordTypeA
	}
	rrs := &route53.ResourceRecordSet{
		Name:            aws.String(dns.Absolute(recordSet.Name)),
		ResourceRecords: resourceRecords,
		TTL:             aws.Int64(int64(recordSet.TTL.Seconds())),
		Type:            aws.String(recType),
	}
	if recordSet.SetIdentifier != "" {
		rrs.SetIdentifier = aws.String(recordSet.SetIdentifier)
	}
	// Route 53 only deletes a record set which matches the existing one.
	if listed, ok := recordSet.ZoneData.(*route53.ResourceRecordSet); ok &&
		listed != nil && action == ddns.ActionDelete {
		rrs = listed
	}
	changes := []*route53.Change{{
		Action:            aws.String(string(action)),
		ResourceRecordSet: rrs,
	}}
	output, err := z.awsService.ChangeResourceRecordSetsWithContext(ctx,
		&route53.ChangeResourceRecordSetsInput{
			ChangeBatch:  &route53.ChangeBatch{Changes: changes},
			HostedZoneId: z.hostedZoneId,
		})
	if err != nil {
		return fmt.Errorf("route53:ChangeResourceRecordSets: %s", err)
	}
	z.logger.Debugf(1, "change: %s %s: %s\n",
		action, recordSet.Name, *output.ChangeInfo.Id)
	if z.waitForChange {
		z.logger.Debugf(1, "waiting for change: %s to complete\n",
			*output.ChangeInfo.Id)
		err := waitForChange(ctx, z.awsService, output.ChangeInfo.Id,
			z.logger)
		if err != nil {
			return err
		}
		z.logger.Debugf(1, "change: %s completed\n", *output.ChangeInfo.Id)
	}
	return nil
}

func (z *Zone) getZoneSuffix(ctx context.Context) (string, error) {
	z.mutex.Lock()
	defer z.mutex.Unlock()
	if z.suffix != "" {
		return z.suffix, nil
	}
	output, err := z.awsService.GetHostedZoneWithContext(ctx,
		&route53.GetHostedZoneInput{Id: z.hostedZoneId})
	if err != nil {
		return "", fmt.Errorf("route53:GetHostedZone: %s", err)
	}
	if output.HostedZone == nil || output.HostedZone.Name == nil {
		return "", fmt.Errorf("no name for hosted zone: %s", *z.hostedZoneId)
	}
	z.suffix = dns.Relative(*output.HostedZone.Name)
	return z.suffix, nil
}

func (z *Zone) listRecordsByIP(ctx context.Context, ips []string) (
	[]ddns.RecordSet, error) {
	wanted := make(map[string]struct{}, len(ips))
	for _, ip := range ips {
		wanted[ip] = struct{}{}
	}
	var recordSets []ddns.RecordSet
	err := z.awsService.ListResourceRecordSetsPagesWithContext(ctx,
		&route53.ListResourceRecordSetsInput{HostedZoneId: z.hostedZoneId},
		func(output *route53.ListResourceRecordSetsOutput, last bool) bool {
			for _, rrs := range output.ResourceRecordSets {
				if aws.StringValue(rrs.Type) != ddns.RecordTypeA {
					continue
				}
				if recordSet, ok := matchRecordSet(rrs, wanted); ok {
					recordSets = append(recordSets, recordSet)
				}
			}
			return true
		})
	if err != nil {
		return nil, fmt.Errorf("route53:ListResourceRecordSets: %s", err)
	}
	z.logger.Debugf(1, "found %d A record sets for: %s\n",
		len(recordSets), strings.Join(ips, ","))
	return recordSets, nil
}

// Alias record sets have no values and never match.
func matchRecordSet(rrs *route53.ResourceRecordSet,
	wanted map[string]struct{}) (ddns.RecordSet, bool) {
	recordSet := ddns.RecordSet{
		Name:          aws.StringValue(rrs.Name),
		SetIdentifier: aws.StringValue(rrs.SetIdentifier),
		Type:          aws.StringValue(rrs.Type),
		TTL:           time.Duration(aws.Int64Value(rrs.TTL)) * time.Second,
		ZoneData:      rrs,
	}
	var found bool
	for _, record := range rrs.ResourceRecords {
		value := aws.StringValue(record.Value)
		if _, ok := wanted[value]; ok {
			found = true
		}
		recordSet.Values = append(recordSet.Values, value)
	}
	return recordSet, found
}

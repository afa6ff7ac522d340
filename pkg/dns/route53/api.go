/*
Package route53 implements the A record zone operations needed by the ddns
package using AWS Route 53.
*/
package route53

import (
	"context"
	"sync"

	"github.com/Cloud-Foundations/Dominator/lib/log"
	"github.com/Cloud-Foundations/r53ddns/pkg/ddns"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/route53/route53iface"
)

type Zone struct {
	awsService    route53iface.Route53API
	hostedZoneId  *string
	logger        log.DebugLogger
	waitForChange bool
	mutex         sync.Mutex // Protect everything below.
	suffix        string
}

// New creates a *Zone for the specified hosted zone. If waitForChange is true
// each change blocks until Route 53 reports it as INSYNC.
// The logger is used for logging messages.
func New(awsSession *session.Session, hostedZoneId string, waitForChange bool,
	logger log.DebugLogger) (*Zone, error) {
	return newZone(awsSession, hostedZoneId, waitForChange, logger)
}

// ApplyChange applies a single change to the zone.
func (z *Zone) ApplyChange(ctx context.Context, action ddns.ChangeAction,
	recordSet ddns.RecordSet) error {
	return z.applyChange(ctx, action, recordSet)
}

// GetZoneSuffix returns the name of the hosted zone without the trailing dot.
func (z *Zone) GetZoneSuffix(ctx context.Context) (string, error) {
	return z.getZoneSuffix(ctx)
}

// ListRecordsByIP returns all A record sets which have a value in ips.
func (z *Zone) ListRecordsByIP(ctx context.Context, ips []string) (
	[]ddns.RecordSet, error) {
	return z.listRecordsByIP(ctx, ips)
}

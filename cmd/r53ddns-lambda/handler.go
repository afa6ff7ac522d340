package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Cloud-Foundations/Dominator/lib/log"
	"github.com/Cloud-Foundations/r53ddns/pkg/ddns"
	"github.com/aws/aws-lambda-go/events"
)

type eventHandler interface {
	HandleEvent(ctx context.Context, event ddns.Event) (*ddns.Result, error)
}

type handler struct {
	engine eventHandler
	logger log.DebugLogger
}

func newHandler(engine eventHandler, logger log.DebugLogger) *handler {
	return &handler{engine: engine, logger: logger}
}

func convertEvent(event events.CloudWatchEvent) (ddns.Event, error) {
	converted := ddns.Event{
		Id:         event.ID,
		DetailType: event.DetailType,
		Source:     event.Source,
		Region:     event.Region,
	}
	if len(event.Detail) > 0 {
		if err := json.Unmarshal(event.Detail, &converted.Detail); err != nil {
			return converted, fmt.Errorf("error decoding event detail: %s",
				err)
		}
	}
	return converted, nil
}

// Failures are returned to Lambda after the result has been logged.
func (h *handler) handle(ctx context.Context,
	event events.CloudWatchEvent) (*ddns.Result, error) {
	ddnsEvent, err := convertEvent(event)
	if err != nil {
		h.logger.Printf("event: %s: %s\n", event.ID, err)
		return nil, err
	}
	result, err := h.engine.HandleEvent(ctx, ddnsEvent)
	if encoded, e := json.Marshal(result); e == nil {
		h.logger.Println(string(encoded))
	}
	if err != nil {
		h.logger.Printf("event: %s, instance: %s, state: %s: %s\n",
			event.ID, ddnsEvent.Detail.InstanceId, ddnsEvent.Detail.State, err)
		return result, err
	}
	return result, nil
}

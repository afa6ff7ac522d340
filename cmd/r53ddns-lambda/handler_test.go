package main

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Cloud-Foundations/Dominator/lib/log/testlogger"
	"github.com/Cloud-Foundations/r53ddns/pkg/ddns"
	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
)

type testEngine struct {
	events []ddns.Event
	err    error
}

func (e *testEngine) HandleEvent(ctx context.Context,
	event ddns.Event) (*ddns.Result, error) {
	e.events = append(e.events, event)
	return &ddns.Result{Event: event, Action: "wake"}, e.err
}

func TestHandle(t *testing.T) {
	engine := &testEngine{}
	h := newHandler(engine, testlogger.New(t))
	result, err := h.handle(context.Background(), events.CloudWatchEvent{
		ID:         "event-1",
		DetailType: "EC2 Instance State-change Notification",
		Source:     "aws.ec2",
		Region:     "ap-northeast-1",
		Detail: json.RawMessage(
			`{"instance-id": "i-123", "state": "running"}`),
	})
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "wake", result.Action)
	if assert.Len(t, engine.events, 1) {
		assert.Equal(t, ddns.EventDetail{
			InstanceId: "i-123",
			State:      "running",
		}, engine.events[0].Detail)
		assert.Equal(t, "aws.ec2", engine.events[0].Source)
	}
}

func TestHandleReturnsErrors(t *testing.T) {
	engine := &testEngine{err: errors.New("AccessDenied")}
	h := newHandler(engine, testlogger.New(t))
	_, err := h.handle(context.Background(), events.CloudWatchEvent{
		Detail: json.RawMessage(`{"instance-id": "i-123", "state": "stopped"}`),
	})
	assert.Error(t, err)
	_, err = h.handle(context.Background(), events.CloudWatchEvent{
		Detail: json.RawMessage(`[1, 2]`),
	})
	assert.Error(t, err)
	assert.Len(t, engine.events, 1)
}

package encoding

import (
	"testing"

	"github.com/Cloud-Foundations/r53ddns/pkg/ddns"
)

var testInstance = &ddns.Instance{
	InstanceId:       "i-123",
	PrivateIpAddress: "10.0.0.5",
	Tags:             []ddns.Tag{{Key: "Name", Value: "web1"}},
}

func TestInstance(t *testing.T) {
	data, err := EncodeInstance(testInstance)
	if err != nil {
		t.Fatal(err)
	}
	if payloadType, err := peekType(data); err != nil {
		t.Fatal(err)
	} else if payloadType != PayloadInstance {
		t.Fatalf("payload type: %s != %s", payloadType, PayloadInstance)
	}
	instance, err := DecodeInstance(data)
	if err != nil {
		t.Fatal(err)
	}
	if instance.InstanceId != testInstance.InstanceId ||
		instance.PrivateIpAddress != testInstance.PrivateIpAddress ||
		len(instance.Tags) != 1 || instance.Tags[0] != testInstance.Tags[0] {
		t.Fatalf("decoded instance: %+v != %+v", instance, testInstance)
	}
}

func TestTypeMismatch(t *testing.T) {
	data, err := EncodeHostName("web1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeInstance(data); err == nil {
		t.Fatal("host name payload decoded as instance")
	}
	if hostName, err := DecodeHostName(data); err != nil {
		t.Fatal(err)
	} else if hostName != "web1" {
		t.Fatalf("decoded host name: %s != web1", hostName)
	}
}

func TestUntypedPayload(t *testing.T) {
	raw := []byte(`{"InstanceId": "i-123", "PrivateIpAddress": "10.0.0.5"}`)
	if _, err := DecodeInstance(raw); err == nil {
		t.Fatal("payload without envelope decoded")
	}
	if _, err := DecodeHostName([]byte("web1")); err == nil {
		t.Fatal("plain text decoded")
	}
}

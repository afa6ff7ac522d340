/*
Package encoding serializes the payloads kept in a record store. Every payload
is wrapped in a JSON envelope carrying its type, so decoding never depends on
inspecting the content.
*/
package encoding

import (
	"github.com/Cloud-Foundations/r53ddns/pkg/ddns"
)

type PayloadType string

const (
	PayloadHostName PayloadType = "hostname"
	PayloadInstance PayloadType = "instance"
)

// DecodeHostName deserializes the output of EncodeHostName.
func DecodeHostName(data []byte) (string, error) {
	return decodeHostName(data)
}

// DecodeInstance deserializes the output of EncodeInstance.
func DecodeInstance(data []byte) (*ddns.Instance, error) {
	return decodeInstance(data)
}

func EncodeHostName(hostName string) ([]byte, error) {
	return encode(PayloadHostName, hostName)
}

func EncodeInstance(instance *ddns.Instance) ([]byte, error) {
	return encode(PayloadInstance, instance)
}

package encoding

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Cloud-Foundations/r53ddns/pkg/ddns"
)

type envelope struct {
	PayloadType PayloadType     `json:"payloadType"`
	Payload     json.RawMessage `json:"payload"`
}

func decode(data []byte, wantType PayloadType, payload interface{}) error {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("error unmarshaling envelope: %s", err)
	}
	if env.PayloadType != wantType {
		return fmt.Errorf("payload type: \"%s\", expected: \"%s\"",
			env.PayloadType, wantType)
	}
	if len(env.Payload) < 1 {
		return errors.New("no payload in envelope")
	}
	if err := json.Unmarshal(env.Payload, payload); err != nil {
		return fmt.Errorf("error unmarshaling %s: %s", wantType, err)
	}
	return nil
}

func decodeHostName(data []byte) (string, error) {
	var hostName string
	if err := decode(data, PayloadHostName, &hostName); err != nil {
		return "", err
	}
	return hostName, nil
}

func decodeInstance(data []byte) (*ddns.Instance, error) {
	var instance ddns.Instance
	if err := decode(data, PayloadInstance, &instance); err != nil {
		return nil, err
	}
	return &instance, nil
}

func encode(payloadType PayloadType, payload interface{}) ([]byte, error) {
	rawPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{
		PayloadType: payloadType,
		Payload:     rawPayload,
	})
}

func peekType(data []byte) (PayloadType, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return "", fmt.Errorf("error unmarshaling envelope: %s", err)
	}
	return env.PayloadType, nil
}

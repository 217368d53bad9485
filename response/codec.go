package response

import (
	"github.com/arloliu/sensorenv/codec"
	"github.com/arloliu/sensorenv/measurement"
)

// Encode writes an acknowledgement batch into buf using c.
//
// Devices only decode acknowledgements; Encode exists for servers, simulators
// and tests.
func Encode(c codec.Encoder, rs measurement.Responses, buf []byte) (int, error) {
	return c.Encode(&rs, buf)
}

// Decode reads an acknowledgement batch from buf using c.
func Decode(c codec.Decoder, buf []byte) (measurement.Responses, error) {
	var rs measurement.Responses
	if err := c.Decode(buf, &rs); err != nil {
		return nil, err
	}

	return rs, nil
}

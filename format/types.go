package format

import "strconv"

type (
	CompressionType uint8
	Schema          uint8
	SensorType      int32
	SensorError     int32
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

const (
	SchemaMeasurement Schema = 0x1 // SchemaMeasurement is a single sensor measurement.
	SchemaEnvelope    Schema = 0x2 // SchemaEnvelope is a batch of measurements with hoisted metadata.
	SchemaResponses   Schema = 0x3 // SchemaResponses is a batch of server acknowledgements.
)

// Sensor types known to the upload protocol.
const (
	SensorUnknown          SensorType = 0
	SensorPowerVoltage     SensorType = 1
	SensorPowerCurrent     SensorType = 2
	SensorTeros12VWC       SensorType = 3
	SensorTeros12VWCAdj    SensorType = 4
	SensorTeros12Temp      SensorType = 5
	SensorTeros12EC        SensorType = 6
	SensorPhytos31Voltage  SensorType = 7
	SensorPhytos31LeafWet  SensorType = 8
	SensorBME280Pressure   SensorType = 9
	SensorBME280Temp       SensorType = 10
	SensorBME280Humidity   SensorType = 11
	SensorTeros21MatricPot SensorType = 12
	SensorTeros21Temp      SensorType = 13
	SensorSEN0308Voltage   SensorType = 14
	SensorSEN0308Humidity  SensorType = 15
	SensorSEN0257Voltage   SensorType = 16
	SensorSEN0257Pressure  SensorType = 17
	SensorYFS210CFlow      SensorType = 18
)

// Error codes returned by the server in an acknowledgement.
const (
	ErrorOK          SensorError = 0 // ErrorOK means the item was stored.
	ErrorLogger      SensorError = 1 // ErrorLogger means the logger id is unknown to the server.
	ErrorCell        SensorError = 2 // ErrorCell means the cell id is unknown to the server.
	ErrorUnsupported SensorError = 3 // ErrorUnsupported means the sensor type is not supported.
	ErrorDecode      SensorError = 4 // ErrorDecode means the server could not decode the payload.
	ErrorTimeout     SensorError = 5 // ErrorTimeout means the upload timed out on the server side.
	ErrorInternal    SensorError = 6 // ErrorInternal means an unspecified server failure.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

func (s Schema) String() string {
	switch s {
	case SchemaMeasurement:
		return "SensorMeasurement"
	case SchemaEnvelope:
		return "RepeatedSensorMeasurements"
	case SchemaResponses:
		return "RepeatedSensorResponses"
	default:
		return "Unknown"
	}
}

var sensorTypeNames = map[SensorType]string{
	SensorUnknown:          "UNKNOWN",
	SensorPowerVoltage:     "POWER_VOLTAGE",
	SensorPowerCurrent:     "POWER_CURRENT",
	SensorTeros12VWC:       "TEROS12_VWC",
	SensorTeros12VWCAdj:    "TEROS12_VWC_ADJ",
	SensorTeros12Temp:      "TEROS12_TEMP",
	SensorTeros12EC:        "TEROS12_EC",
	SensorPhytos31Voltage:  "PHYTOS31_VOLTAGE",
	SensorPhytos31LeafWet:  "PHYTOS31_LEAF_WETNESS",
	SensorBME280Pressure:   "BME280_PRESSURE",
	SensorBME280Temp:       "BME280_TEMP",
	SensorBME280Humidity:   "BME280_HUMIDITY",
	SensorTeros21MatricPot: "TEROS21_MATRIC_POT",
	SensorTeros21Temp:      "TEROS21_TEMP",
	SensorSEN0308Voltage:   "SEN0308_VOLTAGE",
	SensorSEN0308Humidity:  "SEN0308_HUMIDITY",
	SensorSEN0257Voltage:   "SEN0257_VOLTAGE",
	SensorSEN0257Pressure:  "SEN0257_PRESSURE",
	SensorYFS210CFlow:      "YFS210C_FLOW",
}

func (t SensorType) String() string {
	if name, ok := sensorTypeNames[t]; ok {
		return name
	}

	return "SensorType(" + strconv.Itoa(int(t)) + ")"
}

func (e SensorError) String() string {
	switch e {
	case ErrorOK:
		return "OK"
	case ErrorLogger:
		return "LOGGER"
	case ErrorCell:
		return "CELL"
	case ErrorUnsupported:
		return "UNSUPPORTED"
	case ErrorDecode:
		return "DECODE"
	case ErrorTimeout:
		return "TIMEOUT"
	case ErrorInternal:
		return "INTERNAL"
	default:
		return "SensorError(" + strconv.Itoa(int(e)) + ")"
	}
}

package errors

import "strconv"

// ERR is the error code carried by every *Error.
//
// Codes are grouped in ranges: 0-9 generic, 10-19 chain state, 20-29 sampling and
// ring assembly, 30-39 remote node behaviour, 50-59 external services.
type ERR int32

//nolint:revive,stylecheck // enum names follow the wire-style naming used across the codebase
const (
	ERR_UNKNOWN            ERR = 0
	ERR_INVALID_ARGUMENT   ERR = 1
	ERR_THRESHOLD_EXCEEDED ERR = 2
	ERR_NOT_FOUND          ERR = 3
	ERR_PROCESSING         ERR = 4
	ERR_CONFIGURATION      ERR = 5
	ERR_CONTEXT            ERR = 6
	ERR_CONTEXT_CANCELED   ERR = 7
	ERR_ERROR              ERR = 9

	ERR_INSUFFICIENT_CHAIN_STATE ERR = 10
	ERR_DISTRIBUTION_INVALID     ERR = 11

	ERR_SAMPLING_EXHAUSTED  ERR = 20
	ERR_INSUFFICIENT_DECOYS ERR = 21
	ERR_RING_INVALID        ERR = 22

	ERR_NODE_DISHONEST ERR = 30

	ERR_SERVICE_UNAVAILABLE ERR = 50
	ERR_SERVICE_ERROR       ERR = 51
)

var ERR_name = map[int32]string{ //nolint:revive,stylecheck
	0:  "UNKNOWN",
	1:  "INVALID_ARGUMENT",
	2:  "THRESHOLD_EXCEEDED",
	3:  "NOT_FOUND",
	4:  "PROCESSING",
	5:  "CONFIGURATION",
	6:  "CONTEXT",
	7:  "CONTEXT_CANCELED",
	9:  "ERROR",
	10: "INSUFFICIENT_CHAIN_STATE",
	11: "DISTRIBUTION_INVALID",
	20: "SAMPLING_EXHAUSTED",
	21: "INSUFFICIENT_DECOYS",
	22: "RING_INVALID",
	30: "NODE_DISHONEST",
	50: "SERVICE_UNAVAILABLE",
	51: "SERVICE_ERROR",
}

var ERR_value = func() map[string]int32 { //nolint:revive,stylecheck
	m := make(map[string]int32, len(ERR_name))
	for k, v := range ERR_name {
		m[v] = k
	}

	return m
}()

// Enum returns the symbolic name of the code.
func (x ERR) Enum() string {
	return x.String()
}

func (x ERR) String() string {
	if name, ok := ERR_name[int32(x)]; ok {
		return name
	}

	return strconv.Itoa(int(x))
}

package errors

import (
	"encoding/json"
	"fmt"
)

// NodeDishonestErrData describes where a remote node's answer stopped matching
// what we know locally.
type NodeDishonestErrData struct {
	Reason   string `json:"reason"`
	Index    uint64 `json:"index"`
	Position int    `json:"position"`
	Expected int    `json:"expected,omitempty"`
	Received int    `json:"received,omitempty"`
}

func (e *NodeDishonestErrData) Error() string {
	if e.Expected != 0 || e.Received != 0 {
		return fmt.Sprintf("%s: expected %d records, received %d", e.Reason, e.Expected, e.Received)
	}

	return fmt.Sprintf("%s: output %d at position %d", e.Reason, e.Index, e.Position)
}

func (e *NodeDishonestErrData) EncodeErrorData() []byte {
	data, err := json.Marshal(e)
	if err != nil {
		return []byte{}
	}

	return data
}

func (e *NodeDishonestErrData) GetData(key string) interface{} {
	switch key {
	case "reason":
		return e.Reason
	case "index":
		return e.Index
	case "position":
		return e.Position
	case "expected":
		return e.Expected
	case "received":
		return e.Received
	}

	return nil
}

func (e *NodeDishonestErrData) SetData(string, interface{}) {}

// NewNodeDishonestOutputErr reports a record that contradicts the output being spent.
func NewNodeDishonestOutputErr(reason string, index uint64, position int) error {
	data := &NodeDishonestErrData{
		Reason:   reason,
		Index:    index,
		Position: position,
	}

	return NewWithData(ERR_NODE_DISHONEST, data, "remote node returned %s for output %d", reason, index)
}

// NewNodeDishonestCountErr reports a response whose length does not match the request.
func NewNodeDishonestCountErr(reason string, expected, received int) error {
	data := &NodeDishonestErrData{
		Reason:   reason,
		Expected: expected,
		Received: received,
	}

	return NewWithData(ERR_NODE_DISHONEST, data, "remote node returned %d %s, requested %d", received, reason, expected)
}

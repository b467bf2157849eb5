package errclass

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/rpc"
)

// Provider error codes this service interprets directly.
const (
	CodeUserRejected = 4001
	CodeUnknownChain = 4902
	CodeInternalRPC  = -32603
)

type Category int

const (
	CategoryUnknown Category = iota
	CategoryUserRejected
	CategoryRevertReason
)

func (c Category) String() string {
	switch c {
	case CategoryUserRejected:
		return "user_rejected"
	case CategoryRevertReason:
		return "revert_reason"
	default:
		return "unknown"
	}
}

type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

// RPCError is the narrowed form of a provider or node error. It is built once
// at the boundary (FromError) so that Classify stays a pure function.
type RPCError struct {
	Code    int
	Message string
}

// ProviderError is the concrete error the wallet bridge surfaces. It satisfies
// the go-ethereum rpc.Error interface so FromError can narrow it.
type ProviderError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *ProviderError) Error() string  { return e.Message }
func (e *ProviderError) ErrorCode() int { return e.Code }

// Classified is the user-facing classification of a submission failure.
type Classified struct {
	Category Category
	Message  string
	Severity Severity
}

const (
	genericUnknownMessage  = "Unknown error occurred. Please try again."
	internalRPCMessage     = "Internal JSON-RPC error."
	userRejectedMessage    = "Transaction rejected in wallet."
	revertExtractionMarker = "while formatting outputs from RPC '"
	revertReasonPrefix     = "execution reverted: "
)

// knownReasons maps raw contract revert reasons to friendly messages.
var knownReasons = map[string]string{
	"BoringMath: Underflow": "Not enough MIM left to borrow.",
	"Wait for LockUp":       "Your stake is still locked.",
}

// FromError narrows an arbitrary error into the classification input. Errors
// implementing the JSON-RPC error interface keep their code; anything else
// classifies as unknown downstream.
func FromError(err error) RPCError {
	if err == nil {
		return RPCError{}
	}

	narrowed := RPCError{Message: err.Error()}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		narrowed.Code = rpcErr.ErrorCode()
		narrowed.Message = rpcErr.Error()
	}

	return narrowed
}

// Classify maps a narrowed provider error to a user-facing category and
// message. Same input, same output: no state, no side effects.
func Classify(rpcErr RPCError) Classified {
	switch rpcErr.Code {
	case CodeUserRejected:
		message := rpcErr.Message
		if message == "" {
			message = userRejectedMessage
		}
		return Classified{
			Category: CategoryUserRejected,
			Message:  message,
			Severity: SeverityWarning,
		}

	case CodeInternalRPC:
		reason, ok := extractRevertReason(rpcErr.Message)
		if !ok {
			return Classified{
				Category: CategoryUnknown,
				Message:  internalRPCMessage,
				Severity: SeverityError,
			}
		}
		if friendly, known := knownReasons[reason]; known {
			reason = friendly
		}
		return Classified{
			Category: CategoryRevertReason,
			Message:  reason,
			Severity: SeverityError,
		}

	default:
		return Classified{
			Category: CategoryUnknown,
			Message:  genericUnknownMessage,
			Severity: SeverityError,
		}
	}
}

// nestedRPCPayload matches the JSON blob some injected providers embed in the
// message of an internal error, wrapping the node's revert data.
type nestedRPCPayload struct {
	Value struct {
		Data struct {
			Message string `json:"message"`
		} `json:"data"`
	} `json:"value"`
}

func extractRevertReason(message string) (string, bool) {
	start := strings.Index(message, revertExtractionMarker)
	if start < 0 {
		return "", false
	}
	embedded := message[start+len(revertExtractionMarker):]

	end := strings.LastIndexByte(embedded, '\'')
	if end < 0 {
		return "", false
	}
	embedded = embedded[:end]

	var payload nestedRPCPayload
	if err := json.Unmarshal([]byte(embedded), &payload); err != nil {
		return "", false
	}
	if payload.Value.Data.Message == "" {
		return "", false
	}

	return strings.TrimPrefix(payload.Value.Data.Message, revertReasonPrefix), true
}

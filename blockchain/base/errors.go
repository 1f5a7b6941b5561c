package base

import (
	"errors"
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	videoupscalerv1 "github.com/janction/sdk-go/api/videoupscaler/v1"
	"github.com/janction/sdk-go/types"
)

// TxError converts a non-zero result code into an error wrapping
// types.ErrTxFailed. Codes in the videoUpscaler codespace also wrap the
// registered module error so callers can match them with errors.Is.
func TxError(code uint32, codespace, rawLog string) error {
	if code == 0 {
		return nil
	}
	if codespace == videoupscalerv1.ModuleName {
		return fmt.Errorf("%w: %w", types.ErrTxFailed, errorsmod.ABCIError(codespace, code, rawLog))
	}
	return fmt.Errorf("%w: code %d (codespace %q): %s", types.ErrTxFailed, code, codespace, rawLog)
}

// IsNotFound reports whether err is types.ErrNotFound or carries a gRPC
// NotFound status. Store lookups that fail with collections.ErrNotFound
// reach the client as codes.Unknown whose message contains "not found";
// those count too.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, types.ErrNotFound) {
		return true
	}
	st, ok := status.FromError(err)
	if !ok {
		return false
	}
	switch st.Code() {
	case codes.NotFound:
		return true
	case codes.Unknown:
		return strings.Contains(st.Message(), "not found")
	}
	return false
}

package videoupscalerv1

import (
	"strings"

	errorsmod "cosmossdk.io/errors"
	types "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/bech32"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/ipfs/go-cid"
)

func validateAddress(field, addr string) error {
	if addr == "" {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "%s is empty", field)
	}
	if _, _, err := bech32.DecodeAndConvert(addr); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid %s address (%s)", field, err)
	}
	return nil
}

func validateCID(field, value string) error {
	if _, err := cid.Decode(value); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "invalid %s %q: %s", field, value, err)
	}
	return nil
}

func validateCoin(field string, coin *types.Coin) error {
	if coin == nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, "%s is required", field)
	}
	if err := coin.Validate(); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, "%s: %s", field, err)
	}
	if !coin.IsPositive() {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, "%s must be positive", field)
	}
	return nil
}

func validateIDs(taskID, threadID string) error {
	if strings.TrimSpace(taskID) == "" {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "taskId is empty")
	}
	if strings.TrimSpace(threadID) == "" {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "threadId is empty")
	}
	return nil
}

// validateEntries requires at least one "key=value" entry with a non-empty
// key and value on each side of the first '='.
func validateEntries(field string, entries []string) error {
	if len(entries) == 0 {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "%s is empty", field)
	}
	for _, e := range entries {
		k, v, ok := strings.Cut(e, "=")
		if !ok || k == "" || v == "" {
			return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "malformed %s entry %q", field, e)
		}
	}
	return nil
}

func (m *MsgCreateVideoUpscalerTask) ValidateBasic() error {
	if err := validateAddress("creator", m.Creator); err != nil {
		return err
	}
	if err := validateCID("cid", m.Cid); err != nil {
		return err
	}
	if m.StartFrame < 0 || m.EndFrame < m.StartFrame {
		return errorsmod.Wrapf(ErrInvalidVideoUpscalerTask, "invalid frame range %d..%d", m.StartFrame, m.EndFrame)
	}
	frames := m.EndFrame - m.StartFrame + 1
	if m.Threads < 1 || m.Threads > frames {
		return errorsmod.Wrapf(ErrInvalidVideoUpscalerTask, "threads must be between 1 and %d, got %d", frames, m.Threads)
	}
	return validateCoin("reward", m.Reward)
}

func (m *MsgAddWorker) ValidateBasic() error {
	if err := validateAddress("creator", m.Creator); err != nil {
		return err
	}
	if strings.TrimSpace(m.IpfsId) == "" {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "ipfs_id is empty")
	}
	if err := validateCoin("stake", m.Stake); err != nil {
		return errorsmod.Wrap(ErrWorkerIncorrectStake, err.Error())
	}
	return nil
}

func (m *MsgSubscribeWorkerToTask) ValidateBasic() error {
	if err := validateAddress("address", m.Address); err != nil {
		return err
	}
	return validateIDs(m.TaskId, m.ThreadId)
}

func (m *MsgProposeSolution) ValidateBasic() error {
	if err := validateAddress("creator", m.Creator); err != nil {
		return err
	}
	if err := validateIDs(m.TaskId, m.ThreadId); err != nil {
		return err
	}
	if m.PublicKey == "" {
		return errorsmod.Wrap(ErrInvalidSolution, "public_key is empty")
	}
	return validateEntries("signatures", m.Signatures)
}

func (m *MsgRevealSolution) ValidateBasic() error {
	if err := validateAddress("creator", m.Creator); err != nil {
		return err
	}
	if err := validateIDs(m.TaskId, m.ThreadId); err != nil {
		return err
	}
	return validateEntries("frames", m.Frames)
}

func (m *MsgSubmitValidation) ValidateBasic() error {
	if err := validateAddress("creator", m.Creator); err != nil {
		return err
	}
	if err := validateIDs(m.TaskId, m.ThreadId); err != nil {
		return err
	}
	if m.PublicKey == "" {
		return errorsmod.Wrap(ErrInvalidVerification, "public_key is empty")
	}
	return validateEntries("signatures", m.Signatures)
}

func (m *MsgSubmitSolution) ValidateBasic() error {
	if err := validateAddress("creator", m.Creator); err != nil {
		return err
	}
	if err := validateIDs(m.TaskId, m.ThreadId); err != nil {
		return err
	}
	if err := validateCID("dir", m.Dir); err != nil {
		return err
	}
	if m.AverageRenderSeconds < 0 {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "average_render_seconds is negative")
	}
	return nil
}

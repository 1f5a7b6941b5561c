package videoupscalerv1

import errorsmod "cosmossdk.io/errors"

// ModuleName is the codespace the chain reports module errors under.
const ModuleName = "videoUpscaler"

var (
	ErrIndexTooLong     = errorsmod.Register(ModuleName, 2, "index too long")
	ErrDuplicateAddress = errorsmod.Register(ModuleName, 3, "duplicate address")

	ErrWorkerAlreadyRegistered = errorsmod.Register(ModuleName, 10, "worker already registered")
	ErrWorkerNotAvailable      = errorsmod.Register(ModuleName, 11, "worker cannot subscribe to task")
	ErrWorkerTaskNotAvailable  = errorsmod.Register(ModuleName, 12, "task is already completed")
	ErrWorkerIncorrectStake    = errorsmod.Register(ModuleName, 13, "staked coin is incorrect")

	ErrInvalidVideoUpscalerTask = errorsmod.Register(ModuleName, 20, "invalid video upscaler task")

	ErrInvalidSolution = errorsmod.Register(ModuleName, 30, "proposed solution is invalid")

	ErrInvalidVerification = errorsmod.Register(ModuleName, 40, "verification to solution is invalid")
)
